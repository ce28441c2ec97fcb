package transcript

// FilterByConfidence écarte les segments dont la confiance est inférieure
// au seuil. Un seuil <= 0 désactive le filtre (liste retournée telle
// quelle). Les segments sans confiance rapportée sont toujours conservés.
// Retourne une nouvelle liste, l'entrée n'est pas modifiée.
func FilterByConfidence(segments []Segment, minConfidence float64) []Segment {
	if minConfidence <= 0 {
		return segments
	}

	out := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		if seg.Confidence != nil && *seg.Confidence < minConfidence {
			continue
		}
		out = append(out, seg)
	}
	return out
}
