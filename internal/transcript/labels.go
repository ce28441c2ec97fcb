package transcript

// labels.go : overlay label/identité. Le renommage d'affichage remplace le
// champ Speaker par le label choisi par l'utilisateur tout en conservant
// l'identifiant interne dans OriginalSpeaker (posé une seule fois, avant le
// premier renommage). Le regroupement et les statistiques lisent toujours
// SpeakerID(), jamais le label, donc un renommage ne change aucune décision
// de regroupement.

// ApplySpeakerLabels retourne une NOUVELLE liste de segments avec les
// locuteurs renommés selon mapping. Une entrée absente = on garde
// l'identifiant interne comme texte d'affichage.
func ApplySpeakerLabels(segments []Segment, labels map[string]string) []Segment {
	if len(segments) == 0 {
		return nil
	}
	out := make([]Segment, len(segments))
	for i, seg := range segments {
		out[i] = relabelSegment(seg, labels)
	}
	return out
}

// ApplyParagraphLabels : même contrat que ApplySpeakerLabels, appliqué
// indépendamment aux paragraphes.
func ApplyParagraphLabels(paragraphs []Paragraph, labels map[string]string) []Paragraph {
	if len(paragraphs) == 0 {
		return nil
	}
	out := make([]Paragraph, len(paragraphs))
	for i, p := range paragraphs {
		if label, ok := labels[p.SpeakerID()]; ok {
			if p.OriginalSpeaker == "" {
				p.OriginalSpeaker = p.Speaker
			}
			p.Speaker = label
		}
		out[i] = p
	}
	return out
}

func relabelSegment(seg Segment, labels map[string]string) Segment {
	label, ok := labels[seg.SpeakerID()]
	if !ok {
		return seg
	}
	if seg.OriginalSpeaker == "" {
		// premier renommage : on fige l'identifiant interne
		seg.OriginalSpeaker = seg.Speaker
	}
	seg.Speaker = label
	return seg
}
