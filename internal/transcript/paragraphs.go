package transcript

import (
	"maps"
	"math"
	"strings"
)

// AnnotationEpsilon : tolérance (en secondes) sur le start d'un paragraphe
// pour rattacher les annotations (entités, sentiment) calculées sur un
// regroupement précédent.
const AnnotationEpsilon = 0.01

// DetectParagraphs partitionne une liste ordonnée de segments en
// paragraphes : rupture sur changement de locuteur ou sur silence
// strictement supérieur au seuil. Passe avant unique, O(n).
//
// Règles :
//   - un changement de locuteur coupe toujours, même si le gap est nul ou
//     négatif (segments chevauchants de locuteurs différents) ;
//   - un gap négatif ne dépasse jamais un seuil positif, donc un même
//     locuteur qui se chevauche reste dans le paragraphe ;
//   - fonction pure : les segments d'entrée ne sont jamais modifiés,
//     ré-exécutable à volonté avec un autre seuil.
//
// Le regroupement est keyé sur l'identité BRUTE du locuteur (SpeakerID),
// jamais sur le label d'affichage.
func DetectParagraphs(segments []Segment, silenceThreshold float64) []Paragraph {
	if len(segments) == 0 {
		return nil
	}

	var paragraphs []Paragraph

	first := segments[0]
	current := Paragraph{
		Speaker:         first.Speaker,
		OriginalSpeaker: first.OriginalSpeaker,
		Start:           first.Start,
		End:             first.End,
		SegmentCount:    1,
	}
	texts := []string{strings.TrimSpace(first.Text)}

	flush := func() {
		current.Text = strings.Join(texts, " ")
		paragraphs = append(paragraphs, current)
	}

	for _, seg := range segments[1:] {
		gap := seg.Start - current.End
		speakerChanged := seg.SpeakerID() != current.SpeakerID()

		if speakerChanged || gap > silenceThreshold {
			// fermer le paragraphe courant et en ouvrir un nouveau
			flush()
			current = Paragraph{
				Speaker:         seg.Speaker,
				OriginalSpeaker: seg.OriginalSpeaker,
				Start:           seg.Start,
				End:             seg.End,
				SegmentCount:    1,
			}
			texts = []string{strings.TrimSpace(seg.Text)}
		} else {
			// étendre le paragraphe courant
			current.End = seg.End
			current.SegmentCount++
			texts = append(texts, strings.TrimSpace(seg.Text))
		}
	}

	// flush final inconditionnel
	flush()
	return paragraphs
}

// CarryOverAnnotations reporte les annotations latérales (entity counts,
// sentiment) d'un regroupement précédent sur un regroupement fraîchement
// calculé : le paragraphe précédent dont le start coïncide à
// AnnotationEpsilon près fournit ses annotations ; sans correspondance,
// le paragraphe reste sans annotation. Retourne une nouvelle liste.
func CarryOverAnnotations(fresh, previous []Paragraph) []Paragraph {
	if len(fresh) == 0 {
		return nil
	}
	out := make([]Paragraph, len(fresh))
	copy(out, fresh)
	if len(previous) == 0 {
		return out
	}

	for i := range out {
		for _, prev := range previous {
			if math.Abs(prev.Start-out[i].Start) <= AnnotationEpsilon {
				// copie du map : les deux générations restent indépendantes
				out[i].EntityCounts = maps.Clone(prev.EntityCounts)
				out[i].Sentiment = prev.Sentiment
				break
			}
		}
	}
	return out
}

// Regroup : regroupement complet après changement de seuil. Recalcule les
// paragraphes depuis les segments puis reporte les annotations du
// regroupement précédent. Dérivable purement de (segments, seuil, previous).
func Regroup(segments []Segment, silenceThreshold float64, previous []Paragraph) []Paragraph {
	return CarryOverAnnotations(DetectParagraphs(segments, silenceThreshold), previous)
}
