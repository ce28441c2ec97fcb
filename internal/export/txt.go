package export

import (
	"strings"

	"github.com/mvp-scale/mvp-echo-scribe/internal/transcript"
)

// renderTXTSegments : vue de lecture par segments. Une ligne par tour de
// parole "SPEAKER: textes joints par un espace" ; l'en-tête de locuteur
// n'est ré-émis que lorsque le locuteur change par rapport au précédent
// émis. Les segments sans locuteur forment leurs propres lignes et
// réinitialisent le locuteur courant.
func renderTXTSegments(segments []transcript.Segment) string {
	if len(segments) == 0 {
		return ""
	}

	var b strings.Builder
	currentSpeaker := ""
	hasSpeaker := false // false tant qu'aucun tour de parole n'est ouvert
	lineOpen := false

	newline := func() {
		if lineOpen {
			b.WriteString("\n")
		}
		lineOpen = true
	}

	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}

		switch {
		case seg.Speaker == "":
			// segment anonyme : nouvelle ligne si on sort d'un tour de
			// parole, sinon on continue la ligne anonyme courante
			if hasSpeaker || !lineOpen {
				newline()
				b.WriteString(text)
			} else {
				b.WriteString(" " + text)
			}
			hasSpeaker = false
			currentSpeaker = ""
		case !hasSpeaker || seg.Speaker != currentSpeaker:
			// changement de locuteur : en-tête + texte
			newline()
			b.WriteString(seg.Speaker + ": " + text)
			hasSpeaker = true
			currentSpeaker = seg.Speaker
		default:
			// même locuteur : on continue la ligne
			b.WriteString(" " + text)
		}
	}

	if lineOpen {
		b.WriteString("\n")
	}
	return b.String()
}

// renderTXTParagraphs : vue de lecture par paragraphes. Chaque paragraphe
// est précédé de son en-tête "SPEAKER:" (si locuteur présent) sur sa
// propre ligne ; paragraphes séparés par une ligne vide.
func renderTXTParagraphs(paragraphs []transcript.Paragraph) string {
	if len(paragraphs) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range paragraphs {
		if i > 0 {
			b.WriteString("\n")
		}
		if p.Speaker != "" {
			b.WriteString(p.Speaker + ":\n")
		}
		b.WriteString(strings.TrimSpace(p.Text) + "\n")
	}
	return b.String()
}
