package export

import (
	"fmt"
	"strings"
)

// renderVTT rend un fichier WebVTT : en-tête "WEBVTT", ligne vide, puis un
// cue par unité séparés par des lignes vides. Les timestamps gardent le
// point comme séparateur fractionnaire. Le locuteur, s'il est présent, est
// rendu en voice tag <v NOM> collé au texte, sans espace de séparation.
func renderVTT(cues []cue) string {
	var b strings.Builder
	b.WriteString("WEBVTT\n")
	for _, c := range cues {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s --> %s\n", Timestamp(c.start), Timestamp(c.end))
		if c.speaker != "" {
			fmt.Fprintf(&b, "<v %s>%s\n", c.speaker, c.text)
		} else {
			fmt.Fprintf(&b, "%s\n", c.text)
		}
	}
	return b.String()
}
