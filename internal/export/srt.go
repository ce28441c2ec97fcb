package export

import (
	"fmt"
	"strings"
)

// renderSRT rend une suite de blocs SRT :
//
//	index
//	START --> END
//	[SPEAKER] TEXT
//
// Index séquentiel base 1, blocs séparés par une ligne vide. Les timestamps
// utilisent la virgule comme séparateur fractionnaire (convention SRT).
// Le locuteur, s'il est présent, est un préfixe entre crochets.
func renderSRT(cues []cue) string {
	var b strings.Builder
	for i, c := range cues {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", srtTimestamp(c.start), srtTimestamp(c.end))
		if c.speaker != "" {
			fmt.Fprintf(&b, "[%s] %s\n", c.speaker, c.text)
		} else {
			fmt.Fprintf(&b, "%s\n", c.text)
		}
	}
	return b.String()
}
