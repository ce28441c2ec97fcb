package export

import (
	"fmt"
	"math"
	"strings"
)

// Timestamp formate un temps en secondes au format générique
// "HH:MM:SS.mmm" (heures/minutes/secondes sur 2 chiffres, millisecondes
// sur 3). Les largeurs de champs sont exactes : les lecteurs de
// sous-titres standard exigent ce gabarit au bit près.
// Exemple : 1.5 -> "00:00:01.500", 3661.25 -> "01:01:01.250".
func Timestamp(seconds float64) string {
	if seconds < 0 {
		// timing dégénéré toléré : on plancher à zéro plutôt que d'échouer
		seconds = 0
	}
	totalMs := int64(math.Round(seconds * 1000))
	h := totalMs / 3_600_000
	m := (totalMs % 3_600_000) / 60_000
	s := (totalMs % 60_000) / 1000
	ms := totalMs % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// srtTimestamp : convention SRT, identique au format générique mais avec
// une virgule comme séparateur fractionnaire (substitution post-formatage).
func srtTimestamp(seconds float64) string {
	return strings.Replace(Timestamp(seconds), ".", ",", 1)
}
