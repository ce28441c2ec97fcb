package fsutil

import (
	"regexp"
	"strings"
)

// limite de longueur de la chaine
const maxFilenameLen = 200

// invalidFileRunes définit les caractères interdits dans les noms de fichiers
// \x00-\x1F sont les caractères de contrôle
var invalidFileRunes = regexp.MustCompile(`[<>"/\\|?*\x00-\x1F]`)

// multiSpace détecte les séquences de plusieurs espaces pour les réduire à un seul.
var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeFilename nettoie une chaîne de caractères pour en faire un nom de
// fichier valide.
// Étapes :
// - Remplace ":" par "-" explicitement
// - Remplace les autres caractères interdits par un espace
// - Supprime les espaces superflus et les points terminaux
// - Limite la longueur du nom
// - Fournit un nom par défaut si la chaîne est vide
func SanitizeFilename(name string) string {
	if name == "" {
		return "transcript"
	}

	// Remplacement de ":" par "-"
	name = strings.ReplaceAll(name, ":", "-")

	// Remplacement des autres caractères interdits
	clean := invalidFileRunes.ReplaceAllString(name, " ")

	// Réduction des espaces multiples, trim, suppression des points terminaux
	clean = multiSpace.ReplaceAllString(strings.TrimSpace(clean), " ")
	clean = strings.TrimRight(clean, ".")

	if clean == "" {
		return "transcript"
	}

	if len(clean) > maxFilenameLen {
		clean = clean[:maxFilenameLen]
	}

	return clean
}

// StripExtension retire la dernière extension de name, s'il y en a une.
// "meeting.wav" -> "meeting", "archive.tar.gz" -> "archive.tar".
func StripExtension(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		switch name[i] {
		case '.':
			if i == 0 {
				return name // fichier caché type ".bashrc", on garde tel quel
			}
			return name[:i]
		case '/', '\\':
			return name // pas d'extension après le dernier séparateur
		}
	}
	return name
}
