package model

import "fmt"

// constantes pour les formats d'export
type Format string

const (
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatTXT  Format = "txt"
	FormatJSON Format = "json"
)

// du format en chaine à la constante de type Format, return une erreur si format inconnu
func ParseFormat(s string) (Format, error) {
	switch s {
	case "srt":
		return FormatSRT, nil
	case "vtt":
		return FormatVTT, nil
	case "txt":
		return FormatTXT, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}

func (f Format) IsSubtitle() bool {
	return f == FormatSRT || f == FormatVTT
}

func (f Format) Extension() string {
	return "." + string(f)
}

// MIMEType retourne le type MIME associé au format, utilisé lors de la
// livraison du fichier exporté.
func (f Format) MIMEType() string {
	switch f {
	case FormatSRT:
		return "application/x-subrip"
	case FormatVTT:
		return "text/vtt"
	case FormatJSON:
		return "application/json"
	default:
		return "text/plain"
	}
}

func (f Format) String() string {
	return string(f)
}

// ViewMode sélectionne la granularité de l'export : segments bruts ou
// paragraphes regroupés.
type ViewMode string

const (
	ViewSegments   ViewMode = "segments"
	ViewParagraphs ViewMode = "paragraphs"
)

// ParseViewMode accepte "segments" ou "paragraphs" (et leurs singuliers).
func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "segments", "segment":
		return ViewSegments, nil
	case "paragraphs", "paragraph":
		return ViewParagraphs, nil
	default:
		return "", fmt.Errorf("mode de vue inconnu: %s", s)
	}
}

func (v ViewMode) String() string {
	return string(v)
}
