package transcript

import (
	"strings"
	"unicode/utf8"
)

// Segment représente une unité de parole reconnue par le backend de
// transcription : timing, texte, locuteur et confiance optionnels.
// Un Segment reçu du backend est immuable : le pipeline produit toujours
// de nouveaux segments (copy-on-transform) afin de pouvoir re-rendre
// depuis l'original quand un réglage change.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"` // invariant : End >= Start
	Text  string  `json:"text"`

	// Speaker est l'identifiant affiché. Tant qu'aucun label utilisateur
	// n'a été appliqué, il contient l'identifiant interne du backend.
	Speaker string `json:"speaker,omitempty"`

	// OriginalSpeaker conserve l'identifiant interne, posé une seule fois
	// avant tout renommage. Vide = jamais renommé.
	OriginalSpeaker string `json:"-"`

	// Confidence dans [0,1] ; nil si le backend ne la fournit pas.
	Confidence *float64 `json:"confidence,omitempty"`
}

// SpeakerID retourne l'identité brute du locuteur : OriginalSpeaker si un
// renommage a eu lieu, sinon Speaker. Toute logique sensible à l'identité
// (regroupement, statistiques, couleurs) doit passer par cette méthode.
func (s Segment) SpeakerID() string {
	if s.OriginalSpeaker != "" {
		return s.OriginalSpeaker
	}
	return s.Speaker
}

// RuneCount retourne le nombre de runes du texte (utile pour l'UI).
func (s Segment) RuneCount() int {
	return utf8.RuneCountInString(s.Text)
}

// WordCount retourne le nombre de mots du texte.
func (s Segment) WordCount() int {
	return len(strings.Fields(s.Text))
}

// Paragraph est un groupe contigu de segments du même locuteur sans
// silence qualifiant. Entièrement dérivé (segments + seuil), jamais
// persisté.
type Paragraph struct {
	Speaker         string  `json:"speaker,omitempty"`
	OriginalSpeaker string  `json:"-"`
	Start           float64 `json:"start"`
	End             float64 `json:"end"`
	Text            string  `json:"text"`
	SegmentCount    int     `json:"segment_count"`

	// Annotations latérales calculées par un collaborateur externe sur un
	// regroupement précédent ; reportées lors d'un re-regroupement quand
	// les starts coïncident (voir CarryOverAnnotations).
	EntityCounts map[string]int `json:"entity_counts,omitempty"`
	Sentiment    string         `json:"sentiment,omitempty"`
}

// SpeakerID : même contrat que Segment.SpeakerID.
func (p Paragraph) SpeakerID() string {
	if p.OriginalSpeaker != "" {
		return p.OriginalSpeaker
	}
	return p.Speaker
}

// Transcript regroupe le résultat d'une transcription tel que reçu du
// backend : la liste ordonnée de segments, éventuellement une liste de
// paragraphes pré-calculée, et quelques métadonnées.
type Transcript struct {
	Title      string      // dérivé du nom du fichier d'entrée
	Language   string      // code langue rapporté par le backend ("" si absent)
	Duration   float64     // durée totale en secondes (0 si inconnue)
	Segments   []Segment   // ordonnés par start, fournis tels quels
	Paragraphs []Paragraph // pré-calculés par le backend, peuvent être vides
}

// NewTranscript construit un Transcript à partir de données déjà prêtes.
// - pure function, pas d'I/O ni de parsing.
func NewTranscript(title string, segments []Segment, paragraphs []Paragraph) Transcript {
	return Transcript{
		Title:      title,
		Segments:   segments,
		Paragraphs: paragraphs,
	}
}
