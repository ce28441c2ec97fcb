package highlight

import (
	"regexp"
	"strings"
)

// Package highlight : tokenisation d'affichage du texte déjà transformé
// par les règles. On produit une séquence plate de spans stylés (texte +
// tag), jamais une chaîne transformée ; c'est à la couche de présentation
// de rendre la séquence.

// Style identifie le rendu d'un span.
type Style int

const (
	StylePlain     Style = iota // texte ordinaire
	StyleRedaction              // marqueur de caviardage, ex: [PHONE]
	StyleSearch                 // correspondance de la recherche courante
)

func (s Style) String() string {
	switch s {
	case StyleRedaction:
		return "redaction"
	case StyleSearch:
		return "search"
	default:
		return "plain"
	}
}

// Span est une unité de rendu : un texte et son tag de style.
type Span struct {
	Text  string
	Style Style
}

// reRedactionMarker : marqueur laissé par une règle de caviardage — un
// crochet ouvrant, une majuscule, puis majuscules/chiffres/espaces.
var reRedactionMarker = regexp.MustCompile(`\[[A-Z][A-Z0-9 ]*\]`)

// Render tokenise text en spans stylés, en deux étapes :
//  1. découpe sur les marqueurs de caviardage, tagués StyleRedaction ;
//  2. dans les morceaux ordinaires seulement, découpe sur la requête de
//     recherche (littérale, insensible à la casse), taguée StyleSearch.
//
// Un marqueur n'est JAMAIS re-découpé par la recherche : il reste un span
// unique même si la requête matche le texte entre crochets. Requête vide =
// étape 2 sautée. Texte vide = séquence vide.
func Render(text, searchQuery string) []Span {
	if text == "" {
		return nil
	}

	var spans []Span
	last := 0
	for _, loc := range reRedactionMarker.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			spans = append(spans, splitOnQuery(text[last:loc[0]], searchQuery)...)
		}
		spans = append(spans, Span{Text: text[loc[0]:loc[1]], Style: StyleRedaction})
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, splitOnQuery(text[last:], searchQuery)...)
	}
	return spans
}

// splitOnQuery découpe un morceau ordinaire sur la requête de recherche.
// La requête est échappée (match littéral) et insensible à la casse.
func splitOnQuery(chunk, query string) []Span {
	if chunk == "" {
		return nil
	}
	if strings.TrimSpace(query) == "" {
		return []Span{{Text: chunk, Style: StylePlain}}
	}

	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(query))
	if err != nil {
		// QuoteMeta rend la compilation sûre ; par prudence on retombe
		// sur un span ordinaire plutôt que d'échouer
		return []Span{{Text: chunk, Style: StylePlain}}
	}

	var spans []Span
	last := 0
	for _, loc := range re.FindAllStringIndex(chunk, -1) {
		if loc[0] > last {
			spans = append(spans, Span{Text: chunk[last:loc[0]], Style: StylePlain})
		}
		spans = append(spans, Span{Text: chunk[loc[0]:loc[1]], Style: StyleSearch})
		last = loc[1]
	}
	if last < len(chunk) {
		spans = append(spans, Span{Text: chunk[last:], Style: StylePlain})
	}
	return spans
}
