package export

import (
	"encoding/json"
	"strings"

	"github.com/mvp-scale/mvp-echo-scribe/internal/transcript"
)

// Structures d'export JSON : ordre de champs stable, champs optionnels
// omis quand absents. On ne réutilise pas directement les types domaine
// pour contrôler exactement la forme sérialisée.

type jsonSegment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker,omitempty"`
	Text    string  `json:"text"`
}

type jsonParagraph struct {
	Start        float64        `json:"start"`
	End          float64        `json:"end"`
	Speaker      string         `json:"speaker,omitempty"`
	Text         string         `json:"text"`
	SegmentCount int            `json:"segment_count"`
	EntityCounts map[string]int `json:"entity_counts,omitempty"`
	Sentiment    string         `json:"sentiment,omitempty"`
}

// renderJSONSegments sérialise la vue segments en tableau JSON indenté.
func renderJSONSegments(segments []transcript.Segment) (string, error) {
	out := make([]jsonSegment, 0, len(segments))
	for _, s := range segments {
		out = append(out, jsonSegment{
			Start:   s.Start,
			End:     s.End,
			Speaker: s.Speaker,
			Text:    strings.TrimSpace(s.Text),
		})
	}
	return marshalIndented(out)
}

// renderJSONParagraphs sérialise la vue paragraphes, avec segment_count et
// les annotations latérales quand elles sont présentes.
func renderJSONParagraphs(paragraphs []transcript.Paragraph) (string, error) {
	out := make([]jsonParagraph, 0, len(paragraphs))
	for _, p := range paragraphs {
		out = append(out, jsonParagraph{
			Start:        p.Start,
			End:          p.End,
			Speaker:      p.Speaker,
			Text:         strings.TrimSpace(p.Text),
			SegmentCount: p.SegmentCount,
			EntityCounts: p.EntityCounts,
			Sentiment:    p.Sentiment,
		})
	}
	return marshalIndented(out)
}

func marshalIndented(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
