package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ParseBackendBytes parse un blob JSON ([]byte) produit par le backend de
// transcription et retourne un Transcript prêt pour le pipeline.
//
// Utilise json.Decoder en lecture depuis un bytes.Reader quand les données
// sont déjà présentes 100% en mémoire : adapté aux fichiers pas trop volumineux.
func ParseBackendBytes(title string, b []byte) (Transcript, error) {
	var empty Transcript
	if len(b) == 0 {
		return empty, fmt.Errorf("ParseBackendBytes: empty input")
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	// Ne pas appeler DisallowUnknownFields() : la réponse du backend contient
	// souvent des champs non mappés (statistics, topics...) qu'on ignore.
	var raw rawResponse
	if err := dec.Decode(&raw); err != nil {
		return empty, fmt.Errorf("ParseBackendBytes: decode error: %w", err)
	}
	return fromRaw(title, raw), nil
}

// ParseBackendReader parse depuis un io.Reader (utile pour décoder depuis un flux).
func ParseBackendReader(title string, r io.Reader) (Transcript, error) {
	var empty Transcript
	dec := json.NewDecoder(r)
	var raw rawResponse
	if err := dec.Decode(&raw); err != nil {
		return empty, fmt.Errorf("ParseBackendReader: decode error: %w", err)
	}
	return fromRaw(title, raw), nil
}

// fromRaw convertit la réponse brute en types domaine. On suppose la liste de
// segments déjà ordonnée par start (contrat du backend) ; aucune validation
// des timings n'est faite ici.
func fromRaw(title string, raw rawResponse) Transcript {
	t := Transcript{
		Title:    title,
		Language: raw.Language,
	}
	if raw.Duration != nil {
		t.Duration = *raw.Duration
	}

	if len(raw.Segments) > 0 {
		t.Segments = make([]Segment, 0, len(raw.Segments))
		for _, rs := range raw.Segments {
			t.Segments = append(t.Segments, Segment{
				Start:      rs.Start,
				End:        rs.End,
				Text:       rs.Text,
				Speaker:    rs.Speaker,
				Confidence: rs.confidence(),
			})
		}
	}

	if len(raw.Paragraphs) > 0 {
		t.Paragraphs = make([]Paragraph, 0, len(raw.Paragraphs))
		for _, rp := range raw.Paragraphs {
			t.Paragraphs = append(t.Paragraphs, Paragraph{
				Speaker:      rp.Speaker,
				Start:        rp.Start,
				End:          rp.End,
				Text:         rp.Text,
				SegmentCount: rp.SegmentCount,
				EntityCounts: rp.EntityCounts,
				Sentiment:    rp.Sentiment,
			})
		}
	}

	// si la durée n'est pas fournie, on la déduit du dernier segment
	if t.Duration == 0 && len(t.Segments) > 0 {
		t.Duration = t.Segments[len(t.Segments)-1].End
	}

	return t
}
