package export

import (
	"fmt"
	"strings"

	"github.com/mvp-scale/mvp-echo-scribe/internal/transcript"
	"github.com/mvp-scale/mvp-echo-scribe/pkg/model"
)

// Artifact est le triplet produit par la sérialisation : contenu, type
// MIME et extension de fichier. La livraison (écriture disque, presse-
// papier) est du ressort du package delivery.
type Artifact struct {
	Content   string
	MIMEType  string
	Extension string
}

// cue : unité de rendu commune aux formats sous-titres (SRT/VTT).
// Un segment comme un paragraphe se projettent sur un cue.
type cue struct {
	start   float64
	end     float64
	speaker string
	text    string
}

func segmentCues(segments []transcript.Segment) []cue {
	out := make([]cue, 0, len(segments))
	for _, s := range segments {
		out = append(out, cue{start: s.Start, end: s.End, speaker: s.Speaker, text: strings.TrimSpace(s.Text)})
	}
	return out
}

func paragraphCues(paragraphs []transcript.Paragraph) []cue {
	out := make([]cue, 0, len(paragraphs))
	for _, p := range paragraphs {
		out = append(out, cue{start: p.Start, end: p.End, speaker: p.Speaker, text: strings.TrimSpace(p.Text)})
	}
	return out
}

// Serialize rend la transcription dans le format demandé, à la granularité
// demandée. Si la vue paragraphes est demandée mais qu'aucun paragraphe
// n'existe, on retombe sur la vue segments pour le même format.
// Une paire (vue, format) non reconnue est une erreur de programmation.
func Serialize(
	segments []transcript.Segment,
	paragraphs []transcript.Paragraph,
	view model.ViewMode,
	format model.Format,
) (Artifact, error) {
	var empty Artifact

	// fallback : vue paragraphes sans paragraphes disponibles
	if view == model.ViewParagraphs && len(paragraphs) == 0 {
		view = model.ViewSegments
	}

	var content string
	var err error

	switch format {
	case model.FormatSRT:
		if view == model.ViewParagraphs {
			content = renderSRT(paragraphCues(paragraphs))
		} else {
			content = renderSRT(segmentCues(segments))
		}
	case model.FormatVTT:
		if view == model.ViewParagraphs {
			content = renderVTT(paragraphCues(paragraphs))
		} else {
			content = renderVTT(segmentCues(segments))
		}
	case model.FormatTXT:
		if view == model.ViewParagraphs {
			content = renderTXTParagraphs(paragraphs)
		} else {
			content = renderTXTSegments(segments)
		}
	case model.FormatJSON:
		if view == model.ViewParagraphs {
			content, err = renderJSONParagraphs(paragraphs)
		} else {
			content, err = renderJSONSegments(segments)
		}
		if err != nil {
			return empty, fmt.Errorf("serialize json: %w", err)
		}
	default:
		return empty, fmt.Errorf("format non supporté dans Serialize: %q", format)
	}

	return Artifact{
		Content:   content,
		MIMEType:  format.MIMEType(),
		Extension: format.Extension(),
	}, nil
}
