package transcript

import (
	"math"
	"strings"
	"testing"
)

// --- Tests pour ParseBackendBytes ------------------------------------------

const sampleResponse = `{
  "text": "hello world this is fine",
  "language": "en",
  "task": "transcribe",
  "segments": [
    {"id": 0, "start": 0.0, "end": 1.5, "text": "hello world", "speaker": "SPEAKER_00", "no_speech_prob": 0.1},
    {"id": 1, "start": 1.6, "end": 3.0, "text": "this is fine", "speaker": "SPEAKER_01", "confidence": 0.75}
  ],
  "paragraphs": [
    {"speaker": "SPEAKER_00", "start": 0.0, "end": 1.5, "text": "hello world", "segment_count": 1, "sentiment": "positive"}
  ],
  "statistics": {"total_speakers": 2}
}`

func TestParseBackendBytes(t *testing.T) {
	tr, err := ParseBackendBytes("meeting.json", []byte(sampleResponse))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if tr.Title != "meeting.json" || tr.Language != "en" {
		t.Errorf("métadonnées: %+v", tr)
	}
	if len(tr.Segments) != 2 {
		t.Fatalf("%d segments; want 2", len(tr.Segments))
	}

	// no_speech_prob 0.1 -> confiance 0.9
	s0 := tr.Segments[0]
	if s0.Confidence == nil || math.Abs(*s0.Confidence-0.9) > 1e-9 {
		t.Errorf("confiance segment 0: %v", s0.Confidence)
	}
	// champ confidence direct prioritaire
	s1 := tr.Segments[1]
	if s1.Confidence == nil || *s1.Confidence != 0.75 {
		t.Errorf("confiance segment 1: %v", s1.Confidence)
	}

	if len(tr.Paragraphs) != 1 || tr.Paragraphs[0].Sentiment != "positive" {
		t.Errorf("paragraphes: %#v", tr.Paragraphs)
	}

	// durée absente -> déduite du dernier segment
	if tr.Duration != 3.0 {
		t.Errorf("durée = %v; want 3.0", tr.Duration)
	}
}

func TestParseBackendBytes_Errors(t *testing.T) {
	if _, err := ParseBackendBytes("x", nil); err == nil {
		t.Error("entrée vide acceptée")
	}
	if _, err := ParseBackendBytes("x", []byte("{pas du json")); err == nil {
		t.Error("JSON invalide accepté")
	}
}

func TestParseBackendReader(t *testing.T) {
	tr, err := ParseBackendReader("r", strings.NewReader(`{"text":"", "segments":[]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tr.Segments) != 0 {
		t.Errorf("segments: %#v", tr.Segments)
	}
}
