package transcript

import "testing"

// --- Tests pour FilterByConfidence -----------------------------------------

func ptrFloat64(v float64) *float64 { return &v }

func TestFilterByConfidence(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 1, Text: "sûr", Confidence: ptrFloat64(0.95)},
		{Start: 1, End: 2, Text: "douteux", Confidence: ptrFloat64(0.3)},
		{Start: 2, End: 3, Text: "inconnu"}, // pas de confiance rapportée
	}

	tests := []struct {
		name      string
		threshold float64
		wantTexts []string
	}{
		{"seuil zéro = no-op", 0, []string{"sûr", "douteux", "inconnu"}},
		{"seuil négatif = no-op", -1, []string{"sûr", "douteux", "inconnu"}},
		{"filtre les segments douteux", 0.5, []string{"sûr", "inconnu"}},
		{"seuil élevé garde les sans-confiance", 0.99, []string{"inconnu"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterByConfidence(segments, tc.threshold)
			if len(got) != len(tc.wantTexts) {
				t.Fatalf("%d segments; want %d", len(got), len(tc.wantTexts))
			}
			for i, s := range got {
				if s.Text != tc.wantTexts[i] {
					t.Errorf("segment %d = %q; want %q", i, s.Text, tc.wantTexts[i])
				}
			}
		})
	}

	// l'entrée n'est jamais réduite en place
	if len(segments) != 3 {
		t.Fatalf("entrée modifiée: %d segments", len(segments))
	}
}
