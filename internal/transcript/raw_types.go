package transcript

// rawResponse représente la réponse "brute" telle qu'on la récupère depuis le
// backend de transcription (format JSON type whisper/verbose_json).
type rawResponse struct {
	Text       string         `json:"text"`
	Language   string         `json:"language,omitempty"`
	Duration   *float64       `json:"duration,omitempty"`
	Model      string         `json:"model,omitempty"`
	Segments   []rawSegment   `json:"segments,omitempty"`
	Paragraphs []rawParagraph `json:"paragraphs,omitempty"`
	// On ignore volontairement d'autres champs (task, statistics, topics, etc.)
}

type rawSegment struct {
	ID      int     `json:"id"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`

	// Le backend expose la probabilité de non-parole ; la confiance
	// vaut 1 - no_speech_prob. Certains backends envoient directement
	// un champ confidence, on accepte les deux.
	NoSpeechProb *float64 `json:"no_speech_prob,omitempty"`
	Confidence   *float64 `json:"confidence,omitempty"`
}

type rawParagraph struct {
	Speaker      string         `json:"speaker,omitempty"`
	Start        float64        `json:"start"`
	End          float64        `json:"end"`
	Text         string         `json:"text"`
	SegmentCount int            `json:"segment_count"`
	EntityCounts map[string]int `json:"entity_counts,omitempty"`
	Sentiment    string         `json:"sentiment,omitempty"`
}

// confidence retourne la confiance du segment dans [0,1], ou nil si le
// backend n'a fourni ni confidence ni no_speech_prob.
func (r rawSegment) confidence() *float64 {
	if r.Confidence != nil {
		return r.Confidence
	}
	if r.NoSpeechProb != nil {
		c := 1.0 - *r.NoSpeechProb
		return &c
	}
	return nil
}
