package app

import (
	"fmt"

	"github.com/mvp-scale/mvp-echo-scribe/internal/config"
	"github.com/mvp-scale/mvp-echo-scribe/internal/transcript"
)

// Result : sortie du pipeline de post-traitement, prête à sérialiser.
type Result struct {
	Segments   []transcript.Segment
	Paragraphs []transcript.Paragraph
	Stats      *transcript.Statistics
}

// Process déroule le pipeline sur une transcription, dans l'ordre :
// filtre de confiance -> règles de texte -> labels de locuteurs ->
// regroupement en paragraphes -> statistiques. Chaque étape produit de
// nouvelles données ; tr n'est jamais modifié, on peut relancer Process
// avec d'autres réglages sur le même Transcript.
func Process(tr transcript.Transcript, cfg *config.Config) (Result, error) {
	var result Result

	segments := tr.Segments

	// 1. filtre de confiance (seuil <= 0 : no-op)
	segments = transcript.FilterByConfidence(segments, cfg.MinConfidence)

	// 2. règles de texte (sélection enabled + catégorie côté config)
	rules, err := cfg.ActiveRules()
	if err != nil {
		return result, err
	}
	if len(rules) > 0 {
		segments = transcript.ApplyRulesToSegments(segments, rules)
	}

	// 3. labels de locuteurs (l'identifiant interne reste disponible via
	// OriginalSpeaker pour le regroupement et les stats)
	if len(cfg.SpeakerLabels) > 0 {
		segments = transcript.ApplySpeakerLabels(segments, cfg.SpeakerLabels)
	}
	result.Segments = segments

	// 4. paragraphes : recalcul au seuil configuré, avec report des
	// annotations des paragraphes pré-calculés par le backend ; sinon on
	// garde les paragraphes du backend (relabelisés)
	if cfg.DetectParagraphs {
		result.Paragraphs = transcript.Regroup(segments, cfg.ParagraphSilenceThreshold, tr.Paragraphs)
	} else if len(tr.Paragraphs) > 0 {
		result.Paragraphs = transcript.ApplyParagraphLabels(tr.Paragraphs, cfg.SpeakerLabels)
	}

	// 5. statistiques locuteurs (identité brute, insensibles au renommage)
	if cfg.Diarize {
		result.Stats = transcript.ComputeSpeakerStatistics(segments)
	}

	return result, nil
}

// CheckRules compile chaque règle d'un rule-set et rapporte celles qui
// seraient sautées par le moteur. Retourne (nb valides, liste des
// problèmes formatés).
func CheckRules(rules []transcript.Rule) (valid int, issues []string) {
	for i, r := range rules {
		if !r.Enabled {
			issues = append(issues, fmt.Sprintf("règle %d (%s) : désactivée, sera ignorée", i+1, r.Name))
			continue
		}
		if err := transcript.ValidateRule(r); err != nil {
			issues = append(issues, fmt.Sprintf("règle %d : %v", i+1, err))
			continue
		}
		valid++
	}
	return valid, issues
}
