package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mvp-scale/mvp-echo-scribe/internal/transcript"
	"github.com/mvp-scale/mvp-echo-scribe/pkg/model"
)

// --- Tests pour Load -------------------------------------------------------

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("fichier absent ne doit pas être une erreur : %v", err)
	}

	if cfg.OutputDir != "." || len(cfg.Formats) != 1 || cfg.Formats[0] != "txt" {
		t.Errorf("sorties par défaut: %+v", cfg)
	}
	if !cfg.Diarize || !cfg.DetectParagraphs || !cfg.TextRulesEnabled {
		t.Errorf("pipeline par défaut: %+v", cfg)
	}
	if cfg.ParagraphSilenceThreshold != 0.8 {
		t.Errorf("seuil = %v; want 0.8", cfg.ParagraphSilenceThreshold)
	}
	if cfg.View != string(model.ViewSegments) || cfg.TextRuleCategory != transcript.CategoryAll {
		t.Errorf("vue/catégorie par défaut: %+v", cfg)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "echoscribe.yaml")
	content := `
output_dir: exports
formats: [SRT, " vtt "]
view: Paragraphs
paragraph_silence_threshold: 1.5
min_confidence: 0.4
remove_fillers: true
speaker_labels:
  SPEAKER_00: Alice
text_rules:
  - name: nettoyage
    category: replace
    find: gonna
    replace: going to
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.OutputDir != "exports" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	// formats normalisés : trim + lowercase
	if len(cfg.Formats) != 2 || cfg.Formats[0] != "srt" || cfg.Formats[1] != "vtt" {
		t.Errorf("Formats = %v", cfg.Formats)
	}
	if cfg.View != "paragraphs" {
		t.Errorf("View = %q", cfg.View)
	}
	if cfg.ParagraphSilenceThreshold != 1.5 || cfg.MinConfidence != 0.4 {
		t.Errorf("seuils: %+v", cfg)
	}
	if cfg.SpeakerLabels["SPEAKER_00"] != "Alice" {
		t.Errorf("SpeakerLabels = %v", cfg.SpeakerLabels)
	}
	if len(cfg.TextRules) != 1 || cfg.TextRules[0].Find != "gonna" {
		t.Errorf("TextRules = %+v", cfg.TextRules)
	}
	// les champs absents du fichier gardent leur défaut
	if !cfg.Diarize || !cfg.DetectParagraphs {
		t.Errorf("défauts écrasés: %+v", cfg)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("formats: [srt\n:::"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("YAML invalide accepté")
	}
}

// --- Tests pour la normalisation -------------------------------------------

func TestNormalizeConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Formats = []string{"  ", "JSON"}
	cfg.ParagraphSilenceThreshold = -1
	cfg.MinConfidence = 1.7
	cfg.normalizeConfig()

	if len(cfg.Formats) != 1 || cfg.Formats[0] != "json" {
		t.Errorf("Formats = %v", cfg.Formats)
	}
	if cfg.ParagraphSilenceThreshold != 0.8 {
		t.Errorf("seuil non positif non remplacé: %v", cfg.ParagraphSilenceThreshold)
	}
	if cfg.MinConfidence != 1 {
		t.Errorf("confiance non bornée: %v", cfg.MinConfidence)
	}

	// liste de formats entièrement vide -> txt
	cfg.Formats = nil
	cfg.normalizeConfig()
	if len(cfg.Formats) != 1 || cfg.Formats[0] != "txt" {
		t.Errorf("Formats = %v; want [txt]", cfg.Formats)
	}
}

func TestParseFormatsAndView(t *testing.T) {
	cfg := defaultConfig()
	cfg.Formats = []string{"srt", "json"}
	cfg.View = "paragraphs"

	formats, err := cfg.ParseFormats()
	if err != nil {
		t.Fatalf("ParseFormats: %v", err)
	}
	if len(formats) != 2 || formats[0] != model.FormatSRT || formats[1] != model.FormatJSON {
		t.Errorf("formats = %v", formats)
	}

	view, err := cfg.ParseView()
	if err != nil || view != model.ViewParagraphs {
		t.Errorf("view = %v, err = %v", view, err)
	}

	cfg.Formats = []string{"docx"}
	if _, err := cfg.ParseFormats(); err == nil {
		t.Error("format inconnu accepté")
	}
}

// --- Tests pour ActiveRules ------------------------------------------------

func TestActiveRules(t *testing.T) {
	cfg := defaultConfig()
	cfg.RemoveFillers = true
	cfg.TextRules = []transcript.Rule{
		{Name: "inline", Category: transcript.CategoryReplace, Find: "gonna", Replace: "going to", Enabled: true},
	}

	rules, err := cfg.ActiveRules()
	if err != nil {
		t.Fatalf("ActiveRules: %v", err)
	}
	fillers := transcript.DefaultFillerRules()
	if len(rules) != len(fillers)+1 {
		t.Fatalf("%d règles; want %d", len(rules), len(fillers)+1)
	}
	// les fillers intégrés viennent en premier, la règle inline ensuite
	if rules[len(rules)-1].Name != "inline" {
		t.Errorf("dernière règle = %+v", rules[len(rules)-1])
	}
}

func TestActiveRules_DisabledAndFiltered(t *testing.T) {
	cfg := defaultConfig()
	cfg.TextRulesEnabled = false
	cfg.RemoveFillers = true

	rules, err := cfg.ActiveRules()
	if err != nil || rules != nil {
		t.Errorf("règles désactivées: %v, err = %v", rules, err)
	}

	// catégorie restrictive : seuls les fillers restent
	cfg.TextRulesEnabled = true
	cfg.TextRuleCategory = string(transcript.CategoryFiller)
	cfg.TextRules = []transcript.Rule{
		{Name: "pii", Category: transcript.CategoryPII, Find: "x", Replace: "[X]", Enabled: true},
	}
	rules, err = cfg.ActiveRules()
	if err != nil {
		t.Fatalf("ActiveRules: %v", err)
	}
	for _, r := range rules {
		if r.Category != transcript.CategoryFiller {
			t.Errorf("règle hors catégorie: %+v", r)
		}
	}
}

func TestActiveRules_RulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
rules:
  - name: phone
    category: pii
    find: '\d{3}-\d{4}'
    replace: '[PHONE]'
    is_regex: true
    enabled: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := defaultConfig()
	cfg.RulesFile = path

	rules, err := cfg.ActiveRules()
	if err != nil {
		t.Fatalf("ActiveRules: %v", err)
	}
	if len(rules) != 1 || rules[0].Name != "phone" || !rules[0].IsRegex {
		t.Errorf("rules = %+v", rules)
	}

	cfg.RulesFile = filepath.Join(t.TempDir(), "absent.yaml")
	if _, err := cfg.ActiveRules(); err == nil {
		t.Error("fichier de règles absent accepté")
	}
}
