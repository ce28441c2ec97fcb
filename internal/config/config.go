package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mvp-scale/mvp-echo-scribe/internal/transcript"
	"github.com/mvp-scale/mvp-echo-scribe/pkg/model"
)

// valeurs par défaut alignées sur le backend de transcription
const (
	defaultSilenceThreshold = 0.8
	defaultRuleCategory     = transcript.CategoryAll
)

// struct pour les paramètres de configuration
type Config struct {
	// Sorties
	OutputDir       string   `yaml:"output_dir"`
	Formats         []string `yaml:"formats"` // srt, vtt, txt, json
	View            string   `yaml:"view"`    // segments | paragraphs
	CopyToClipboard bool     `yaml:"copy_to_clipboard"`

	// Pipeline
	Diarize                   bool    `yaml:"diarize"`
	DetectParagraphs          bool    `yaml:"detect_paragraphs"`
	ParagraphSilenceThreshold float64 `yaml:"paragraph_silence_threshold"`
	MinConfidence             float64 `yaml:"min_confidence"`

	// Règles de texte
	TextRulesEnabled bool              `yaml:"text_rules_enabled"`
	TextRuleCategory string            `yaml:"text_rule_category"` // all | filler | replace | pii
	RemoveFillers    bool              `yaml:"remove_fillers"`     // ajoute le rule-set filler intégré
	TextRules        []transcript.Rule `yaml:"text_rules"`
	RulesFile        string            `yaml:"rules_file"` // rule-set YAML externe, optionnel

	// Locuteurs
	SpeakerLabels map[string]string `yaml:"speaker_labels"`

	configFilePath string
}

// configuration par défaut (fallback si le fichier est absent ou partiel)
func defaultConfig() *Config {
	c := &Config{}

	// Sorties
	c.OutputDir = "."
	c.Formats = []string{"txt"}
	c.View = string(model.ViewSegments)
	c.CopyToClipboard = false

	// Pipeline
	c.Diarize = true
	c.DetectParagraphs = true
	c.ParagraphSilenceThreshold = defaultSilenceThreshold
	c.MinConfidence = 0

	// Règles
	c.TextRulesEnabled = true
	c.TextRuleCategory = defaultRuleCategory
	c.RemoveFillers = false

	return c
}

// Load lit la config depuis path. Un fichier absent n'est pas une erreur :
// on retourne les valeurs par défaut (la config est fournie par une couche
// de réglages externe, ce module n'en persiste aucune).
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		path = "echoscribe.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.normalizeConfig()
			return cfg, nil
		}
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()
	return cfg, nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = filepath.Clean(c.OutputDir)

	// Formats : trim + lowercase, "txt" si vide
	formats := make([]string, 0, len(c.Formats))
	for _, f := range c.Formats {
		f = strings.TrimSpace(strings.ToLower(f))
		if f != "" {
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		formats = []string{"txt"}
	}
	c.Formats = formats

	c.View = strings.TrimSpace(strings.ToLower(c.View))
	if c.View == "" {
		c.View = string(model.ViewSegments)
	}

	c.TextRuleCategory = strings.TrimSpace(strings.ToLower(c.TextRuleCategory))
	if c.TextRuleCategory == "" {
		c.TextRuleCategory = defaultRuleCategory
	}

	// seuils : un seuil de silence non positif retombe sur le défaut
	if c.ParagraphSilenceThreshold <= 0 {
		c.ParagraphSilenceThreshold = defaultSilenceThreshold
	}
	// confiance bornée dans [0,1]
	if c.MinConfidence < 0 {
		c.MinConfidence = 0
	}
	if c.MinConfidence > 1 {
		c.MinConfidence = 1
	}
}

// ParseFormats convertit la liste configurée en constantes model.Format.
// Un format inconnu est une erreur (énumération fermée).
func (c *Config) ParseFormats() ([]model.Format, error) {
	out := make([]model.Format, 0, len(c.Formats))
	for _, s := range c.Formats {
		f, err := model.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// ParseView convertit la vue configurée en model.ViewMode.
func (c *Config) ParseView() (model.ViewMode, error) {
	return model.ParseViewMode(c.View)
}

// ActiveRules assemble le rule-set actif : règles inline de la config,
// règles du fichier externe éventuel, plus le rule-set filler intégré si
// demandé. Le filtrage enabled + catégorie est fait ici — le moteur de
// règles lui-même est agnostique de la sélection.
func (c *Config) ActiveRules() ([]transcript.Rule, error) {
	if !c.TextRulesEnabled {
		return nil, nil
	}

	var rules []transcript.Rule
	if c.RemoveFillers {
		rules = append(rules, transcript.DefaultFillerRules()...)
	}
	rules = append(rules, c.TextRules...)

	if c.RulesFile != "" {
		fromFile, err := LoadRules(c.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("rules file %s: %w", c.RulesFile, err)
		}
		rules = append(rules, fromFile...)
	}

	return transcript.FilterRules(rules, c.TextRuleCategory), nil
}
