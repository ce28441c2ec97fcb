package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mvp-scale/mvp-echo-scribe/internal/transcript"
)

// ruleFile : enveloppe du fichier YAML de rule-set utilisateur.
//
//	rules:
//	  - name: censure tel
//	    find: '\d{3}-\d{4}'
//	    replace: "[PHONE]"
//	    is_regex: true
//	    category: pii
//	    enabled: true
type ruleFile struct {
	Rules []transcript.Rule `yaml:"rules"`
}

// LoadRules lit un rule-set YAML depuis path. La persistance des rule-sets
// est du ressort d'un collaborateur externe ; ici on ne fait que lire.
func LoadRules(path string) ([]transcript.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du rule-set %s impossible : %w", path, err)
	}

	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("analyse du rule-set %s impossible : %w", path, err)
	}
	return rf.Rules, nil
}
