package transcript

import (
	"fmt"
	"regexp"
	"strings"
)

// Category classe une règle de transformation de texte.
type Category string

const (
	CategoryFiller  Category = "filler"  // tics de langage ("um", "you know"...)
	CategoryReplace Category = "replace" // corrections find/replace génériques
	CategoryPII     Category = "pii"     // caviardage de données personnelles
)

// CategoryAll est la valeur de filtre "toutes catégories" côté appelant.
// Ce n'est pas une catégorie de règle valide.
const CategoryAll = "all"

// Rule est une transformation find/replace unique, littérale ou regex.
// L'ordre de la liste de règles EST l'ordre d'application.
type Rule struct {
	Name     string   `yaml:"name" json:"name"`
	Find     string   `yaml:"find" json:"find"`
	Replace  string   `yaml:"replace" json:"replace"`
	IsRegex  bool     `yaml:"is_regex" json:"isRegex"`
	Flags    string   `yaml:"flags" json:"flags"` // modificateurs type "i", "m", "s"
	Category Category `yaml:"category" json:"category"`
	Enabled  bool     `yaml:"enabled" json:"enabled"`
}

// compiledRule : variante compilée d'une Rule (matcher + remplacement).
// On compile une fois par changement de rule-set, pas à chaque texte.
type compiledRule struct {
	re      *regexp.Regexp
	replace string
	literal bool // true => remplacement littéral (pas d'expansion $1)
}

// CompiledRules est un rule-set prêt à l'emploi. Les règles désactivées,
// vides ou mal formées ont déjà été écartées.
type CompiledRules struct {
	rules []compiledRule
}

// Len retourne le nombre de règles effectivement compilées.
func (c CompiledRules) Len() int {
	return len(c.rules)
}

// flagPrefix convertit les modificateurs ("i", "m", "s") en préfixe regex Go.
// Le flag "g" (remplacer toutes les occurrences) est structurel en Go :
// ReplaceAll* remplace toujours tout, on l'ignore donc sans erreur.
// Les caractères inconnus sont ignorés plutôt que de faire échouer la règle.
func flagPrefix(flags string) string {
	var letters []rune
	for _, r := range flags {
		switch r {
		case 'i', 'm', 's':
			if !strings.ContainsRune(string(letters), r) {
				letters = append(letters, r)
			}
		}
	}
	if len(letters) == 0 {
		return ""
	}
	return "(?" + string(letters) + ")"
}

// compileRule construit le matcher d'une règle.
// - règle regex : le pattern Find est compilé tel quel avec ses flags ;
// - règle littérale : Find est échappé puis encadré de \b pour ne jamais
//   matcher à l'intérieur d'un mot ("like" ne matche pas dans "liked").
func compileRule(r Rule) (compiledRule, error) {
	var empty compiledRule

	expr := flagPrefix(r.Flags)
	if r.IsRegex {
		expr += r.Find
	} else {
		expr += `\b` + regexp.QuoteMeta(r.Find) + `\b`
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return empty, fmt.Errorf("règle %q: pattern invalide: %w", r.Name, err)
	}
	return compiledRule{re: re, replace: r.Replace, literal: !r.IsRegex}, nil
}

// Compile compile un rule-set dans l'ordre de la liste. Les règles
// désactivées ou à Find vide sont sautées ; une règle mal formée est
// écartée silencieusement — une mauvaise règle ne doit jamais interrompre
// le traitement des suivantes.
func Compile(rules []Rule) CompiledRules {
	out := CompiledRules{}
	for _, r := range rules {
		if !r.Enabled || r.Find == "" {
			continue
		}
		cr, err := compileRule(r)
		if err != nil {
			continue
		}
		out.rules = append(out.rules, cr)
	}
	return out
}

// ValidateRule vérifie qu'une règle compile. Utilisé par la commande
// "rules check" pour rapporter les règles qui seraient sautées ;
// le moteur lui-même ne remonte jamais cette erreur.
func ValidateRule(r Rule) error {
	if r.Find == "" {
		return fmt.Errorf("règle %q: champ find vide", r.Name)
	}
	_, err := compileRule(r)
	return err
}

// Apply applique les règles compilées dans l'ordre sur text, puis exécute
// la passe de nettoyage fixe. Fonction pure de (text, rules).
func (c CompiledRules) Apply(text string) string {
	for _, cr := range c.rules {
		if cr.literal {
			text = cr.re.ReplaceAllLiteralString(text, cr.replace)
		} else {
			text = cr.re.ReplaceAllString(text, cr.replace)
		}
	}
	return cleanupText(text)
}

// passe de nettoyage après application des règles
var (
	reMultiSpace  = regexp.MustCompile(`  +`)   // 2 espaces ou plus
	reOrphanComma = regexp.MustCompile(`,\s*,`) // ", ," laissé par une suppression
)

// cleanupText : réduit les suites d'espaces à un seul, répare les virgules
// orphelines (", ," -> ","), puis trim. Idempotent sur un texte déjà propre.
func cleanupText(s string) string {
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reOrphanComma.ReplaceAllString(s, ",")
	return strings.TrimSpace(s)
}

// ApplyRules : raccourci compile + apply pour un texte unique.
func ApplyRules(text string, rules []Rule) string {
	return Compile(rules).Apply(text)
}

// ApplyRulesToSegments applique un rule-set au texte de chaque segment et
// retourne une NOUVELLE liste ; les segments d'entrée ne sont pas modifiés.
// Le rule-set est compilé une seule fois pour toute la liste.
func ApplyRulesToSegments(segments []Segment, rules []Rule) []Segment {
	if len(segments) == 0 {
		return nil
	}
	compiled := Compile(rules)
	out := make([]Segment, len(segments))
	for i, seg := range segments {
		seg.Text = compiled.Apply(seg.Text)
		out[i] = seg
	}
	return out
}

// FilterRules retourne le sous-ensemble actif d'un rule-set : règles
// activées dont la catégorie correspond au filtre ("all" = toutes).
// La sélection est la responsabilité de l'appelant, le moteur lui-même
// est agnostique des catégories.
func FilterRules(rules []Rule, category string) []Rule {
	var out []Rule
	for _, r := range rules {
		if !r.Enabled {
			continue
		}
		if category != CategoryAll && category != "" && string(r.Category) != category {
			continue
		}
		out = append(out, r)
	}
	return out
}

// DefaultFillerRules retourne le rule-set intégré de suppression des tics
// de langage. Ordonné du plus long au plus court pour que "you know"
// matche avant "you".
func DefaultFillerRules() []Rule {
	phrases := []string{"you know", "i mean", "sort of", "kind of", "like", "um", "uh"}
	rules := make([]Rule, 0, len(phrases))
	for _, p := range phrases {
		rules = append(rules, Rule{
			Name:     "filler: " + p,
			Find:     p,
			Replace:  "",
			Flags:    "i",
			Category: CategoryFiller,
			Enabled:  true,
		})
	}
	return rules
}
