package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvp-scale/mvp-echo-scribe/internal/app"
	"github.com/mvp-scale/mvp-echo-scribe/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Outils sur les rule-sets de texte",
}

// rulesCheckCmd compile chaque règle du fichier donné et rapporte celles
// que le moteur sauterait (désactivées, find vide, pattern invalide).
// Le pipeline lui-même ne remonte jamais ces erreurs : une mauvaise règle
// est simplement ignorée à l'exécution.
var rulesCheckCmd = &cobra.Command{
	Use:   "check <rules.yaml>",
	Short: "Vérifie qu'un rule-set compile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := config.LoadRules(args[0])
		if err != nil {
			return err
		}

		valid, issues := app.CheckRules(rules)
		fmt.Printf("%d règle(s) valide(s) sur %d\n", valid, len(rules))
		for _, issue := range issues {
			fmt.Println("  -", issue)
		}
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesCheckCmd)
	rootCmd.AddCommand(rulesCmd)
}
