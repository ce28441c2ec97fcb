package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-scale/mvp-echo-scribe/internal/highlight"
)

var highlightQuery string

// highlightCmd : vue de debug du tokeniseur d'affichage. Montre comment un
// texte déjà transformé par les règles serait découpé en spans stylés
// (marqueurs de caviardage, correspondances de recherche, texte ordinaire).
var highlightCmd = &cobra.Command{
	Use:   "highlight [texte]",
	Short: "Découpe un texte en spans stylés (marqueurs + recherche)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) == 1 {
			text = args[0]
		} else {
			// pas d'argument : lire depuis stdin
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = strings.TrimRight(string(b), "\n")
		}

		spans := highlight.Render(text, highlightQuery)
		for _, sp := range spans {
			fmt.Printf("%-10s %q\n", sp.Style, sp.Text)
		}
		return nil
	},
}

func init() {
	highlightCmd.Flags().StringVarP(&highlightQuery, "query", "q", "", "requête de recherche (littérale, insensible à la casse)")
	rootCmd.AddCommand(highlightCmd)
}
