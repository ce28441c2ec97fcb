package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-scale/mvp-echo-scribe/internal/app"
	"github.com/mvp-scale/mvp-echo-scribe/internal/config"
)

var flags = &app.CLIFlags{}

var rootCmd = &cobra.Command{
	Use:   "echoscribe",
	Short: "Post-traitement et export de transcriptions",
	Long: "echoscribe transforme la réponse JSON d'un backend de transcription\n" +
		"en exports SRT/VTT/TXT/JSON : regroupement en paragraphes par tours de\n" +
		"parole, règles find/replace (caviardage, tics de langage), labels de\n" +
		"locuteurs et statistiques.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flags.ConfigPath)
		if err != nil {
			return err
		}
		a := app.New(cfg, flags)
		return a.Run(cmd.Context())
	},
}

// Execute est le point d'entrée de la CLI. Le contexte racine s'annule sur
// SIGINT / SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("echoscribe: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "echoscribe.yaml", "chemin du fichier de configuration")
	rootCmd.Flags().StringVarP(&flags.InputPath, "input", "i", "", "réponse JSON du backend de transcription")
	rootCmd.Flags().StringVarP(&flags.OutputDir, "out", "o", "", "répertoire de sortie (défaut: config)")
	rootCmd.Flags().StringSliceVarP(&flags.Formats, "format", "f", nil, "formats d'export: srt, vtt, txt, json")
	rootCmd.Flags().StringVar(&flags.View, "view", "", "granularité: segments ou paragraphs")
	rootCmd.Flags().Float64Var(&flags.Threshold, "silence-threshold", 0, "seuil de silence (secondes) pour couper les paragraphes")
	rootCmd.Flags().StringVar(&flags.RulesFile, "rules", "", "fichier YAML de règles de texte")
}
