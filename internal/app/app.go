package app

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/mvp-scale/mvp-echo-scribe/internal/config"
	"github.com/mvp-scale/mvp-echo-scribe/internal/delivery"
	"github.com/mvp-scale/mvp-echo-scribe/internal/export"
	"github.com/mvp-scale/mvp-echo-scribe/internal/fetch"
	"github.com/mvp-scale/mvp-echo-scribe/internal/transcript"
)

// CLIFlags contient les informations venant des flags de l'app.
// Les valeurs non vides écrasent la config chargée.
type CLIFlags struct {
	ConfigPath string
	InputPath  string
	OutputDir  string
	Formats    []string
	View       string
	Threshold  float64 // 0 = garder la valeur de la config
	RulesFile  string
}

// App orchestre le pipeline : chargement de l'entrée, post-traitement,
// sérialisation et livraison.
type App struct {
	cfg   *config.Config
	flags *CLIFlags
}

// New construit l'application. Les overrides des flags sont appliqués
// par-dessus cfg ici, une seule fois.
func New(cfg *config.Config, flags *CLIFlags) *App {
	if flags.OutputDir != "" {
		cfg.OutputDir = flags.OutputDir
	}
	if len(flags.Formats) > 0 {
		cfg.Formats = flags.Formats
	}
	if flags.View != "" {
		cfg.View = flags.View
	}
	if flags.Threshold > 0 {
		cfg.ParagraphSilenceThreshold = flags.Threshold
	}
	if flags.RulesFile != "" {
		cfg.RulesFile = flags.RulesFile
	}
	return &App{cfg: cfg, flags: flags}
}

// Run exécute le flux principal : lire la réponse JSON du backend,
// dérouler le pipeline, exporter chaque format demandé.
func (a *App) Run(ctx context.Context) error {
	if a.flags.InputPath == "" {
		return fmt.Errorf("aucun fichier d'entrée fourni (flag -i)")
	}

	// lecture + parse de la réponse du backend (fichier local ou URL)
	data, title, err := loadInput(ctx, a.flags.InputPath)
	if err != nil {
		return err
	}
	tr, err := transcript.ParseBackendBytes(title, data)
	if err != nil {
		return fmt.Errorf("parse backend response: %w", err)
	}
	fmt.Printf("Entrée : %s (%d segments)\n", title, len(tr.Segments))

	// pipeline de post-traitement
	result, err := Process(tr, a.cfg)
	if err != nil {
		return fmt.Errorf("post-processing: %w", err)
	}

	// annulation éventuelle avant les effets de bord
	if err := ctx.Err(); err != nil {
		return err
	}

	// sérialisation + livraison
	formats, err := a.cfg.ParseFormats()
	if err != nil {
		return err
	}
	view, err := a.cfg.ParseView()
	if err != nil {
		return err
	}

	var firstArtifact *export.Artifact
	for _, f := range formats {
		art, err := export.Serialize(result.Segments, result.Paragraphs, view, f)
		if err != nil {
			return fmt.Errorf("serialize %s: %w", f, err)
		}
		path, err := delivery.SaveArtifact(art, a.cfg.OutputDir, title)
		if err != nil {
			return fmt.Errorf("save %s: %w", f, err)
		}
		fmt.Printf("Export %s écrit : %s\n", f, path)
		if firstArtifact == nil {
			firstArtifact = &art
		}
	}

	// copie presse-papier du premier format demandé
	if a.cfg.CopyToClipboard && firstArtifact != nil {
		if err := delivery.CopyToClipboard(*firstArtifact); err != nil {
			fmt.Printf("warning: copie presse-papier impossible : %v\n", err)
		} else {
			fmt.Println("Export copié dans le presse-papier.")
		}
	}

	// fiche statistiques locuteurs
	if result.Stats != nil {
		fmt.Print(result.Stats.Pretty())
	}

	return nil
}

// loadInput charge la réponse du backend : fichier local, ou GET si input
// est une URL http(s) (cas du backend interrogé directement). Retourne les
// octets bruts et le titre dérivé du nom de base.
func loadInput(ctx context.Context, input string) ([]byte, string, error) {
	if fetch.IsURL(input) {
		data, err := fetch.FetchBytes(ctx, input, 0, 0)
		if err != nil {
			return nil, "", fmt.Errorf("fetch input: %w", err)
		}
		u, _ := url.Parse(input)
		title := filepath.Base(u.Path)
		if title == "." || title == "/" || title == "" {
			title = u.Host
		}
		return data, title, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, "", fmt.Errorf("read input: %w", err)
	}
	return data, filepath.Base(input), nil
}
