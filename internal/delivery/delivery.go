package delivery

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"

	"github.com/mvp-scale/mvp-echo-scribe/internal/export"
	"github.com/mvp-scale/mvp-echo-scribe/internal/fsutil"
)

// Package delivery : emballage de l'artefact sérialisé en fichier
// téléchargeable. C'est le seul endroit du pipeline avec un effet de bord
// observable ; le buffer transitoire est créé juste avant l'écriture et
// relâché juste après, sans chemin d'erreur qui saute la libération
// (garanti par fsutil.WriteFileAtomic).

// OutputFilename dérive le nom du fichier de sortie : nom d'entrée dont la
// dernière extension est retirée, plus l'extension du sérialiseur.
// "meeting.wav" + ".srt" -> "meeting.srt".
func OutputFilename(inputName, extension string) string {
	base := fsutil.StripExtension(filepath.Base(inputName))
	base = fsutil.SanitizeFilename(base)
	return base + extension
}

// SaveArtifact écrit l'artefact dans outDir sous le nom dérivé de
// inputName. Écriture atomique. Retourne le chemin final du fichier.
// Un contenu vide est livré tel quel : une transcription sans segments
// produit légitimement un corps vide.
func SaveArtifact(art export.Artifact, outDir, inputName string) (string, error) {
	path := filepath.Join(outDir, OutputFilename(inputName, art.Extension))

	// acquisition scoped du buffer : création, écriture, libération dans
	// le même appel
	data := []byte(art.Content)
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", path, err)
	}
	return path, nil
}

// CopyToClipboard copie le contenu de l'artefact dans le presse-papier.
func CopyToClipboard(art export.Artifact) error {
	if art.Content == "" {
		return errors.New("le contenu à copier ne peut pas être vide")
	}
	return clipboard.WriteAll(art.Content)
}
