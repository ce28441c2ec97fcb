// Package fetch : téléchargement HTTP léger et testable de la réponse JSON
// du backend de transcription. Tout est lu en mémoire, ce qui convient aux
// réponses JSON du backend ; une limite de taille protège contre les
// réponses aberrantes.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultMaxBytes  = 50_000_000 // une réponse backend d'un long enregistrement reste < 50 Mo
	DefaultUserAgent = "echoscribe/1.0"
)

// Erreurs exportées
var (
	ErrStatus   = errors.New("unexpected HTTP status")
	ErrTooLarge = errors.New("response body too large")
)

// IsURL indique si input désigne une ressource HTTP(S) plutôt qu'un chemin
// de fichier local.
func IsURL(input string) bool {
	u, err := url.Parse(input)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// FetchBytes télécharge rawURL et retourne le corps de la réponse.
// - ctx peut être nil.
// - timeout : si <=0 on utilise DefaultTimeout.
// - maxBytes : si <=0 on utilise DefaultMaxBytes.
func FetchBytes(ctx context.Context, rawURL string, timeout time.Duration, maxBytes int64) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	// valider l'URL tôt
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("fetch: invalid url %q: %w", rawURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: new request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)
	req.Header.Set("Accept", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: %w: %s", rawURL, ErrStatus, resp.Status)
	}

	// si Content-Length connu et supérieur à maxBytes -> échouer vite
	if resp.ContentLength > 0 && resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("fetch: content-length %d: %w", resp.ContentLength, ErrTooLarge)
	}

	r := io.LimitReader(resp.Body, maxBytes+1) // +1 pour détecter le dépassement
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("fetch: body exceeds %d bytes: %w", maxBytes, ErrTooLarge)
	}
	return data, nil
}
