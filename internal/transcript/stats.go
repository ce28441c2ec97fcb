package transcript

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// SpeakerStats : temps de parole et volume de mots d'un locuteur.
type SpeakerStats struct {
	Duration   float64 `json:"duration"`   // secondes, arrondi à 0.1
	Percentage float64 `json:"percentage"` // part du temps de parole total
	WordCount  int     `json:"word_count"`
}

// Statistics agrège les statistiques de locuteurs d'une transcription.
type Statistics struct {
	Speakers      map[string]SpeakerStats `json:"speakers"`
	TotalSpeakers int                     `json:"total_speakers"`
}

// round1 arrondit à une décimale (même présentation que le backend).
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeSpeakerStatistics calcule le temps de parole, le pourcentage et le
// nombre de mots par locuteur. Retourne nil si aucun segment ne porte de
// label de locuteur exploitable ("" ou "unknown" sont ignorés).
//
// Les statistiques sont keyées sur l'identité brute (SpeakerID) : un
// renommage d'affichage ne doit pas les fragmenter.
func ComputeSpeakerStatistics(segments []Segment) *Statistics {
	type acc struct {
		duration float64
		words    int
	}
	speakers := make(map[string]*acc)

	for _, seg := range segments {
		id := seg.SpeakerID()
		if id == "" || id == "unknown" {
			continue
		}
		a, ok := speakers[id]
		if !ok {
			a = &acc{}
			speakers[id] = a
		}
		a.duration += seg.End - seg.Start
		a.words += len(strings.Fields(seg.Text))
	}

	if len(speakers) == 0 {
		return nil
	}

	var totalTalk float64
	for _, a := range speakers {
		totalTalk += a.duration
	}

	stats := make(map[string]SpeakerStats, len(speakers))
	for id, a := range speakers {
		var pct float64
		if totalTalk > 0 {
			pct = a.duration / totalTalk * 100
		}
		stats[id] = SpeakerStats{
			Duration:   round1(a.duration),
			Percentage: round1(pct),
			WordCount:  a.words,
		}
	}

	return &Statistics{
		Speakers:      stats,
		TotalSpeakers: len(speakers),
	}
}

// Pretty retourne une fiche multi-lignes des statistiques, locuteurs triés
// par temps de parole décroissant.
func (s *Statistics) Pretty() string {
	if s == nil || len(s.Speakers) == 0 {
		return ""
	}

	ids := make([]string, 0, len(s.Speakers))
	for id := range s.Speakers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.Speakers[ids[i]].Duration > s.Speakers[ids[j]].Duration
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Locuteurs : %d\n", s.TotalSpeakers)
	for _, id := range ids {
		st := s.Speakers[id]
		fmt.Fprintf(&b, "  %-12s : %6.1fs (%5.1f%%), %d mots\n",
			id, st.Duration, st.Percentage, st.WordCount)
	}
	return b.String()
}
