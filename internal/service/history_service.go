package service

import (
	"context"
	"math"

	"mindvibe/internal/domain"
	"mindvibe/internal/repository"
)

const historyLimit = 30

// HistoryService arma el historial reciente y sus estadisticas agregadas.
type HistoryService struct {
	entries repository.MoodEntryRepository
}

func NewHistoryService(entries repository.MoodEntryRepository) *HistoryService {
	return &HistoryService{entries: entries}
}

// RecentHistory devuelve hasta 30 entradas (mas nueva primero) y las
// estadisticas sobre ellas.
func (s *HistoryService) RecentHistory(ctx context.Context) ([]domain.MoodAnalysis, domain.HistoryStats, error) {
	entries, err := s.entries.ListRecent(ctx, historyLimit)
	if err != nil {
		return nil, domain.HistoryStats{}, err
	}
	return entries, computeStats(entries), nil
}

// computeStats espera las entradas ordenadas de mas nueva a mas vieja.
// El trend compara solo la entrada mas nueva contra la septima mas nueva y
// nunca reporta una caida; comportamiento heredado que los tests fijan.
func computeStats(entries []domain.MoodAnalysis) domain.HistoryStats {
	if len(entries) == 0 {
		return domain.HistoryStats{Trend: "No Data"}
	}

	total := 0
	crisisAlerts := 0
	for _, e := range entries {
		total += e.MoodScore
		if e.CrisisLevel >= 2 {
			crisisAlerts++
		}
	}

	recent := entries
	if len(recent) > 7 {
		recent = recent[:7]
	}
	weeklyTotal := 0
	for _, e := range recent {
		weeklyTotal += e.MoodScore
	}

	trend := "Stable"
	if len(recent) >= 2 && recent[0].MoodScore > recent[len(recent)-1].MoodScore {
		trend = "Rising"
	}

	return domain.HistoryStats{
		TotalEntries:  len(entries),
		AverageMood:   round1(float64(total) / float64(len(entries))),
		WeeklyAverage: round1(float64(weeklyTotal) / float64(len(recent))),
		Trend:         trend,
		CrisisAlerts:  crisisAlerts,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
