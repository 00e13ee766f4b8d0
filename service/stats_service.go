package service

import (
	"context"
	"fmt"
	"sort"

	"hangman/models"
)

// DefaultLeaderboardSize is the number of rows shown in the top players view
const DefaultLeaderboardSize = 10

// statsService implements the StatsService interface
type statsService struct {
	uowFactory UnitOfWorkFactory
}

// NewStatsService creates a new stats service
func NewStatsService(uowFactory UnitOfWorkFactory) StatsService {
	return &statsService{
		uowFactory: uowFactory,
	}
}

// GetLeaderboard returns the top players with their statistics
func (s *statsService) GetLeaderboard(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return RankScores(records, limit), nil
}

// GetPlayerStats returns the record and rank of a single player
func (s *statsService) GetPlayerStats(ctx context.Context, nickname string) (*models.PlayerStats, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	for _, entry := range RankScores(records, 0) {
		if entry.Nickname == nickname {
			return &models.PlayerStats{
				Record: &models.ScoreRecord{
					Nickname: entry.Nickname,
					Wins:     entry.Wins,
					Losses:   entry.Losses,
				},
				Rank:  entry.Rank,
				Total: len(records),
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", models.ErrPlayerNotFound, nickname)
}

func (s *statsService) loadRecords(ctx context.Context) ([]*models.ScoreRecord, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	records, err := uow.ScoreRepository().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}
	return records, nil
}

// RankScores orders records by wins descending, then losses ascending, then
// nickname ascending, and keeps the first limit entries. A limit of zero or
// less keeps every entry.
func RankScores(records []*models.ScoreRecord, limit int) []*models.LeaderboardEntry {
	entries := make([]*models.LeaderboardEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, &models.LeaderboardEntry{
			Nickname:    record.Nickname,
			Wins:        record.Wins,
			Losses:      record.Losses,
			GamesPlayed: record.GamesPlayed(),
			WinRate:     record.WinRate(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Losses != b.Losses {
			return a.Losses < b.Losses
		}
		return a.Nickname < b.Nickname
	})

	// Add rank
	for i := range entries {
		entries[i].Rank = i + 1
	}

	// Apply limit
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries
}
