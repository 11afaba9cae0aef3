package scores

import (
	"context"
	"fmt"
	"time"
)

// Store persists score records in submission order.
type Store interface {
	// All returns every record in insertion order.
	All(ctx context.Context) ([]Record, error)
	// Append adds one record.
	Append(ctx context.Context, r Record) error
	// Close releases the store.
	Close() error
}

// ranked is implemented by stores that can order and limit records
// themselves.
type ranked interface {
	TopScores(ctx context.Context, n int) ([]Record, error)
}

// Backend is what front ends need from a leaderboard, local or remote.
type Backend interface {
	Submit(ctx context.Context, name string, score float64) error
	Leaderboard(ctx context.Context, n int) ([]Record, error)
}

// Service validates submissions and serves the leaderboard from a Store.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService returns a Service backed by store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Submit normalizes and records a score.
func (s *Service) Submit(ctx context.Context, name string, score float64) error {
	_, err := s.Add(ctx, name, score)
	return err
}

// Add normalizes and records a score, returning the stored record.
func (s *Service) Add(ctx context.Context, name string, score float64) (Record, error) {
	name, value, err := Normalize(name, score)
	if err != nil {
		return Record{}, err
	}

	r := Record{Name: name, Score: value, At: s.now().UnixMilli()}
	if err := s.store.Append(ctx, r); err != nil {
		return Record{}, fmt.Errorf("scores: append: %w", err)
	}
	return r, nil
}

// Leaderboard returns the n best records.
func (s *Service) Leaderboard(ctx context.Context, n int) ([]Record, error) {
	if r, ok := s.store.(ranked); ok {
		top, err := r.TopScores(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("scores: top: %w", err)
		}
		if top == nil {
			top = []Record{}
		}
		return top, nil
	}

	all, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("scores: load: %w", err)
	}
	return Top(all, n), nil
}
