package service

import (
	"testing"
)

// TestMocks holds all mocks for easy access
type TestMocks struct {
	Factory        *MockUnitOfWorkFactory
	UoW            *MockUnitOfWork
	ScoreRepo      *MockScoreRepository
	EventPublisher *MockEventPublisher
	EventEmitter   *MockEventEmitter
}

// NewTestMocks creates a new set of mocks with the unit of work wired to the repositories
func NewTestMocks() *TestMocks {
	m := &TestMocks{
		Factory:        new(MockUnitOfWorkFactory),
		UoW:            new(MockUnitOfWork),
		ScoreRepo:      new(MockScoreRepository),
		EventPublisher: new(MockEventPublisher),
		EventEmitter:   new(MockEventEmitter),
	}
	m.UoW.SetRepositories(m.ScoreRepo, m.EventPublisher)
	return m
}

// AssertAllExpectations asserts all mock expectations
func (m *TestMocks) AssertAllExpectations(t *testing.T) {
	m.Factory.AssertExpectations(t)
	m.UoW.AssertExpectations(t)
	m.ScoreRepo.AssertExpectations(t)
	m.EventPublisher.AssertExpectations(t)
	m.EventEmitter.AssertExpectations(t)
}

// sequenceRandom returns queued values in order, reduced modulo n
type sequenceRandom struct {
	values []int
}

func (r *sequenceRandom) IntN(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}
