package usecase

import (
	"context"
	"sync"

	"github.com/fadilmartias/job-assistant/internal/model"
	"github.com/fadilmartias/job-assistant/internal/repository"
	"github.com/fadilmartias/job-assistant/internal/service"
	"github.com/google/uuid"
)

type fakeGenerator struct {
	response string
	err      error
	requests []service.GenerationRequest
}

func (g *fakeGenerator) Generate(_ context.Context, req service.GenerationRequest) (string, error) {
	g.requests = append(g.requests, req)
	return g.response, g.err
}

// memoryStore mirrors ProfileRepository's versioning rules.
type memoryStore struct {
	mu        sync.Mutex
	profiles  map[uuid.UUID]model.Profile
	conflicts int
	writes    int
}

func newMemoryStore(userID uuid.UUID, p model.Profile) *memoryStore {
	if p.Version == 0 {
		p.Version = 1
	}
	return &memoryStore{profiles: map[uuid.UUID]model.Profile{userID: p}}
}

func (s *memoryStore) GetProfile(_ context.Context, userID uuid.UUID) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return model.Profile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (s *memoryStore) ReplaceProfile(_ context.Context, userID uuid.UUID, p model.Profile) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.profiles[userID]
	if !ok {
		return model.Profile{}, repository.ErrProfileNotFound
	}
	if s.conflicts > 0 {
		s.conflicts--
		stored.Version++
		s.profiles[userID] = stored
		return model.Profile{}, repository.ErrVersionConflict
	}
	if stored.Version != p.Version {
		return model.Profile{}, repository.ErrVersionConflict
	}
	p.Version++
	s.profiles[userID] = p
	s.writes++
	return p, nil
}

func (s *memoryStore) get(userID uuid.UUID) model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profiles[userID]
}
