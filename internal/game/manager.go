package game

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"checkers/internal/checkers"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrAlreadyFinished = errors.New("game already finished")
)

// Manager is an in-memory registry of games, safe for concurrent use.
// Readers get copies of the stored state.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame registers g under a fresh id.
func (m *Manager) NewGame(g *Game) GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	s := &GameState{
		ID:        uuid.NewString(),
		White:     g.White.Name(),
		Black:     g.Black.Name(),
		Pos:       g.Position,
		Plies:     g.Plies(),
		Outcome:   g.Outcome(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[s.ID] = s
	return *s
}

func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return GameState{}, ErrGameNotFound
	}
	return *s, nil
}

// Update records the position reached after plies half-moves.
func (m *Manager) Update(id string, pos *checkers.Position, plies int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	if s.Finished() {
		return ErrAlreadyFinished
	}
	s.Pos = pos
	s.Plies = plies
	s.UpdatedAt = time.Now()
	return nil
}

func (m *Manager) Finish(id string, res Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	if s.Finished() {
		return ErrAlreadyFinished
	}
	now := time.Now()
	s.Pos = res.Final
	s.Plies = res.Plies
	s.Outcome = res.Outcome
	s.UpdatedAt = now
	s.FinishedAt = now
	return nil
}

// List returns every game, oldest first.
func (m *Manager) List() []GameState {
	m.mu.RLock()
	out := make([]GameState, 0, len(m.games))
	for _, s := range m.games {
		out = append(out, *s)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
