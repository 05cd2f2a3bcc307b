package stubapi

import (
	"sync"

	"github.com/arturyumaev/casinodesk/internal/model"
)

// State is the in-memory game service the stub serves: a player ledger and
// one asset configuration document. It exists so the console can be
// exercised end to end without the production service.
type State struct {
	mu      sync.Mutex
	players []model.PlayerRecord
	assets  *model.AssetConfig
}

// NewState creates a state seeded with the default players and assets.
func NewState() *State {
	return &State{
		players: defaultPlayers(),
		assets:  DefaultAssets(),
	}
}

// NewStateWith creates a state from explicit seed data.
func NewStateWith(players []model.PlayerRecord, assets *model.AssetConfig) *State {
	return &State{
		players: players,
		assets:  assets,
	}
}

// Players returns a copy of the ledger.
func (s *State) Players() []model.PlayerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PlayerRecord, len(s.players))
	copy(out, s.players)
	return out
}

// SetRole assigns a role to one player.
func (s *State) SetRole(id model.RecordID, role model.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.players {
		if s.players[i].ID == id {
			s.players[i].Role = role
			return nil
		}
	}
	return model.ErrRecordNotFound
}

// GrantReward credits play money to one player.
func (s *State) GrantReward(id model.RecordID, amount float64) error {
	if amount <= 0 {
		return model.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.players {
		if s.players[i].ID == id {
			s.players[i].PlayMoney += amount
			return nil
		}
	}
	return model.ErrRecordNotFound
}

// Assets returns a copy of the current document.
func (s *State) Assets() *model.AssetConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assets.Clone()
}

// SaveAssets replaces the document wholesale. Last write wins; there is no
// version check, matching the production service.
func (s *State) SaveAssets(doc *model.AssetConfig) *model.AssetConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = doc.Clone()
	return s.assets.Clone()
}

// ResetAssets restores the default document and returns it.
func (s *State) ResetAssets() *model.AssetConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = DefaultAssets()
	return s.assets.Clone()
}
