package battleship

import (
	"github.com/google/uuid"

	cerr "github.com/CamPlume1/BattleShipServer/internal/error"

	"sync"
)

type MatchManager interface {
	CreateMatch(height, width int, spec FleetSpec, hostPlayer, joinPlayer Player) (*Match, error)
	GetMatch(matchUuid string) (*Match, error)
	TerminateMatch(matchUuid string)

	isDimensionValid(height, width int) bool
}

type BattleshipMatchManager struct {
	matches map[string]*Match
	mu      sync.RWMutex
}

var _ MatchManager = (*BattleshipMatchManager)(nil)

func NewBattleshipMatchManager() *BattleshipMatchManager {
	return &BattleshipMatchManager{
		matches: make(map[string]*Match, 10),
	}
}

func (bmm *BattleshipMatchManager) CreateMatch(height, width int, spec FleetSpec, hostPlayer, joinPlayer Player) (*Match, error) {
	if !bmm.isDimensionValid(height, width) {
		return nil, cerr.ErrInvalidGridSize(height, width)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.TotalShips() < 1 {
		return nil, cerr.ErrEmptyFleetSpec()
	}

	matchUuid := uuid.NewString()[:6]
	match := newMatch(matchUuid, height, width, spec, hostPlayer, joinPlayer)

	bmm.mu.Lock()
	bmm.matches[matchUuid] = match
	bmm.mu.Unlock()

	return match, nil
}

func (bmm *BattleshipMatchManager) GetMatch(matchUuid string) (*Match, error) {
	bmm.mu.RLock()
	match, prs := bmm.matches[matchUuid]
	bmm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrMatchNotExists(matchUuid)
	}

	return match, nil
}

func (bmm *BattleshipMatchManager) TerminateMatch(matchUuid string) {
	bmm.mu.Lock()
	delete(bmm.matches, matchUuid)
	bmm.mu.Unlock()
}

func (bmm *BattleshipMatchManager) MatchCount() int {
	bmm.mu.RLock()
	defer bmm.mu.RUnlock()
	return len(bmm.matches)
}

func (bmm *BattleshipMatchManager) isDimensionValid(height, width int) bool {
	return height >= 1 && width >= 1
}
