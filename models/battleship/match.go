package battleship

import (
	"fmt"

	cerr "github.com/CamPlume1/BattleShipServer/internal/error"
)

// MatchOutcome summarizes a finished match.
type MatchOutcome struct {
	// Winner is the name of the winning player, empty on a draw.
	Winner  string
	Reason  string
	Rounds  int
	Forfeit bool
}

func (mo MatchOutcome) IsDraw() bool {
	return mo.Winner == ""
}

// Match referees one game of battleship between two players. The
// match keeps its own mirror of both fleets; player state is never
// trusted for rule decisions.
type Match struct {
	Uuid   string
	height int
	width  int
	spec   FleetSpec

	hostPlayer Player
	joinPlayer Player
	hostFleet  []*Ship
	joinFleet  []*Ship

	rounds int
}

func newMatch(matchUuid string, height, width int, spec FleetSpec, hostPlayer, joinPlayer Player) *Match {
	return &Match{
		Uuid:       matchUuid,
		height:     height,
		width:      width,
		spec:       spec,
		hostPlayer: hostPlayer,
		joinPlayer: joinPlayer,
	}
}

// Run plays the match to completion and reports the outcome. Setup
// first, then synchronized salvo rounds until a fleet is destroyed,
// a player forfeits or the round cap is reached. Every round both
// players receive the opponent shots of the previous round.
func (m *Match) Run() MatchOutcome {
	m.hostFleet = m.hostPlayer.Setup(m.height, m.width, m.spec)
	if err := ValidateFleet(m.hostFleet, m.height, m.width, m.spec); err != nil {
		return m.forfeit(m.joinPlayer, m.hostPlayer, fmt.Sprintf("fleet of %s rejected: %v", m.hostPlayer.Name(), err))
	}

	m.joinFleet = m.joinPlayer.Setup(m.height, m.width, m.spec)
	if err := ValidateFleet(m.joinFleet, m.height, m.width, m.spec); err != nil {
		return m.forfeit(m.hostPlayer, m.joinPlayer, fmt.Sprintf("fleet of %s rejected: %v", m.joinPlayer.Name(), err))
	}

	var hostVolley, joinVolley []Coord

	// one round per grid cell empties the shot pool of any honest
	// player, nothing can be left to decide after that
	maxRounds := m.height * m.width
	for round := 1; round <= maxRounds; round++ {
		m.rounds = round

		nextHostVolley := m.hostPlayer.Salvo(joinVolley)
		if err := m.validateVolley(nextHostVolley, m.hostFleet); err != nil {
			return m.forfeit(m.joinPlayer, m.hostPlayer, fmt.Sprintf("volley of %s rejected: %v", m.hostPlayer.Name(), err))
		}

		nextJoinVolley := m.joinPlayer.Salvo(hostVolley)
		if err := m.validateVolley(nextJoinVolley, m.joinFleet); err != nil {
			return m.forfeit(m.hostPlayer, m.joinPlayer, fmt.Sprintf("volley of %s rejected: %v", m.joinPlayer.Name(), err))
		}
		hostVolley, joinVolley = nextHostVolley, nextJoinVolley

		if len(hostVolley) == 0 && len(joinVolley) == 0 {
			return m.draw("both players are out of shots")
		}

		m.hostPlayer.Hits(applyVolley(hostVolley, m.joinFleet))
		m.joinPlayer.Hits(applyVolley(joinVolley, m.hostFleet))

		hostSunk := fleetSunk(m.hostFleet)
		joinSunk := fleetSunk(m.joinFleet)
		switch {
		case hostSunk && joinSunk:
			return m.draw("both fleets destroyed in the same round")
		case joinSunk:
			return m.win(m.hostPlayer, m.joinPlayer, "all opponent ships sunk")
		case hostSunk:
			return m.win(m.joinPlayer, m.hostPlayer, "all opponent ships sunk")
		}
	}
	return m.draw("round cap reached")
}

// validateVolley checks the shots of one player against the grid
// bounds and the volley size its fleet allows this round.
func (m *Match) validateVolley(volley []Coord, fleet []*Ship) error {
	afloat := afloatShips(fleet)
	if len(volley) > afloat {
		return cerr.ErrVolleyTooLarge(len(volley), afloat)
	}
	for _, shot := range volley {
		if !shot.InBound(m.height, m.width) {
			return cerr.ErrShotOutOfGridBound(shot.X, shot.Y)
		}
	}
	return nil
}

func (m *Match) win(winner, loser Player, reason string) MatchOutcome {
	winner.EndGame(true, reason)
	loser.EndGame(false, reason)
	return MatchOutcome{Winner: winner.Name(), Reason: reason, Rounds: m.rounds}
}

func (m *Match) forfeit(winner, loser Player, reason string) MatchOutcome {
	winner.EndGame(true, reason)
	loser.EndGame(false, reason)
	return MatchOutcome{Winner: winner.Name(), Reason: reason, Rounds: m.rounds, Forfeit: true}
}

func (m *Match) draw(reason string) MatchOutcome {
	m.hostPlayer.EndGame(false, reason)
	m.joinPlayer.EndGame(false, reason)
	return MatchOutcome{Reason: reason, Rounds: m.rounds}
}

// applyVolley fires every shot at the fleet and returns the shots
// that landed on a ship.
func applyVolley(volley []Coord, fleet []*Ship) []Coord {
	landed := make([]Coord, 0, len(volley))
	for _, shot := range volley {
		for _, ship := range fleet {
			if ship.ReceiveShot(shot) {
				landed = append(landed, shot)
				break
			}
		}
	}
	return landed
}

func afloatShips(fleet []*Ship) int {
	afloat := 0
	for _, ship := range fleet {
		if !ship.IsSunk() {
			afloat++
		}
	}
	return afloat
}

func fleetSunk(fleet []*Ship) bool {
	return afloatShips(fleet) == 0
}
