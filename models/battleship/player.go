package battleship

import (
	"log"
	"math/rand"
)

// ServerAgentName is the name the in process player reports.
const ServerAgentName = "SERVER_AGENT"

// Player is one battleship participant the way a match sees it.
// Implementations never return errors; a player that cannot produce
// a usable answer degrades to the sentinel values and the game rules
// take it from there.
type Player interface {
	Name() string
	Setup(height, width int, spec FleetSpec) []*Ship
	Salvo(opponentShots []Coord) []Coord
	Hits(landedShots []Coord)
	EndGame(won bool, reason string)
}

// AgentPlayer is the autonomous in process player. It drops its
// fleet on random spots and fires random shots, never targeting the
// same coordinate twice.
type AgentPlayer struct {
	name   string
	height int
	width  int
	fleet  []*Ship

	// attackGrid mirrors what the agent knows about the opponent
	// waters, splash where it fired and hit where a shot landed.
	attackGrid Grid
	pool       *ShotPool
	rng        *rand.Rand
}

var _ Player = (*AgentPlayer)(nil)

func NewAgentPlayer(rng *rand.Rand) *AgentPlayer {
	return &AgentPlayer{
		name: ServerAgentName,
		rng:  rng,
	}
}

func (ap *AgentPlayer) Name() string {
	return ap.name
}

func (ap *AgentPlayer) Setup(height, width int, spec FleetSpec) []*Ship {
	ap.height = height
	ap.width = width
	ap.attackGrid = NewGrid(height, width)
	ap.pool = NewShotPool(height, width)

	fleet, err := PlaceFleet(height, width, spec, ap.rng)
	if err != nil {
		log.Printf("%s setup failed: %v", ap.name, err)
		return SentinelFleet()
	}
	ap.fleet = fleet
	return fleet
}

// Salvo applies the opponent shots of the previous round to the own
// fleet, then answers with as many fresh shots as the agent has
// ships afloat.
func (ap *AgentPlayer) Salvo(opponentShots []Coord) []Coord {
	return ap.SalvoWithAim(opponentShots, SentinelCoord)
}

// SalvoWithAim is Salvo with the first shot pinned to aim. An aim
// that is off grid or already fired at falls back to a pool draw.
func (ap *AgentPlayer) SalvoWithAim(opponentShots []Coord, aim Coord) []Coord {
	for _, shot := range opponentShots {
		for _, ship := range ap.fleet {
			ship.ReceiveShot(shot)
		}
	}

	volleySize := ap.ShipsAfloat()
	volley := make([]Coord, 0, volleySize)
	if volleySize > 0 && aim.InBound(ap.height, ap.width) && ap.pool.Take(aim) {
		ap.attackGrid[aim.Y][aim.X] = PositionStateSplash
		volley = append(volley, aim)
		volleySize--
	}
	return append(volley, ap.generateShots(volleySize)...)
}

func (ap *AgentPlayer) generateShots(volleySize int) []Coord {
	volley := make([]Coord, 0, volleySize)
	for i := 0; i < volleySize; i++ {
		shot, prs := ap.pool.Draw(ap.rng)
		if !prs {
			// pool ran dry, fire what is gathered so far
			break
		}
		ap.attackGrid[shot.Y][shot.X] = PositionStateSplash
		volley = append(volley, shot)
	}
	return volley
}

// Hits flags the shots of the previous salvo that landed on opponent
// ships in the attack grid.
func (ap *AgentPlayer) Hits(landedShots []Coord) {
	for _, shot := range landedShots {
		if shot.InBound(ap.height, ap.width) {
			ap.attackGrid[shot.Y][shot.X] = PositionStateHit
		}
	}
}

func (ap *AgentPlayer) EndGame(won bool, reason string) {
	log.Printf("%s game over, won: %t, reason: %s", ap.name, won, reason)
}

func (ap *AgentPlayer) ShipsAfloat() int {
	return afloatShips(ap.fleet)
}

// Fleet exposes the agent ships for rendering and inspection.
func (ap *AgentPlayer) Fleet() []*Ship {
	return ap.fleet
}

// AttackGrid exposes the agent view of the opponent waters.
func (ap *AgentPlayer) AttackGrid() Grid {
	return ap.attackGrid
}
