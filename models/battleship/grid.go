package battleship

import "math/rand"

// Cell states of a player's view of the opponent waters.
const (
	PositionStateEmpty uint8 = iota
	PositionStateSplash
	PositionStateHit
)

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// SentinelCoord marks a shot coming from a player that produced
// nothing usable. It sits outside every grid, so the game rules
// reject it like any other out of bound shot.
var SentinelCoord = Coord{X: -1, Y: -1}

func (c Coord) InBound(height, width int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

type Grid [][]uint8

// Creates a new default grid. Rows follow height and columns follow
// width, so grid[y][x] addresses the cell at coordinate (x, y).
// All cells start as PositionStateEmpty.
func NewGrid(height, width int) Grid {
	grid := make(Grid, height)

	for i := 0; i < height; i++ {
		grid[i] = make([]uint8, width)
	}
	return grid
}

// ShotPool holds every coordinate of the grid a player has not
// targeted yet. Draws are uniformly random without replacement, so
// no coordinate is ever handed out twice.
type ShotPool struct {
	coords []Coord
}

func NewShotPool(height, width int) *ShotPool {
	coords := make([]Coord, 0, height*width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			coords = append(coords, NewCoord(x, y))
		}
	}
	return &ShotPool{coords: coords}
}

func (sp *ShotPool) Len() int {
	return len(sp.coords)
}

// Draw removes and returns one random coordinate of the pool. The
// second return value turns false once the pool is exhausted.
func (sp *ShotPool) Draw(rng *rand.Rand) (Coord, bool) {
	if len(sp.coords) == 0 {
		return SentinelCoord, false
	}

	idx := rng.Intn(len(sp.coords))
	coord := sp.coords[idx]
	sp.coords[idx] = sp.coords[len(sp.coords)-1]
	sp.coords = sp.coords[:len(sp.coords)-1]
	return coord, true
}

// Take removes one specific coordinate and reports whether it was
// still available.
func (sp *ShotPool) Take(coord Coord) bool {
	for idx, candidate := range sp.coords {
		if candidate == coord {
			sp.coords[idx] = sp.coords[len(sp.coords)-1]
			sp.coords = sp.coords[:len(sp.coords)-1]
			return true
		}
	}
	return false
}
