package battleship

import (
	cerr "github.com/CamPlume1/BattleShipServer/internal/error"
)

type ShipType string

const (
	ShipTypeCarrier    ShipType = "CARRIER"
	ShipTypeBattleship ShipType = "BATTLESHIP"
	ShipTypeDestroyer  ShipType = "DESTROYER"
	ShipTypeSubmarine  ShipType = "SUBMARINE"
)

// shipLengths is the reference table tying every known ship type to
// its length in grid cells.
var shipLengths = map[ShipType]int{
	ShipTypeCarrier:    6,
	ShipTypeBattleship: 5,
	ShipTypeDestroyer:  4,
	ShipTypeSubmarine:  3,
}

// shipCatalogue fixes the order ship types are processed in, largest
// first, so fleet building stays reproducible for a given rand source.
var shipCatalogue = []ShipType{
	ShipTypeCarrier,
	ShipTypeBattleship,
	ShipTypeDestroyer,
	ShipTypeSubmarine,
}

func (st ShipType) Length() (int, error) {
	length, prs := shipLengths[st]
	if !prs {
		return 0, cerr.ErrUnknownShipType(string(st))
	}
	return length, nil
}

type Direction string

const (
	DirectionHorizontal Direction = "HORIZONTAL"
	DirectionVertical   Direction = "VERTICAL"
)

// Ship is one vessel on the grid. A ship only tracks its own cells
// and hits; bounds and collisions are fleet level concerns.
type Ship struct {
	length int
	start  Coord
	dir    Direction
	placed bool
	hits   []bool
}

// NewShipFromLength builds an unplaced ship of a raw length. Wire
// fleets arrive this way since remote players only report lengths,
// not ship types.
func NewShipFromLength(length int) *Ship {
	ship := &Ship{length: length}
	if length > 0 {
		ship.hits = make([]bool, length)
	}
	return ship
}

func (sh *Ship) Place(start Coord, dir Direction) {
	sh.start = start
	sh.dir = dir
	sh.placed = true
}

func (sh *Ship) IsPlaced() bool {
	return sh.placed
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Start() Coord {
	return sh.start
}

func (sh *Ship) Direction() Direction {
	return sh.dir
}

// Coords lists every cell the ship occupies, bow first.
func (sh *Ship) Coords() []Coord {
	if !sh.placed {
		return nil
	}
	return shipSpan(sh.start, sh.dir, sh.length)
}

// ReceiveShot reports whether the shot lands on one of the ship
// segments and flags that segment as hit. Marking is idempotent;
// replaying a shot leaves the ship unchanged but still reports true.
func (sh *Ship) ReceiveShot(shot Coord) bool {
	if !sh.placed {
		return false
	}

	for i, coord := range sh.Coords() {
		if coord == shot {
			sh.hits[i] = true
			return true
		}
	}
	return false
}

func (sh *Ship) IsSunk() bool {
	for _, hit := range sh.hits {
		if !hit {
			return false
		}
	}
	return true
}

// SegmentHits copies out the hit flag of every segment, bow first.
func (sh *Ship) SegmentHits() []bool {
	hits := make([]bool, len(sh.hits))
	copy(hits, sh.hits)
	return hits
}

func shipSpan(start Coord, dir Direction, length int) []Coord {
	if length <= 0 {
		return nil
	}

	span := make([]Coord, 0, length)
	for i := 0; i < length; i++ {
		if dir == DirectionHorizontal {
			span = append(span, NewCoord(start.X+i, start.Y))
		} else {
			span = append(span, NewCoord(start.X, start.Y+i))
		}
	}
	return span
}
