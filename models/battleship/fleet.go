package battleship

import (
	"math/rand"
	"sort"

	cerr "github.com/CamPlume1/BattleShipServer/internal/error"
)

// maxPlacementAttempts caps how many random spots are tried per ship
// before the grid is declared too crowded for the requested spec.
const maxPlacementAttempts int = 10000

// FleetSpec maps ship types to how many of each a player must field.
type FleetSpec map[ShipType]int

func DefaultFleetSpec() FleetSpec {
	return FleetSpec{
		ShipTypeCarrier:    1,
		ShipTypeBattleship: 1,
		ShipTypeDestroyer:  1,
		ShipTypeSubmarine:  1,
	}
}

func (fs FleetSpec) TotalShips() int {
	total := 0
	for _, count := range fs {
		total += count
	}
	return total
}

// Validate rejects unknown ship types and negative counts. A negative
// count cancels out another type in TotalShips yet places zero ships,
// so the fleet fielded would not be the one the spec declares.
func (fs FleetSpec) Validate() error {
	for shipType, count := range fs {
		if _, err := shipType.Length(); err != nil {
			return err
		}
		if count < 0 {
			return cerr.ErrNegativeShipCount(string(shipType), count)
		}
	}
	return nil
}

// expectedLengths resolves the spec to the multiset of ship lengths
// it requests, in catalogue order.
func (fs FleetSpec) expectedLengths() ([]int, error) {
	if err := fs.Validate(); err != nil {
		return nil, err
	}

	lengths := make([]int, 0, fs.TotalShips())
	for _, shipType := range shipCatalogue {
		length, _ := shipType.Length()
		for i := 0; i < fs[shipType]; i++ {
			lengths = append(lengths, length)
		}
	}
	return lengths, nil
}

// PlaceFleet builds a fleet for the spec with every ship dropped on
// a uniformly random spot so that no ship leaves the grid and no two
// ships overlap. Ships are placed in catalogue order, largest first.
func PlaceFleet(height, width int, spec FleetSpec, rng *rand.Rand) ([]*Ship, error) {
	if height < 1 || width < 1 {
		return nil, cerr.ErrInvalidGridSize(height, width)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.TotalShips() < 1 {
		return nil, cerr.ErrEmptyFleetSpec()
	}

	fleet := make([]*Ship, 0, spec.TotalShips())
	occupied := make(map[Coord]bool)
	for _, shipType := range shipCatalogue {
		for i := 0; i < spec[shipType]; i++ {
			ship, err := placeShip(shipType, height, width, occupied, rng)
			if err != nil {
				return nil, err
			}
			fleet = append(fleet, ship)
		}
	}
	return fleet, nil
}

func placeShip(shipType ShipType, height, width int, occupied map[Coord]bool, rng *rand.Rand) (*Ship, error) {
	length, err := shipType.Length()
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		start := NewCoord(rng.Intn(width), rng.Intn(height))
		dir := DirectionHorizontal
		if rng.Intn(2) == 1 {
			dir = DirectionVertical
		}

		span := shipSpan(start, dir, length)
		if !spanFits(span, height, width, occupied) {
			continue
		}

		ship := NewShipFromLength(length)
		ship.Place(start, dir)
		for _, coord := range span {
			occupied[coord] = true
		}
		return ship, nil
	}
	return nil, cerr.ErrShipDoesNotFit(string(shipType), height, width)
}

func spanFits(span []Coord, height, width int, occupied map[Coord]bool) bool {
	for _, coord := range span {
		if !coord.InBound(height, width) {
			return false
		}
		if occupied[coord] {
			return false
		}
	}
	return true
}

// ValidateFleet checks a fleet against the grid bounds and the spec
// it was requested with. The order of ships does not matter, only
// the multiset of lengths.
func ValidateFleet(fleet []*Ship, height, width int, spec FleetSpec) error {
	want, err := spec.expectedLengths()
	if err != nil {
		return err
	}
	if len(fleet) != len(want) {
		return cerr.ErrFleetSizeMismatch(len(fleet), len(want))
	}

	got := make([]int, 0, len(fleet))
	occupied := make(map[Coord]bool)
	for _, ship := range fleet {
		if !ship.IsPlaced() {
			return cerr.ErrShipNotPlaced()
		}
		got = append(got, ship.Length())

		for _, coord := range ship.Coords() {
			if !coord.InBound(height, width) {
				return cerr.ErrShipOutOfGridBound(coord.X, coord.Y)
			}
			if occupied[coord] {
				return cerr.ErrShipsOverlap(coord.X, coord.Y)
			}
			occupied[coord] = true
		}
	}

	sort.Ints(got)
	sort.Ints(want)
	for i := range want {
		if got[i] != want[i] {
			return cerr.ErrFleetLengthsMismatch(got, want)
		}
	}
	return nil
}

// SentinelVolley is the volley a proxy substitutes when its remote
// player produced nothing usable in time.
func SentinelVolley() []Coord {
	return []Coord{SentinelCoord}
}

// SentinelFleet is the fleet counterpart: a single invalid ship
// placed off grid. Fleet validation rejects it, which the game rules
// treat as a forfeit.
func SentinelFleet() []*Ship {
	ship := NewShipFromLength(-1)
	ship.Place(SentinelCoord, DirectionVertical)
	return []*Ship{ship}
}
