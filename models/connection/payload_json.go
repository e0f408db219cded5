package connection

import (
	cerr "github.com/CamPlume1/BattleShipServer/internal/error"
	mb "github.com/CamPlume1/BattleShipServer/models/battleship"
)

// SetupArgs opens a game: the grid dimensions and the fleet spec the
// remote player must field.
type SetupArgs struct {
	Height    int          `json:"height"`
	Width     int          `json:"width"`
	FleetSpec mb.FleetSpec `json:"fleet_spec"`
}

// Volley carries shot coordinates, in both directions of a take-turn
// exchange and in a hit report.
type Volley struct {
	Coordinates []mb.Coord `json:"coordinates"`
}

// NewVolley normalizes a nil slice so an empty volley serializes as
// an empty list, not null.
func NewVolley(coordinates []mb.Coord) Volley {
	if coordinates == nil {
		coordinates = []mb.Coord{}
	}
	return Volley{Coordinates: coordinates}
}

// PlacedShip is the wire form of one ship: its bow coordinate, raw
// length and direction.
type PlacedShip struct {
	Coord     mb.Coord     `json:"coord"`
	Length    int          `json:"length"`
	Direction mb.Direction `json:"direction"`
}

// FleetArgs answers a setup request.
type FleetArgs struct {
	Fleet []PlacedShip `json:"fleet"`
}

func NewFleetArgs(fleet []*mb.Ship) FleetArgs {
	wire := make([]PlacedShip, 0, len(fleet))
	for _, ship := range fleet {
		wire = append(wire, PlacedShip{
			Coord:     ship.Start(),
			Length:    ship.Length(),
			Direction: ship.Direction(),
		})
	}
	return FleetArgs{Fleet: wire}
}

// Ships turns the wire fleet back into placed ships. A direction
// outside the enum spoils the whole fleet, mirroring how a typed
// decoder would reject the message.
func (fa FleetArgs) Ships() ([]*mb.Ship, error) {
	fleet := make([]*mb.Ship, 0, len(fa.Fleet))
	for _, placed := range fa.Fleet {
		if placed.Direction != mb.DirectionHorizontal && placed.Direction != mb.DirectionVertical {
			return nil, cerr.ErrUnknownDirection(string(placed.Direction))
		}

		ship := mb.NewShipFromLength(placed.Length)
		ship.Place(placed.Coord, placed.Direction)
		fleet = append(fleet, ship)
	}
	return fleet, nil
}

// WinArgs closes the game for one player.
type WinArgs struct {
	Win bool `json:"win"`
}
