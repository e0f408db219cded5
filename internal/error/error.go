package error

import (
	"fmt"
	"time"
)

func ErrMatchNotExists(matchUuid string) error {
	return fmt.Errorf("match with this uuid does not exist, uuid: %s", matchUuid)
}

func ErrInvalidGridSize(height, width int) error {
	return fmt.Errorf("grid dimensions must be positive\theight: %d\twidth: %d", height, width)
}

func ErrEmptyFleetSpec() error {
	return fmt.Errorf("fleet spec does not request any ships")
}

func ErrUnknownShipType(shipType string) error {
	return fmt.Errorf("ship type is not in the reference table:\t%s", shipType)
}

func ErrNegativeShipCount(shipType string, count int) error {
	return fmt.Errorf("fleet spec requests a negative ship count\ttype: %s\tcount: %d", shipType, count)
}

func ErrShipDoesNotFit(shipType string, height, width int) error {
	return fmt.Errorf("no collision free spot found for ship\ttype: %s\tgrid height: %d\tgrid width: %d", shipType, height, width)
}

func ErrFleetSizeMismatch(got, want int) error {
	return fmt.Errorf("fleet does not hold the requested number of ships\tgot: %d\twant: %d", got, want)
}

func ErrFleetLengthsMismatch(got, want []int) error {
	return fmt.Errorf("fleet ship lengths do not match the requested spec\tgot: %v\twant: %v", got, want)
}

func ErrShipNotPlaced() error {
	return fmt.Errorf("ship has no position on the grid yet")
}

func ErrUnknownDirection(direction string) error {
	return fmt.Errorf("direction is neither HORIZONTAL nor VERTICAL:\t%s", direction)
}

func ErrShipOutOfGridBound(x, y int) error {
	return fmt.Errorf("ship segment is out of game grid bound\tx: %d\ty: %d", x, y)
}

func ErrShipsOverlap(x, y int) error {
	return fmt.Errorf("two ships occupy the same position\tx: %d\ty: %d", x, y)
}

func ErrShotOutOfGridBound(x, y int) error {
	return fmt.Errorf("incoming shot is out of game grid bound\tx: %d\ty: %d", x, y)
}

func ErrVolleyTooLarge(got, allowed int) error {
	return fmt.Errorf("volley holds more shots than ships afloat\tgot: %d\tallowed: %d", got, allowed)
}

func ErrReplyTimeout(msgName string, timeout time.Duration) error {
	return fmt.Errorf("no reply within the response deadline\tmessage: %s\tdeadline: %s", msgName, timeout)
}

func ErrReplyNameMismatch(want, got string) error {
	return fmt.Errorf("reply does not answer the message sent\twant: %s\tgot: %s", want, got)
}

func ErrConnectionClosed(player string) error {
	return fmt.Errorf("connection to player is closed, player: %s", player)
}

func ErrMalformedArguments(msgName string, err error) error {
	return fmt.Errorf("arguments of message could not be decoded\tmessage: %s\tcause: %v", msgName, err)
}
