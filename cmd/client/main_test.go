package main

import (
	"fmt"
	"testing"

	mb "github.com/CamPlume1/BattleShipServer/models/battleship"
)

func TestPushUpdateDropsWhenUiLagsBehind(t *testing.T) {
	updates := make(chan boardUpdate, 2)
	for round := 1; round <= 4; round++ {
		pushUpdate(updates, boardUpdate{phase: "battle", note: fmt.Sprintf("round %d", round)})
	}

	if len(updates) != 2 {
		t.Fatalf("expected 2 queued snapshots\t got: %d", len(updates))
	}
	first := <-updates
	if first.note != "round 1" {
		t.Fatalf("expected the oldest snapshot first\t got: %s", first.note)
	}
}

// TestPushFinalSurvivesFullBuffer pins down that the closing snapshot
// reaches the UI even when the buffer is clogged with stale rounds,
// where a plain pushUpdate would silently drop it.
func TestPushFinalSurvivesFullBuffer(t *testing.T) {
	updates := make(chan boardUpdate, 2)
	pushUpdate(updates, boardUpdate{phase: "battle", note: "round 1"})
	pushUpdate(updates, boardUpdate{phase: "battle", note: "round 2"})

	pushFinal(updates, boardUpdate{phase: "game over", note: "you won", done: true})

	var last boardUpdate
	received := 0
	for len(updates) > 0 {
		last = <-updates
		received++
	}

	if received == 0 {
		t.Fatal("expected at least the closing snapshot")
	}
	if !last.done {
		t.Fatalf("last queued snapshot must be the closing one\t got phase: %s", last.phase)
	}
	if last.phase != "game over" || last.note != "you won" {
		t.Fatalf("closing snapshot mangled\t phase: %s\t note: %s", last.phase, last.note)
	}
}

func TestModelStopsOnClosingSnapshot(t *testing.T) {
	m := initialModel("localhost:8000", make(chan boardUpdate, 1), make(chan mb.Coord, 1))

	next, cmd := m.Update(boardUpdate{phase: "game over", note: "you won", done: true})
	if cmd != nil {
		t.Fatal("a done snapshot must not re-arm the update wait")
	}
	if !next.(model).done {
		t.Fatal("model must record that the match is over")
	}
}

func TestOverlayCursor(t *testing.T) {
	board := "~~~\n~~~\n"

	tests := []struct {
		name     string
		cursor   mb.Coord
		expected string
	}{
		{
			name:     "crosshair on the middle cell",
			cursor:   mb.Coord{X: 1, Y: 1},
			expected: "~~~\n~+~\n",
		},
		{
			name:     "crosshair off the board leaves it alone",
			cursor:   mb.Coord{X: 5, Y: 5},
			expected: board,
		},
		{
			name:     "negative cursor leaves it alone",
			cursor:   mb.Coord{X: -1, Y: 0},
			expected: board,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := overlayCursor(board, test.cursor); got != test.expected {
				t.Fatalf("expected board:\n%s\n got:\n%s", test.expected, got)
			}
		})
	}
}
