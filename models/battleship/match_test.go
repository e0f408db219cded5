package battleship

import (
	"math/rand"
	"strings"
	"testing"
)

// scriptedPlayer answers with pre-baked fleets and volleys so match
// rules can be pinned down without randomness.
type scriptedPlayer struct {
	name    string
	fleet   []*Ship
	volleys [][]Coord

	volleyIdx   int
	gotShots    [][]Coord
	landedShots [][]Coord
	ended       bool
	endedWon    bool
	endedReason string
}

var _ Player = (*scriptedPlayer)(nil)

func (sp *scriptedPlayer) Name() string {
	return sp.name
}

func (sp *scriptedPlayer) Setup(height, width int, spec FleetSpec) []*Ship {
	return sp.fleet
}

func (sp *scriptedPlayer) Salvo(opponentShots []Coord) []Coord {
	sp.gotShots = append(sp.gotShots, opponentShots)
	if sp.volleyIdx >= len(sp.volleys) {
		return []Coord{}
	}

	volley := sp.volleys[sp.volleyIdx]
	sp.volleyIdx++
	return volley
}

func (sp *scriptedPlayer) Hits(landedShots []Coord) {
	sp.landedShots = append(sp.landedShots, landedShots)
}

func (sp *scriptedPlayer) EndGame(won bool, reason string) {
	sp.ended = true
	sp.endedWon = won
	sp.endedReason = reason
}

func submarineFleet(start Coord) []*Ship {
	return []*Ship{placedShip(3, start, DirectionHorizontal)}
}

func runScriptedMatch(t *testing.T, host, join *scriptedPlayer) MatchOutcome {
	t.Helper()
	manager := NewBattleshipMatchManager()
	match, err := manager.CreateMatch(4, 4, FleetSpec{ShipTypeSubmarine: 1}, host, join)
	if err != nil {
		t.Fatal(err)
	}
	return match.Run()
}

func TestMatchWinBySinkingFleet(t *testing.T) {
	host := &scriptedPlayer{
		name:  "host",
		fleet: submarineFleet(NewCoord(0, 3)),
		volleys: [][]Coord{
			{NewCoord(0, 0)},
			{NewCoord(1, 0)},
			{NewCoord(2, 0)},
		},
	}
	join := &scriptedPlayer{
		name:  "challenger",
		fleet: submarineFleet(NewCoord(0, 0)),
	}

	outcome := runScriptedMatch(t, host, join)
	if outcome.Winner != "host" {
		t.Fatalf("expected winner: host\t got: %s", outcome.Winner)
	}
	if outcome.Forfeit {
		t.Fatal("a sunk fleet is a regular win, not a forfeit")
	}
	if outcome.Rounds != 3 {
		t.Fatalf("expected 3 rounds\t got: %d", outcome.Rounds)
	}
	if !host.ended || !host.endedWon {
		t.Fatal("host must be told it won")
	}
	if !join.ended || join.endedWon {
		t.Fatal("challenger must be told it lost")
	}

	// every landed shot is echoed back to the shooter
	if len(host.landedShots) != 3 || len(host.landedShots[0]) != 1 {
		t.Fatalf("host hit feedback off: %v", host.landedShots)
	}
}

func TestMatchSalvoCarriesPreviousRoundShots(t *testing.T) {
	host := &scriptedPlayer{
		name:  "host",
		fleet: submarineFleet(NewCoord(0, 3)),
		volleys: [][]Coord{
			{NewCoord(0, 0)},
			{NewCoord(1, 0)},
			{NewCoord(2, 0)},
		},
	}
	join := &scriptedPlayer{
		name:  "challenger",
		fleet: submarineFleet(NewCoord(0, 0)),
	}

	runScriptedMatch(t, host, join)

	// round one carries no shots yet, later rounds carry exactly the
	// opponent volley of the round before
	if len(join.gotShots) != 3 {
		t.Fatalf("expected 3 salvo calls\t got: %d", len(join.gotShots))
	}
	if len(join.gotShots[0]) != 0 {
		t.Fatalf("first salvo must carry no shots, got: %v", join.gotShots[0])
	}
	if join.gotShots[1][0] != NewCoord(0, 0) {
		t.Fatalf("second salvo must carry the first host volley, got: %v", join.gotShots[1])
	}
	if join.gotShots[2][0] != NewCoord(1, 0) {
		t.Fatalf("third salvo must carry the second host volley, got: %v", join.gotShots[2])
	}
}

func TestMatchForfeitOnRejectedFleet(t *testing.T) {
	host := &scriptedPlayer{
		name:  "host",
		fleet: submarineFleet(NewCoord(0, 0)),
	}
	join := &scriptedPlayer{
		name:  "challenger",
		fleet: SentinelFleet(),
	}

	outcome := runScriptedMatch(t, host, join)
	if !outcome.Forfeit {
		t.Fatal("a rejected fleet must forfeit the match")
	}
	if outcome.Winner != "host" {
		t.Fatalf("expected winner: host\t got: %s", outcome.Winner)
	}
	if outcome.Rounds != 0 {
		t.Fatalf("no round was played, got: %d", outcome.Rounds)
	}
	if !strings.Contains(outcome.Reason, "fleet of challenger rejected") {
		t.Fatalf("unexpected reason: %s", outcome.Reason)
	}
	if !host.ended || !host.endedWon || !join.ended || join.endedWon {
		t.Fatal("both players must be told the verdict")
	}
}

func TestMatchForfeitOnRejectedVolley(t *testing.T) {
	tests := []struct {
		name       string
		joinVolley []Coord
	}{
		{name: "sentinel volley", joinVolley: SentinelVolley()},
		{name: "shot off the grid", joinVolley: []Coord{NewCoord(4, 0)}},
		{name: "more shots than ships afloat", joinVolley: []Coord{NewCoord(0, 0), NewCoord(1, 1)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			host := &scriptedPlayer{
				name:  "host",
				fleet: submarineFleet(NewCoord(0, 3)),
			}
			join := &scriptedPlayer{
				name:    "challenger",
				fleet:   submarineFleet(NewCoord(0, 0)),
				volleys: [][]Coord{test.joinVolley},
			}

			outcome := runScriptedMatch(t, host, join)
			if !outcome.Forfeit {
				t.Fatal("a rejected volley must forfeit the match")
			}
			if outcome.Winner != "host" {
				t.Fatalf("expected winner: host\t got: %s", outcome.Winner)
			}
			if outcome.Rounds != 1 {
				t.Fatalf("expected 1 round\t got: %d", outcome.Rounds)
			}
			if !strings.Contains(outcome.Reason, "volley of challenger rejected") {
				t.Fatalf("unexpected reason: %s", outcome.Reason)
			}
		})
	}
}

func TestMatchDrawWhenNobodyFires(t *testing.T) {
	host := &scriptedPlayer{name: "host", fleet: submarineFleet(NewCoord(0, 3))}
	join := &scriptedPlayer{name: "challenger", fleet: submarineFleet(NewCoord(0, 0))}

	outcome := runScriptedMatch(t, host, join)
	if !outcome.IsDraw() {
		t.Fatalf("expected a draw\t got winner: %s", outcome.Winner)
	}
	if outcome.Rounds != 1 {
		t.Fatalf("expected 1 round\t got: %d", outcome.Rounds)
	}
	if !strings.Contains(outcome.Reason, "out of shots") {
		t.Fatalf("unexpected reason: %s", outcome.Reason)
	}
	if host.endedWon || join.endedWon {
		t.Fatal("nobody wins a draw")
	}
}

func TestMatchDrawWhenBothFleetsSinkTogether(t *testing.T) {
	killShots := [][]Coord{
		{NewCoord(0, 0)},
		{NewCoord(1, 0)},
		{NewCoord(2, 0)},
	}
	host := &scriptedPlayer{
		name:    "host",
		fleet:   submarineFleet(NewCoord(0, 0)),
		volleys: killShots,
	}
	join := &scriptedPlayer{
		name:    "challenger",
		fleet:   submarineFleet(NewCoord(0, 0)),
		volleys: killShots,
	}

	outcome := runScriptedMatch(t, host, join)
	if !outcome.IsDraw() {
		t.Fatalf("expected a draw\t got winner: %s", outcome.Winner)
	}
	if outcome.Rounds != 3 {
		t.Fatalf("expected 3 rounds\t got: %d", outcome.Rounds)
	}
	if !strings.Contains(outcome.Reason, "destroyed in the same round") {
		t.Fatalf("unexpected reason: %s", outcome.Reason)
	}
}

func TestMatchBetweenTwoAgents(t *testing.T) {
	seeds := []int64{2, 17, 404}

	for _, seed := range seeds {
		hostAgent := NewAgentPlayer(rand.New(rand.NewSource(seed)))
		hostAgent.name = "agent-host"
		joinAgent := NewAgentPlayer(rand.New(rand.NewSource(seed + 1)))
		joinAgent.name = "agent-join"

		manager := NewBattleshipMatchManager()
		match, err := manager.CreateMatch(10, 10, DefaultFleetSpec(), hostAgent, joinAgent)
		if err != nil {
			t.Fatal(err)
		}

		outcome := match.Run()
		if outcome.Forfeit {
			t.Fatalf("seed %d: two honest agents cannot forfeit: %s", seed, outcome.Reason)
		}
		if outcome.Rounds < 1 || outcome.Rounds > 100 {
			t.Fatalf("seed %d: round count out of range: %d", seed, outcome.Rounds)
		}
		switch outcome.Winner {
		case hostAgent.Name():
			if joinAgent.ShipsAfloat() != 0 {
				t.Fatalf("seed %d: loser still has ships afloat", seed)
			}
		case joinAgent.Name():
			if hostAgent.ShipsAfloat() != 0 {
				t.Fatalf("seed %d: loser still has ships afloat", seed)
			}
		default:
			// draws are legitimate, both pools can run dry
			if !outcome.IsDraw() {
				t.Fatalf("seed %d: unknown winner: %s", seed, outcome.Winner)
			}
		}
	}
}
