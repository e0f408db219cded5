package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"

	mb "github.com/CamPlume1/BattleShipServer/models/battleship"
	mc "github.com/CamPlume1/BattleShipServer/models/connection"
)

// boardUpdate is one display snapshot pushed by the play goroutine
// after it handled a server message.
type boardUpdate struct {
	phase       string
	note        string
	ownBoard    string
	attackBoard string
	height      int
	width       int
	done        bool
}

type model struct {
	addr        string
	phase       string
	ownBoard    string
	attackBoard string
	recentNotes []string
	height      int
	width       int
	cursor      mb.Coord
	done        bool
	updates     chan boardUpdate
	aims        chan mb.Coord
}

func initialModel(addr string, updates chan boardUpdate, aims chan mb.Coord) model {
	return model{
		addr:    addr,
		phase:   "waiting for setup",
		updates: updates,
		aims:    aims,
	}
}

func waitForUpdate(updates chan boardUpdate) tea.Cmd {
	return func() tea.Msg {
		return <-updates
	}
}

func (m model) Init() tea.Cmd {
	return waitForUpdate(m.updates)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up":
			if m.cursor.Y > 0 {
				m.cursor.Y--
			}
		case "down":
			if m.cursor.Y < m.height-1 {
				m.cursor.Y++
			}
		case "left":
			if m.cursor.X > 0 {
				m.cursor.X--
			}
		case "right":
			if m.cursor.X < m.width-1 {
				m.cursor.X++
			}
		case "enter", " ":
			if m.height > 0 && !m.done {
				// latest aim wins, the play loop picks it up on the
				// next take-turn
				select {
				case <-m.aims:
				default:
				}
				m.aims <- m.cursor
				m.recentNotes = append([]string{fmt.Sprintf("aiming at (%d,%d)", m.cursor.X, m.cursor.Y)}, m.recentNotes...)
				if len(m.recentNotes) > 10 {
					m.recentNotes = m.recentNotes[:10]
				}
			}
		}
	case boardUpdate:
		m.phase = msg.phase
		m.done = msg.done
		if msg.height > 0 {
			m.height = msg.height
			m.width = msg.width
		}
		if msg.ownBoard != "" {
			m.ownBoard = msg.ownBoard
		}
		if msg.attackBoard != "" {
			m.attackBoard = msg.attackBoard
		}
		if msg.note != "" {
			m.recentNotes = append([]string{msg.note}, m.recentNotes...)
			if len(m.recentNotes) > 10 {
				m.recentNotes = m.recentNotes[:10]
			}
		}
		if m.done {
			return m, nil
		}
		return m, waitForUpdate(m.updates)
	}
	return m, nil
}

func (m model) View() string {
	s := fmt.Sprintf("Battleship client, server: %s\n", m.addr)
	s += fmt.Sprintf("Phase: %s\n\n", m.phase)

	if m.ownBoard != "" {
		s += "Your waters:\n" + m.ownBoard + "\n"
	}
	if m.attackBoard != "" {
		s += "Your shots:\n" + overlayCursor(m.attackBoard, m.cursor) + "\n"
	}

	s += "Recent events:\n"
	for _, note := range m.recentNotes {
		s += note + "\n"
	}

	s += "\nArrow keys move the crosshair, enter locks your next shot, q quits.\n"
	return s
}

// overlayCursor draws the crosshair on top of the rendered shot board.
func overlayCursor(board string, cursor mb.Coord) string {
	lines := strings.Split(board, "\n")
	if cursor.Y < 0 || cursor.Y >= len(lines) {
		return board
	}
	row := []rune(lines[cursor.Y])
	if cursor.X < 0 || cursor.X >= len(row) {
		return board
	}
	row[cursor.X] = '+'
	lines[cursor.Y] = string(row)
	return strings.Join(lines, "\n")
}

// play runs the protocol against the server. The embedded agent makes
// every decision so replies never wait on the operator; a pending aim
// from the UI only redirects the first shot of the next volley.
func play(channel *mc.WsMessageChannel, agent *mb.AgentPlayer, updates chan boardUpdate, aims chan mb.Coord) {
	defer channel.Close()

	var height, width int
	round := 0

	for {
		envelope, err := channel.Receive()
		if err != nil {
			if connErr, ok := err.(mc.ConnErr); ok && connErr.Code() == mc.ConnMalformedPayload {
				log.Println("dropping malformed frame:", err)
				continue
			}
			pushFinal(updates, boardUpdate{phase: "connection closed", note: "server hung up", done: true})
			return
		}

		switch envelope.Name {
		case mc.MessageSetup:
			var args mc.SetupArgs
			if err := envelope.DecodeArguments(&args); err != nil {
				log.Println("bad setup arguments:", err)
				continue
			}
			height, width = args.Height, args.Width

			fleet := agent.Setup(args.Height, args.Width, args.FleetSpec)
			msg := mc.NewMessage[mc.FleetArgs](mc.MessageSetup)
			msg.AddArguments(mc.NewFleetArgs(fleet))
			if err := channel.Send(msg); err != nil {
				log.Println("sending fleet:", err)
				pushFinal(updates, boardUpdate{phase: "connection closed", note: "connection lost", done: true})
				return
			}

			pushUpdate(updates, boardUpdate{
				phase:       "battle",
				note:        fmt.Sprintf("placed %d ships on a %d by %d grid", len(fleet), height, width),
				ownBoard:    renderOwnBoard(agent.Fleet(), height, width),
				attackBoard: renderAttackBoard(agent.AttackGrid()),
				height:      height,
				width:       width,
			})

		case mc.MessageTakeTurn:
			var volley mc.Volley
			if err := envelope.DecodeArguments(&volley); err != nil {
				log.Println("bad take-turn arguments:", err)
				continue
			}
			round++

			aim := mb.SentinelCoord
			select {
			case aim = <-aims:
			default:
			}
			shots := agent.SalvoWithAim(volley.Coordinates, aim)
			msg := mc.NewMessage[mc.Volley](mc.MessageTakeTurn)
			msg.AddArguments(mc.NewVolley(shots))
			if err := channel.Send(msg); err != nil {
				log.Println("sending volley:", err)
				pushFinal(updates, boardUpdate{phase: "connection closed", note: "connection lost", done: true})
				return
			}

			pushUpdate(updates, boardUpdate{
				phase:       "battle",
				note:        fmt.Sprintf("round %d: took %d shots, fired %d back", round, len(volley.Coordinates), len(shots)),
				ownBoard:    renderOwnBoard(agent.Fleet(), height, width),
				attackBoard: renderAttackBoard(agent.AttackGrid()),
			})

		case mc.MessageHit:
			var volley mc.Volley
			if err := envelope.DecodeArguments(&volley); err != nil {
				log.Println("bad hit arguments:", err)
				continue
			}

			agent.Hits(volley.Coordinates)
			ack := mc.NewMessage[mc.Volley](mc.MessageHit)
			ack.AddArguments(mc.NewVolley(nil))
			if err := channel.Send(ack); err != nil {
				log.Println("acknowledging hits:", err)
				pushFinal(updates, boardUpdate{phase: "connection closed", note: "connection lost", done: true})
				return
			}

			pushUpdate(updates, boardUpdate{
				phase:       "battle",
				note:        fmt.Sprintf("%d of your shots landed", len(volley.Coordinates)),
				attackBoard: renderAttackBoard(agent.AttackGrid()),
			})

		case mc.MessageWin:
			var args mc.WinArgs
			if err := envelope.DecodeArguments(&args); err != nil {
				log.Println("bad win arguments:", err)
			}

			ack := mc.NewMessage[mc.WinArgs](mc.MessageWin)
			ack.AddArguments(args)
			if err := channel.Send(ack); err != nil {
				log.Println("acknowledging verdict:", err)
			}

			verdict := "you lost"
			if args.Win {
				verdict = "you won"
			}
			pushFinal(updates, boardUpdate{phase: "game over", note: verdict, done: true})
			return

		default:
			log.Printf("unknown message %q from server", envelope.Name)
		}
	}
}

// pushUpdate drops the snapshot when the UI is not keeping up so the
// play loop never stalls behind rendering.
func pushUpdate(updates chan boardUpdate, update boardUpdate) {
	select {
	case updates <- update:
	default:
	}
}

// pushFinal delivers the closing snapshot no matter how far the UI
// lags behind, evicting queued stale snapshots until it fits. Only
// the last push of the match may use this, anything earlier is
// allowed to drop.
func pushFinal(updates chan boardUpdate, update boardUpdate) {
	for {
		select {
		case updates <- update:
			return
		case <-updates:
		}
	}
}

func renderOwnBoard(fleet []*mb.Ship, height, width int) string {
	cells := blankBoard(height, width)
	for _, ship := range fleet {
		hits := ship.SegmentHits()
		for i, coord := range ship.Coords() {
			if !coord.InBound(height, width) {
				continue
			}
			if hits[i] {
				cells[coord.Y][coord.X] = 'X'
			} else {
				cells[coord.Y][coord.X] = 'S'
			}
		}
	}
	return boardString(cells)
}

func renderAttackBoard(grid mb.Grid) string {
	if len(grid) == 0 {
		return ""
	}
	cells := blankBoard(len(grid), len(grid[0]))
	for y := range grid {
		for x := range grid[y] {
			switch grid[y][x] {
			case mb.PositionStateSplash:
				cells[y][x] = 'o'
			case mb.PositionStateHit:
				cells[y][x] = 'X'
			}
		}
	}
	return boardString(cells)
}

func blankBoard(height, width int) [][]rune {
	cells := make([][]rune, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]rune, width)
		for x := 0; x < width; x++ {
			cells[y][x] = '~'
		}
	}
	return cells
}

func boardString(cells [][]rune) string {
	var sb strings.Builder
	for _, row := range cells {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func main() {
	addr := flag.String("addr", "localhost:8000", "host:port of the battleship server")
	flag.Parse()

	conn, _, err := websocket.DefaultDialer.Dial(fmt.Sprintf("ws://%s/battleship", *addr), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not reach server at %s: %v\n", *addr, err)
		os.Exit(1)
	}

	// Redirect logs to file to avoid messing up TUI
	f, err := os.OpenFile("client.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	log.SetOutput(f)

	agent := mb.NewAgentPlayer(rand.New(rand.NewSource(time.Now().UnixNano())))
	updates := make(chan boardUpdate, 8)
	aims := make(chan mb.Coord, 1)
	go play(mc.NewWsMessageChannel(conn), agent, updates, aims)

	p := tea.NewProgram(initialModel(*addr, updates, aims), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
