package api

import (
	"log"
	"time"

	cerr "github.com/CamPlume1/BattleShipServer/internal/error"
	mb "github.com/CamPlume1/BattleShipServer/models/battleship"
	mc "github.com/CamPlume1/BattleShipServer/models/connection"
)

// responseTimeout is how long a remote player has to answer any
// request. One duration, uniform across the message types.
var responseTimeout time.Duration = time.Second * 2

// inboxBufferSize bounds how many frames are kept around between
// requests.
const inboxBufferSize int = 8

// ProxyPlayer makes a remote player on the far end of a message
// channel look like any other Player. Every call sends one named
// message and waits for the reply bearing the same name; a reply
// that is late, malformed or missing degrades the call to its
// sentinel result. The match loop never learns whether the remote
// was slow, silent or gone.
type ProxyPlayer struct {
	name    string
	channel mc.MessageChannel
	inbox   chan mc.Envelope
}

var _ mb.Player = (*ProxyPlayer)(nil)

func NewProxyPlayer(name string, channel mc.MessageChannel) *ProxyPlayer {
	pp := &ProxyPlayer{
		name:    name,
		channel: channel,
		inbox:   make(chan mc.Envelope, inboxBufferSize),
	}
	go pp.readPump()

	return pp
}

// readPump is the single reader of the channel. It survives
// malformed frames and closes the inbox once the connection is gone.
func (pp *ProxyPlayer) readPump() {
	for {
		envelope, err := pp.channel.Receive()
		if err != nil {
			if connErr, ok := err.(mc.ConnErr); ok && connErr.Code() == mc.ConnMalformedPayload {
				log.Printf("dropping malformed frame from %s: %v", pp.name, err)
				continue
			}
			close(pp.inbox)
			return
		}

		select {
		case pp.inbox <- envelope:
		default:
			// a flooding remote gets its backlog dropped rather
			// than blocking the pump
			log.Printf("inbox full, dropping %q from %s", envelope.Name, pp.name)
		}
	}
}

// drainStale throws away frames that arrived after an earlier call
// had already given up waiting on them.
func (pp *ProxyPlayer) drainStale() {
	for {
		select {
		case envelope, prs := <-pp.inbox:
			if !prs {
				return
			}
			log.Printf("discarding stale %q from %s", envelope.Name, pp.name)
		default:
			return
		}
	}
}

// exchange performs one round trip: send the message, then wait up
// to responseTimeout for a reply carrying the same name.
func (pp *ProxyPlayer) exchange(name string, msg any) (mc.Envelope, error) {
	pp.drainStale()

	if err := pp.channel.Send(msg); err != nil {
		return mc.Envelope{}, err
	}

	timer := time.NewTimer(responseTimeout)
	defer timer.Stop()

	select {
	case reply, prs := <-pp.inbox:
		if !prs {
			return mc.Envelope{}, cerr.ErrConnectionClosed(pp.name)
		}
		if reply.Name != name {
			return mc.Envelope{}, cerr.ErrReplyNameMismatch(name, reply.Name)
		}
		return reply, nil

	case <-timer.C:
		return mc.Envelope{}, cerr.ErrReplyTimeout(name, responseTimeout)
	}
}

func (pp *ProxyPlayer) Name() string {
	return pp.name
}

// Setup asks the remote player for its fleet. Anything short of a
// well formed fleet reply in time degrades to the sentinel fleet.
func (pp *ProxyPlayer) Setup(height, width int, spec mb.FleetSpec) []*mb.Ship {
	msg := mc.NewMessage[mc.SetupArgs](mc.MessageSetup)
	msg.AddArguments(mc.SetupArgs{Height: height, Width: width, FleetSpec: spec})

	reply, err := pp.exchange(mc.MessageSetup, msg)
	if err != nil {
		log.Printf("setup of %s yields no reply: %v", pp.name, err)
		return mb.SentinelFleet()
	}

	var fleetArgs mc.FleetArgs
	if err := reply.DecodeArguments(&fleetArgs); err != nil {
		log.Printf("setup of %s: %v", pp.name, cerr.ErrMalformedArguments(mc.MessageSetup, err))
		return mb.SentinelFleet()
	}

	fleet, err := fleetArgs.Ships()
	if err != nil {
		log.Printf("setup of %s: %v", pp.name, err)
		return mb.SentinelFleet()
	}
	return fleet
}

// Salvo reports the opponent shots of the previous round and waits
// for the next volley of the remote player.
func (pp *ProxyPlayer) Salvo(opponentShots []mb.Coord) []mb.Coord {
	msg := mc.NewMessage[mc.Volley](mc.MessageTakeTurn)
	msg.AddArguments(mc.NewVolley(opponentShots))

	reply, err := pp.exchange(mc.MessageTakeTurn, msg)
	if err != nil {
		log.Printf("take-turn of %s yields no reply: %v", pp.name, err)
		return mb.SentinelVolley()
	}

	var volley mc.Volley
	if err := reply.DecodeArguments(&volley); err != nil {
		log.Printf("take-turn of %s: %v", pp.name, cerr.ErrMalformedArguments(mc.MessageTakeTurn, err))
		return mb.SentinelVolley()
	}
	return volley.Coordinates
}

// Hits reports which shots of the previous volley landed on opponent
// ships. The reply is an acknowledgement only, whatever it carries
// is dropped.
func (pp *ProxyPlayer) Hits(landedShots []mb.Coord) {
	msg := mc.NewMessage[mc.Volley](mc.MessageHit)
	msg.AddArguments(mc.NewVolley(landedShots))

	if _, err := pp.exchange(mc.MessageHit, msg); err != nil {
		log.Printf("hit report to %s not acknowledged: %v", pp.name, err)
	}
}

// EndGame delivers the verdict and closes the channel. The remote
// acknowledgement is waited for but not required.
func (pp *ProxyPlayer) EndGame(won bool, reason string) {
	msg := mc.NewMessage[mc.WinArgs](mc.MessageWin)
	msg.AddArguments(mc.WinArgs{Win: won})

	if _, err := pp.exchange(mc.MessageWin, msg); err != nil {
		log.Printf("win report to %s not acknowledged: %v", pp.name, err)
	}
	log.Printf("%s game over, won: %t, reason: %s", pp.name, won, reason)

	if err := pp.channel.Close(); err != nil {
		log.Printf("closing channel of %s: %v", pp.name, err)
	}
}
