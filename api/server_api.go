package api

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/CamPlume1/BattleShipServer/db/sqlc"
	mb "github.com/CamPlume1/BattleShipServer/models/battleship"
	mc "github.com/CamPlume1/BattleShipServer/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultGridHeight int = 10
	defaultGridWidth  int = 10
)

var (
	defaultPort string = "8000"

	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// probably more that enough but this is a good average size
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

// Server accepts websocket connections and hosts one match per
// connection, the in process agent against the remote player.
type Server struct {
	port   string
	stage  string
	height int
	width  int
	spec   mb.FleetSpec

	q     sqlc.Querier
	ipnet net.IPNet

	MatchManager *mb.BattleshipMatchManager
}

type Option func(*Server) error

func NewServer(optFuncs ...Option) *Server {
	var server Server
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}
	if server.port == "" {
		server.port = defaultPort
	}
	if server.height == 0 {
		server.height = defaultGridHeight
	}
	if server.width == 0 {
		server.width = defaultGridWidth
	}
	if server.spec == nil {
		server.spec = mb.DefaultFleetSpec()
	}

	server.MatchManager = mb.NewBattleshipMatchManager()

	// analytics rows are keyed by the server ip, no point hunting
	// for one when no database is wired up
	if server.q != nil {
		server.ipnet = mustGetServerIpNet()
	}

	return &server
}

func WithPort(port string) Option {
	return func(s *Server) error {
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func WithQuerier(q sqlc.Querier) Option {
	return func(s *Server) error {
		s.q = q
		return nil
	}
}

func WithGridSize(height, width int) Option {
	return func(s *Server) error {
		if height < 1 || width < 1 {
			return fmt.Errorf("invalid grid size: %d by %d", height, width)
		}
		s.height = height
		s.width = width
		return nil
	}
}

func WithFleetSpec(spec mb.FleetSpec) Option {
	return func(s *Server) error {
		if err := spec.Validate(); err != nil {
			return err
		}
		if spec.TotalShips() < 1 {
			return fmt.Errorf("fleet spec requests no ships")
		}
		s.spec = spec
		return nil
	}
}

func (s *Server) Port() string {
	return s.port
}

func mustGetServerIpNet() net.IPNet {
	ifaces, err := net.Interfaces()
	if err != nil {
		panic(err)
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			panic(err)
		}

		for _, addr := range addrs {
			var ipnet *net.IPNet
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ipnet = v
				ip = v.IP

			case *net.IPAddr:
				ip = v.IP
			}

			if ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				return *ipnet
			}
		}
	}

	panic("ipnet could not be found!")
}

func (s *Server) HandleWs(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
	go s.hostMatch(conn)
}

// hostMatch referees the in process agent against the remote player
// on the far end of the fresh connection. One match per connection,
// the connection is done when the match is.
func (s *Server) hostMatch(conn *websocket.Conn) {
	sessionIdRaw := uuid.New().String()
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(sessionIdRaw))

	agent := mb.NewAgentPlayer(rand.New(rand.NewSource(time.Now().UnixNano())))
	challenger := NewProxyPlayer(conn.RemoteAddr().String(), mc.NewWsMessageChannel(conn))

	match, err := s.MatchManager.CreateMatch(s.height, s.width, s.spec, agent, challenger)
	if err != nil {
		log.Println("failed to create match:", err)
		conn.Close()
		return
	}
	defer s.MatchManager.TerminateMatch(match.Uuid)

	log.Printf("session %s hosting match %s against %s\n", sessionId, match.Uuid, challenger.Name())

	outcome := match.Run()
	if outcome.IsDraw() {
		log.Printf("match %s drawn after %d rounds: %s\n", match.Uuid, outcome.Rounds, outcome.Reason)
	} else {
		log.Printf("match %s won by %s after %d rounds: %s\n", match.Uuid, outcome.Winner, outcome.Rounds, outcome.Reason)
	}

	s.recordOutcome(outcome)
}

func (s *Server) recordOutcome(outcome mb.MatchOutcome) {
	if s.q == nil {
		return
	}

	serverPqtypeInet := pqtype.Inet{IPNet: s.ipnet, Valid: true}
	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := s.q.AnalyticsIncrementMatchesHostedCount(ctx, serverPqtypeInet); err != nil {
		// for now not killing the server for it
		log.Println(err)
	}

	switch outcome.Winner {
	case "":
	case mb.ServerAgentName:
		if err := s.q.AnalyticsIncrementAgentWinsCount(ctx, serverPqtypeInet); err != nil {
			log.Println(err)
		}
	default:
		if err := s.q.AnalyticsIncrementChallengerWinsCount(ctx, serverPqtypeInet); err != nil {
			log.Println(err)
		}
	}

	if outcome.Forfeit {
		if err := s.q.AnalyticsIncrementForfeitsCount(ctx, serverPqtypeInet); err != nil {
			log.Println(err)
		}
	}
}
