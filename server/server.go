package server

import (
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"

	"github.com/tabledeck/blackjack/game"
	"github.com/tabledeck/blackjack/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GameServer hosts one dealing session per websocket connection
type GameServer struct {
	shoeSize int
	logger   *log.Logger

	mu       sync.Mutex
	sessions map[string]*game.Session

	http.Server
}

// NewID constructs a session ID
func NewID() string {
	return uuid.NewV4().String()
}

// New creates a GameServer
func New(cfg Config) *GameServer {
	g := &GameServer{
		shoeSize: cfg.ShoeSize,
		logger:   log.New(os.Stdout, "[blackjack] ", log.LstdFlags),
		sessions: map[string]*game.Session{},
	}

	router := http.NewServeMux()
	router.Handle("/ws", http.HandlerFunc(g.HandleWS))

	g.Addr = cfg.Addr
	g.Handler = handlers.LoggingHandler(os.Stdout, router)

	return g
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleWS upgrades the connection and runs its dealing session until
// the client goes away. The session lives and dies with the connection.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Printf("could not upgrade to websocket: %v", err)
		return
	}

	sessionID := NewID()
	session := game.NewSession(g.shoeSize, g.logger)
	g.addSession(sessionID, session)

	g.logger.Printf("new connection from %s (session %s, %d active)", r.RemoteAddr, sessionID, g.ActiveSessions())

	defer func() {
		conn.Close()
		g.removeSession(sessionID)
		g.logger.Printf("terminated session %s (%d active)", sessionID, g.ActiveSessions())
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		msg, err := protocol.Decode(raw)
		if err != nil {
			// a corrupt frame must not kill a live game
			g.logger.Printf("dropping malformed frame on session %s: %v", sessionID, err)
			continue
		}

		replies, err := session.Handle(msg)
		if err != nil {
			g.logger.Printf("could not handle %s on session %s: %v", msg.Action, sessionID, err)
			continue
		}

		for _, reply := range replies {
			data, err := protocol.Encode(reply)
			if err != nil {
				g.logger.Printf("could not encode %s: %v", reply.Action, err)
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}
}

func (g *GameServer) addSession(id string, s *game.Session) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[id] = s
}

func (g *GameServer) removeSession(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.sessions, id)
}

// ActiveSessions reports how many connections are currently playing
func (g *GameServer) ActiveSessions() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sessions)
}
