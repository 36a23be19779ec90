package main

import (
	"log"
	"sync"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/gorilla/websocket"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"github.com/tabledeck/blackjack/client"
	"github.com/tabledeck/blackjack/protocol"
)

type config struct {
	ServerURL string `env:"BLACKJACK_SERVER_URL,default=ws://127.0.0.1:3000/ws"`
}

// sender serialises socket writes across the input callbacks
type sender struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *sender) send(msg protocol.Message) {
	data, err := protocol.Encode(msg)
	if err != nil {
		log.Printf("could not encode %s: %v", msg.Action, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("could not send %s: %v", msg.Action, err)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using the environment as is")
	}

	var cfg config
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatal(err.Error())
	}

	name, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Player name").
		Show()

	state := client.NewState()

	// one-shot handoff of the write half once the socket is open; the
	// render loop blocks until it arrives
	ready := make(chan *sender)
	disconnected := make(chan struct{})
	quit := make(chan struct{})

	go runSocket(cfg.ServerURL, state, ready, disconnected)

	snd := <-ready
	snd.send(protocol.Message{Action: protocol.NewPlayer, Text: name})

	go func() {
		listenKeys(state, snd)
		close(quit)
	}()

	runRenderLoop(state, name, disconnected, quit)
}

// runSocket owns the read half of the connection and feeds the shared
// session state. The goroutine is not joined on shutdown.
func runSocket(url string, state *client.State, ready chan<- *sender, disconnected chan<- struct{}) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Fatalf("could not reach the table at %s: %v", url, err)
	}

	ready <- &sender{conn: conn}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			close(disconnected)
			return
		}

		msg, err := protocol.Decode(raw)
		if err != nil {
			log.Printf("dropping malformed frame: %v", err)
			continue
		}

		state.HandleMessage(msg)
	}
}

// listenKeys maps single key presses onto guarded session requests.
// It returns when the player quits with Ctrl+C.
func listenKeys(state *client.State, snd *sender) {
	keyboard.Listen(func(key keys.Key) (bool, error) {
		switch key.Code {
		case keys.CtrlC:
			return true, nil

		case keys.Enter:
			if msg, ok := state.HitRequest(); ok {
				snd.send(msg)
			}

		case keys.Space:
			if msg, ok := state.StandRequest(); ok {
				snd.send(msg)
			}

		case keys.RuneKey:
			switch key.String() {
			case "d", "D":
				if msg, ok := state.DoubleDownRequest(); ok {
					snd.send(msg)
				}
			case "s", "S":
				// declared for strategy feedback only, nothing on the wire
				state.DeclareSplit()
			case "r", "R":
				if msg, ok := state.RestartRequest(); ok {
					snd.send(msg)
				}
			}
		}

		return false, nil
	})
}
