package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tabledeck/blackjack/deck"
	utils "github.com/tabledeck/blackjack/internal"
	"github.com/tabledeck/blackjack/protocol"
)

func newTestServer() *GameServer {
	return New(Config{Addr: ":0", ShoeSize: deck.ShoeSize})
}

// mustDialWS starts the server and opens a websocket client against it
func mustDialWS(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()

	server := httptest.NewServer(newTestServer())

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		server.Close()
		t.Fatalf("could not open a ws connection on %s: %v", url, err)
	}

	return conn, func() {
		conn.Close()
		server.Close()
	}
}

func mustSend(t *testing.T, conn *websocket.Conn, action protocol.Action) {
	t.Helper()

	data, err := protocol.Encode(protocol.Message{Action: action})
	utils.AssertNoError(t, err)
	utils.AssertNoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

func mustReceive(t *testing.T, conn *websocket.Conn) protocol.Message {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, raw, err := conn.ReadMessage()
	utils.AssertNoError(t, err)

	msg, err := protocol.Decode(raw)
	utils.AssertNoError(t, err)
	return msg
}

func assertAction(t *testing.T, got protocol.Message, want protocol.Action) {
	t.Helper()
	if got.Action != want {
		t.Errorf("got action %s, want %s", got.Action, want)
	}
}
