package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tabledeck/blackjack/deck"
	utils "github.com/tabledeck/blackjack/internal"
	"github.com/tabledeck/blackjack/protocol"
)

func TestUnknownRoute(t *testing.T) {
	response := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/nope", nil)

	newTestServer().ServeHTTP(response, request)

	if response.Code != http.StatusNotFound {
		t.Errorf("got status %d, want %d", response.Code, http.StatusNotFound)
	}
}

func TestWSRejectsPlainHTTP(t *testing.T) {
	response := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/ws", nil)

	newTestServer().ServeHTTP(response, request)

	if response.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want %d", response.Code, http.StatusBadRequest)
	}
}

func TestGameRound(t *testing.T) {
	conn, teardown := mustDialWS(t)
	defer teardown()

	// a restart deals two player cards and the bank's up-card, in order
	mustSend(t, conn, protocol.Restart)

	first := mustReceive(t, conn)
	second := mustReceive(t, conn)
	upCard := mustReceive(t, conn)

	assertAction(t, first, protocol.SendPlayerCard)
	assertAction(t, second, protocol.SendPlayerCard)
	assertAction(t, upCard, protocol.SendBankCard)

	utils.AssertEqual(t, first.CardsAmount, uint16(deck.ShoeSize-1))
	utils.AssertEqual(t, second.CardsAmount, uint16(deck.ShoeSize-2))
	utils.AssertEqual(t, upCard.CardsAmount, uint16(deck.ShoeSize-3))

	var want uint8
	want += deck.CardPoints(deck.Rank(first.CardIndex), want)
	want += deck.CardPoints(deck.Rank(second.CardIndex), want)
	utils.AssertEqual(t, second.PlayerHandpoints, want)

	// a hit deals exactly one more player card
	mustSend(t, conn, protocol.Hit)

	hit := mustReceive(t, conn)
	assertAction(t, hit, protocol.SendPlayerCard)
	utils.AssertEqual(t, hit.PlayerHandpoints, want+deck.CardPoints(deck.Rank(hit.CardIndex), want))

	// a stand resolves the bank and reveals its whole hand
	mustSend(t, conn, protocol.Stand)

	reveal := mustReceive(t, conn)
	assertAction(t, reveal, protocol.SendBankCards)

	if len(reveal.BankCards) < 2 {
		t.Fatalf("expected a full bank hand, got %v", reveal.BankCards)
	}
	utils.AssertEqual(t, reveal.BankCards[0], upCard.CardIndex)

	var bankTotal uint8
	for _, id := range reveal.BankCards {
		bankTotal += deck.CardPoints(deck.Rank(id), bankTotal)
	}
	utils.AssertEqual(t, reveal.PlayerHandpoints, bankTotal)
	utils.AssertTrue(t, bankTotal >= 17)
}

func TestActiveSessions(t *testing.T) {
	gs := newTestServer()
	server := httptest.NewServer(gs)
	defer server.Close()

	// registration and teardown happen on the connections' own
	// goroutines, so assert by waiting rather than immediately
	waitForSessions := func(want int) {
		t.Helper()
		utils.Within(t, 2*time.Second, func() {
			for gs.ActiveSessions() != want {
				time.Sleep(10 * time.Millisecond)
			}
		})
	}

	waitForSessions(0)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	utils.AssertNoError(t, err)
	waitForSessions(1)

	second, _, err := websocket.DefaultDialer.Dial(url, nil)
	utils.AssertNoError(t, err)
	waitForSessions(2)

	second.Close()
	conn.Close()
	waitForSessions(0)
}

func TestMalformedFrameKeepsSessionAlive(t *testing.T) {
	conn, teardown := mustDialWS(t)
	defer teardown()

	utils.AssertNoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json at all")))
	utils.AssertNoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"action":"Teleport"}`)))

	// the session must still deal after the garbage
	mustSend(t, conn, protocol.Restart)
	assertAction(t, mustReceive(t, conn), protocol.SendPlayerCard)
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		os.Unsetenv("BLACKJACK_ADDR")
		os.Unsetenv("BLACKJACK_SHOE_SIZE")

		cfg, err := ConfigFromEnv()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.Addr, ":3000")
		utils.AssertEqual(t, cfg.ShoeSize, deck.ShoeSize)
	})

	t.Run("reads the environment", func(t *testing.T) {
		os.Setenv("BLACKJACK_ADDR", ":9999")
		os.Setenv("BLACKJACK_SHOE_SIZE", "52")
		defer os.Unsetenv("BLACKJACK_ADDR")
		defer os.Unsetenv("BLACKJACK_SHOE_SIZE")

		cfg, err := ConfigFromEnv()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.Addr, ":9999")
		utils.AssertEqual(t, cfg.ShoeSize, 52)
	})

	t.Run("fails on a malformed shoe size", func(t *testing.T) {
		os.Setenv("BLACKJACK_SHOE_SIZE", "a few")
		defer os.Unsetenv("BLACKJACK_SHOE_SIZE")

		_, err := ConfigFromEnv()
		utils.AssertErrored(t, err)
	})
}
