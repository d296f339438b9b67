package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoPong answers every ping action with a pong and anything else with an error.
func echoPong(t *testing.T) *httptest.Server {
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		conn := Wrap(raw)
		defer conn.Close()

		for {
			var msg RequestPayload
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if msg.Action == ActionPing {
				_ = conn.WriteTyped(PongResponse{Event: EventPong})
			} else {
				_ = conn.WriteError("unknown action")
			}
		}
	}))
}

func TestConn_PingPong(t *testing.T) {
	srv := echoPong(t)
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.WriteJSON(RequestPayload{Action: ActionPing}))
	var pong PongResponse
	require.NoError(t, client.ReadJSON(&pong))
	assert.Equal(t, EventPong, pong.Event)

	require.NoError(t, client.WriteJSON(map[string]string{"action": "dance"}))
	var failure ErrorResponse
	require.NoError(t, client.ReadJSON(&failure))
	assert.Equal(t, EventError, failure.Event)
	assert.Equal(t, "unknown action", failure.Error)
}
