package websocket

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestPayload is the only message shape clients send.
type RequestPayload struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────
// Timetable events are forwarded verbatim as model.TimetableEvent.

type Event string

const (
	EventError Event = "error"
	EventPong  Event = "pong"
)

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
