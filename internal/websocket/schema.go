package websocket

import "github.com/ischool/courseinfo-backend/internal/events"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError  Event = "error"
	EventChange Event = "change"
	EventPong   Event = "pong"
	EventReady  Event = "ready"
)

// ChangeResponse forwards one admin write to the console.
type ChangeResponse struct {
	Event  Event         `json:"event"`
	Change events.Change `json:"change"`
}

// ReadyResponse is sent once the subscription is live.
type ReadyResponse struct {
	Event Event `json:"event"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
