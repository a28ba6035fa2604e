package mq

import (
	"context"
	"encoding/json"
	"log"

	"sena/rdx"
)

const channel = "desk-events"

// Event is a lightweight notification published for other processes
// (dashboards, audit consumers) listening on the Redis channel.
type Event struct {
	Name      string `json:"name"`
	Date      string `json:"date,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
}

// Emit publishes an event to Redis. Delivery is best effort; a failed
// publish is logged and otherwise ignored.
func Emit(ctx context.Context, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}
	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}
