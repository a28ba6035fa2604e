package display

import (
	"context"
	"encoding/json"
	"net/http"

	"sena/mq"
	"sena/utils"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

// inboundPayload represents what viewers send us:
type inboundPayload struct {
	Event string `json:"event"` // "set_display_date"
	Date  string `json:"date,omitempty"`
}

// WebSocketHandler upgrades the connection and attaches the viewer
// session to the hub.
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			utils.GetLogger().Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		client := &Client{
			Conn: conn,
			Send: make(chan []byte, 256),
			ID:   uuid.NewString(),
		}

		hub.Register(client)
		mq.Emit(context.Background(), mq.Event{Name: "viewer-connected", SessionID: client.ID})

		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.Unregister(c)
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}

		var in inboundPayload
		if err := json.Unmarshal(raw, &in); err != nil {
			hub.sendError(c, "Invalid payload.")
			continue
		}

		switch in.Event {
		case "set_display_date":
			if err := hub.SetDisplayDate(c, in.Date); err == nil {
				mq.Emit(context.Background(), mq.Event{
					Name:      "date-changed",
					Date:      in.Date,
					SessionID: c.ID,
				})
			}
		default:
			hub.sendError(c, "Unknown event: "+in.Event)
		}
	}
}
