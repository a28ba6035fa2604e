package display

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"sena/models"
	"sena/snapshot"
	"sena/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Events pushed to viewers.
const (
	EventAvailabilityUpdate = "availability_update"
	EventAvailabilityError  = "availability_error"
)

// RefreshInterval is how often the hub rebuilds and rebroadcasts the
// snapshot for the active date. Every tick is a full rebuild and
// resend; there is deliberately no change detection.
const RefreshInterval = 5 * time.Second

// SnapshotBuilder is what the hub needs from the snapshot engine.
type SnapshotBuilder interface {
	Build(ctx context.Context, targetDate string) (*models.AvailabilitySnapshot, error)
}

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
	ID   string
}

type updateEvent struct {
	Event string                    `json:"event"`
	Date  string                    `json:"date"`
	Desks []models.DeskAvailability `json:"desks"`
}

type errorEvent struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}

// Hub owns the connected viewer set and the process-wide active date.
// All viewers always see the same date: any viewer's date change
// redirects every other viewer too.
type Hub struct {
	builder  SnapshotBuilder
	interval time.Duration

	mu         sync.Mutex
	clients    map[*Client]bool
	activeDate string

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	quit       chan struct{}
}

func NewHub(builder SnapshotBuilder, interval time.Duration) *Hub {
	if interval <= 0 {
		interval = RefreshInterval
	}
	return &Hub{
		builder:    builder,
		interval:   interval,
		clients:    make(map[*Client]bool),
		activeDate: snapshot.Today(),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		quit:       make(chan struct{}),
	}
}

// ActiveDate reads the shared display date.
func (h *Hub) ActiveDate() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.activeDate
}

func (h *Hub) ViewerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Run drives registration, fan-out and the periodic refresh loop.
// Snapshot builds never run on this goroutine, so a slow data source
// cannot stall connects or disconnects.
func (h *Hub) Run() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
			// new viewer gets a unicast snapshot; everyone else is
			// already in sync
			go h.pushSnapshot(c)

		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.Send <- data:
				default:
					close(c.Send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()

		case <-ticker.C:
			if h.ViewerCount() == 0 {
				continue
			}
			go h.refresh()

		case <-h.quit:
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.Send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop disconnects every viewer and ends the Run loop.
func (h *Hub) Stop() {
	close(h.quit)
}

// Register adds a viewer session to the hub.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a viewer session. Any build the session triggered
// is not cancelled; the session just stops being a broadcast target.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// SetDisplayDate handles a viewer's date-change request. On success the
// shared active date is swapped and one fresh snapshot is broadcast to
// every connected viewer, the requester included. On failure only the
// requester hears about it and the active date is untouched.
func (h *Hub) SetDisplayDate(requester *Client, date string) error {
	if date == "" {
		h.sendError(requester, "Date not provided in request.")
		return fmt.Errorf("%w: empty", snapshot.ErrInvalidDate)
	}
	if !snapshot.ValidDate(date) {
		h.sendError(requester, "Invalid date format. Please use YYYY-MM-DD.")
		return fmt.Errorf("%w: %q", snapshot.ErrInvalidDate, date)
	}

	h.mu.Lock()
	h.activeDate = date
	h.mu.Unlock()

	snap, err := h.builder.Build(context.Background(), date)
	if err != nil {
		utils.GetLogger().Warn("build after date change failed",
			zap.String("date", date), zap.Error(err))
		h.sendError(requester, "Failed to fetch availability for "+date)
		return err
	}

	data, err := json.Marshal(updateEvent{Event: EventAvailabilityUpdate, Date: snap.Date, Desks: snap.Desks})
	if err != nil {
		return err
	}
	h.broadcast <- data
	return nil
}

// refresh is one tick of the periodic loop: full rebuild for the
// current active date, broadcast to all viewers. A failed build skips
// the tick; the next tick is the retry.
func (h *Hub) refresh() {
	date := h.ActiveDate()
	snap, err := h.builder.Build(context.Background(), date)
	if err != nil {
		utils.GetLogger().Warn("refresh tick skipped",
			zap.String("date", date), zap.Error(err))
		return
	}
	data, err := json.Marshal(updateEvent{Event: EventAvailabilityUpdate, Date: snap.Date, Desks: snap.Desks})
	if err != nil {
		utils.GetLogger().Error("marshal snapshot failed", zap.Error(err))
		return
	}
	h.broadcast <- data
}

// pushSnapshot builds for the current active date and unicasts the
// result to one viewer.
func (h *Hub) pushSnapshot(c *Client) {
	date := h.ActiveDate()
	snap, err := h.builder.Build(context.Background(), date)
	if err != nil {
		utils.GetLogger().Warn("connect-time build failed",
			zap.String("date", date), zap.Error(err))
		h.sendError(c, "Failed to fetch availability for "+date)
		return
	}
	data, err := json.Marshal(updateEvent{Event: EventAvailabilityUpdate, Date: snap.Date, Desks: snap.Desks})
	if err != nil {
		return
	}
	h.sendTo(c, data)
}

func (h *Hub) sendError(c *Client, msg string) {
	data, err := json.Marshal(errorEvent{Event: EventAvailabilityError, Message: msg})
	if err != nil {
		return
	}
	h.sendTo(c, data)
}

// sendTo delivers to a single client if it is still registered. The
// membership check under the lock keeps us off closed send channels.
func (h *Hub) sendTo(c *Client, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.clients[c] {
		return
	}
	select {
	case c.Send <- data:
	default:
		close(c.Send)
		delete(h.clients, c)
	}
}
