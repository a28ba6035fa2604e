package display

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"sena/models"
)

type stubBuilder struct {
	mu     sync.Mutex
	builds int
	err    error
	desks  []models.DeskAvailability
}

func (s *stubBuilder) Build(ctx context.Context, date string) (*models.AvailabilitySnapshot, error) {
	s.mu.Lock()
	s.builds++
	err := s.err
	desks := s.desks
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return &models.AvailabilitySnapshot{Date: date, Desks: desks}, nil
}

func (s *stubBuilder) buildCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.builds
}

func (s *stubBuilder) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

type received struct {
	Event   string                    `json:"event"`
	Date    string                    `json:"date"`
	Message string                    `json:"message"`
	Desks   []models.DeskAvailability `json:"desks"`
}

func recv(t *testing.T, c *Client, timeout time.Duration) received {
	t.Helper()
	select {
	case raw := <-c.Send:
		var got received
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("bad payload %s: %v", raw, err)
		}
		return got
	case <-time.After(timeout):
		t.Fatal("timeout waiting for message")
		return received{}
	}
}

func expectSilence(t *testing.T, c *Client, d time.Duration) {
	t.Helper()
	select {
	case raw := <-c.Send:
		t.Fatalf("expected no message, got %s", raw)
	case <-time.After(d):
	}
}

func drain(c *Client, d time.Duration) {
	deadline := time.After(d)
	for {
		select {
		case <-c.Send:
		case <-deadline:
			return
		}
	}
}

func newTestClient() *Client {
	return &Client{Send: make(chan []byte, 10)}
}

func TestConnectGetsUnicastSnapshot(t *testing.T) {
	builder := &stubBuilder{desks: []models.DeskAvailability{{DeskID: "D1"}}}
	hub := NewHub(builder, time.Minute)
	go hub.Run()
	defer hub.Stop()

	client := newTestClient()
	hub.Register(client)

	got := recv(t, client, time.Second)
	if got.Event != EventAvailabilityUpdate {
		t.Fatalf("expected %s, got %s", EventAvailabilityUpdate, got.Event)
	}
	if got.Date != hub.ActiveDate() {
		t.Errorf("expected snapshot for active date %s, got %s", hub.ActiveDate(), got.Date)
	}
	if len(got.Desks) != 1 || got.Desks[0].DeskID != "D1" {
		t.Errorf("unexpected desk payload: %+v", got.Desks)
	}
}

func TestDateChangeBroadcastsToAllViewers(t *testing.T) {
	builder := &stubBuilder{}
	hub := NewHub(builder, time.Minute)
	go hub.Run()
	defer hub.Stop()

	viewer1, viewer2 := newTestClient(), newTestClient()
	hub.Register(viewer1)
	hub.Register(viewer2)
	recv(t, viewer1, time.Second) // connect unicasts
	recv(t, viewer2, time.Second)

	if err := hub.SetDisplayDate(viewer1, "2024-01-10"); err != nil {
		t.Fatalf("date change failed: %v", err)
	}

	for _, c := range []*Client{viewer1, viewer2} {
		got := recv(t, c, time.Second)
		if got.Event != EventAvailabilityUpdate {
			t.Fatalf("expected update, got %s", got.Event)
		}
		if got.Date != "2024-01-10" {
			t.Errorf("expected broadcast for 2024-01-10, got %s", got.Date)
		}
	}
	if hub.ActiveDate() != "2024-01-10" {
		t.Errorf("active date not updated: %s", hub.ActiveDate())
	}
}

func TestInvalidDateOnlyNotifiesRequester(t *testing.T) {
	builder := &stubBuilder{}
	hub := NewHub(builder, time.Minute)
	go hub.Run()
	defer hub.Stop()

	requester, bystander := newTestClient(), newTestClient()
	hub.Register(requester)
	hub.Register(bystander)
	recv(t, requester, time.Second)
	recv(t, bystander, time.Second)

	before := hub.ActiveDate()
	builds := builder.buildCount()

	if err := hub.SetDisplayDate(requester, "not-a-date"); err == nil {
		t.Fatal("expected validation error")
	}

	got := recv(t, requester, time.Second)
	if got.Event != EventAvailabilityError {
		t.Fatalf("expected %s, got %s", EventAvailabilityError, got.Event)
	}
	expectSilence(t, bystander, 100*time.Millisecond)

	if hub.ActiveDate() != before {
		t.Errorf("active date mutated on invalid input: %s", hub.ActiveDate())
	}
	if builder.buildCount() != builds {
		t.Errorf("expected no build on invalid date, got %d extra", builder.buildCount()-builds)
	}
}

func TestRefreshLoopIdleWithoutViewers(t *testing.T) {
	builder := &stubBuilder{}
	hub := NewHub(builder, 20*time.Millisecond)
	go hub.Run()
	defer hub.Stop()

	time.Sleep(150 * time.Millisecond)
	if n := builder.buildCount(); n != 0 {
		t.Fatalf("expected zero builds with no viewers, got %d", n)
	}
}

func TestRefreshLoopBroadcastsEveryTick(t *testing.T) {
	builder := &stubBuilder{}
	hub := NewHub(builder, 20*time.Millisecond)
	go hub.Run()
	defer hub.Stop()

	client := newTestClient()
	hub.Register(client)
	recv(t, client, time.Second) // connect unicast

	// ticks keep coming with no data change in between
	first := recv(t, client, time.Second)
	second := recv(t, client, time.Second)
	if first.Event != EventAvailabilityUpdate || second.Event != EventAvailabilityUpdate {
		t.Fatalf("expected periodic updates, got %s then %s", first.Event, second.Event)
	}
}

func TestRefreshLoopSurvivesFailedBuilds(t *testing.T) {
	builder := &stubBuilder{}
	hub := NewHub(builder, 20*time.Millisecond)
	go hub.Run()
	defer hub.Stop()

	client := newTestClient()
	hub.Register(client)
	recv(t, client, time.Second)

	builder.setErr(errors.New("catalog down"))
	drain(client, 100*time.Millisecond) // updates already in flight when the error hit
	expectSilence(t, client, 100*time.Millisecond) // failed ticks are skipped

	builder.setErr(nil)
	got := recv(t, client, time.Second)
	if got.Event != EventAvailabilityUpdate {
		t.Fatalf("expected loop to recover with an update, got %s", got.Event)
	}
}

func TestConnectTimeBuildFailureSendsError(t *testing.T) {
	builder := &stubBuilder{err: errors.New("catalog down")}
	hub := NewHub(builder, time.Minute)
	go hub.Run()
	defer hub.Stop()

	client := newTestClient()
	hub.Register(client)

	got := recv(t, client, time.Second)
	if got.Event != EventAvailabilityError {
		t.Fatalf("expected %s, got %s", EventAvailabilityError, got.Event)
	}
}

func TestUnregisterStopsDelivery(t *testing.T) {
	builder := &stubBuilder{}
	hub := NewHub(builder, time.Minute)
	go hub.Run()
	defer hub.Stop()

	stayer, leaver := newTestClient(), newTestClient()
	hub.Register(stayer)
	hub.Register(leaver)
	recv(t, stayer, time.Second)
	recv(t, leaver, time.Second)

	hub.Unregister(leaver)
	if err := hub.SetDisplayDate(stayer, "2024-02-02"); err != nil {
		t.Fatalf("date change failed: %v", err)
	}

	got := recv(t, stayer, time.Second)
	if got.Date != "2024-02-02" {
		t.Fatalf("expected update for 2024-02-02, got %s", got.Date)
	}
	if _, open := <-leaver.Send; open {
		t.Error("expected leaver send channel to be closed")
	}
}
