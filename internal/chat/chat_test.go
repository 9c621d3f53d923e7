package chat

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nivaran/internal/complaint"
)

func newResponder(t *testing.T) (*Responder, *complaint.Store) {
	t.Helper()
	store, err := complaint.OpenStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewResponder(store), store
}

func TestRespond_Greeting(t *testing.T) {
	r, _ := newResponder(t)

	reply := r.Respond("hello there")
	if !strings.Contains(reply, "Hello") {
		t.Errorf("expected a greeting but got %q", reply)
	}
}

func TestRespond_FileGrievance(t *testing.T) {
	r, _ := newResponder(t)

	reply := r.Respond("how do I file a grievance?")
	if !strings.Contains(reply, "Dashboard") {
		t.Errorf("expected filing instructions but got %q", reply)
	}
}

func TestRespond_WelfareSchemes(t *testing.T) {
	r, _ := newResponder(t)

	reply := r.Respond("tell me about welfare schemes")
	if !strings.Contains(reply, "PM Awas Yojana") {
		t.Errorf("expected scheme listing but got %q", reply)
	}
}

func TestRespond_TrackWithID(t *testing.T) {
	r, store := newResponder(t)

	id, err := store.Insert(complaint.Record{
		UserID:      1,
		Description: "Pothole on main road",
		Sector:      complaint.SectorRoads,
		Priority:    complaint.PriorityLow,
		Status:      complaint.StatusInProgress,
		Pincode:     "600001",
		CreatedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to insert complaint: %v", err)
	}

	reply := r.Respond(fmt.Sprintf("track complaint %d", id))
	if !strings.Contains(reply, "In Progress") {
		t.Errorf("expected the complaint status but got %q", reply)
	}
	if !strings.Contains(reply, "Roads") {
		t.Errorf("expected the handling department but got %q", reply)
	}
}

func TestRespond_TrackUnknownID(t *testing.T) {
	r, _ := newResponder(t)

	reply := r.Respond("what is the status of 999")
	if !strings.Contains(reply, "couldn't find") {
		t.Errorf("expected a not-found reply but got %q", reply)
	}
}

func TestRespond_TrackWithoutID(t *testing.T) {
	r, _ := newResponder(t)

	reply := r.Respond("track my complaint please")
	if !strings.Contains(reply, "Complaint ID") {
		t.Errorf("expected a prompt for the id but got %q", reply)
	}
}

func TestRespond_Default(t *testing.T) {
	r, _ := newResponder(t)

	reply := r.Respond("what is the meaning of life")
	if reply != defaultReply {
		t.Errorf("expected the default help line but got %q", reply)
	}
}

func TestRespond_Thanks(t *testing.T) {
	r, _ := newResponder(t)

	reply := r.Respond("thank you")
	if !strings.Contains(reply, "welcome") {
		t.Errorf("expected a you're-welcome reply but got %q", reply)
	}
}
