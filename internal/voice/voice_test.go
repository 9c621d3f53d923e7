package voice

import (
	"context"
	"errors"
	"testing"
	"time"

	"nivaran/internal/complaint"
	apperrors "nivaran/internal/errors"
)

// fakeRecognizer returns a fixed transcript or error, optionally blocking
// until released so tests can hold a session open.
type fakeRecognizer struct {
	text    string
	err     error
	release chan struct{}
}

func (f *fakeRecognizer) Recognize(ctx context.Context) (string, error) {
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

func TestStartCapture_NoCapability(t *testing.T) {
	adapter := NewAdapter(nil)

	err := adapter.StartCapture(context.Background(), TargetDescription, Callbacks{})

	if err == nil {
		t.Fatal("expected error when no recognizer is available")
	}
	if !apperrors.IsUnsupported(err) {
		t.Errorf("expected unsupported-capability error but got: %v", err)
	}
	if adapter.Listening(TargetDescription) {
		t.Error("expected target to stay idle after an unsupported start")
	}
}

func TestStartCapture_DescriptionResultClassified(t *testing.T) {
	adapter := NewAdapter(&fakeRecognizer{text: "pothole near the bus stop"})

	results := make(chan Result, 1)
	ended := make(chan struct{}, 1)
	err := adapter.StartCapture(context.Background(), TargetDescription, Callbacks{
		OnResult: func(r Result) { results <- r },
		OnEnd:    func() { ended <- struct{}{} },
	})
	if err != nil {
		t.Fatalf("expected capture to start but got: %v", err)
	}

	select {
	case r := <-results:
		if r.Text != "pothole near the bus stop" {
			t.Errorf("expected transcript back but got %q", r.Text)
		}
		if !r.SectorPreview {
			t.Error("expected a sector preview for the description target")
		}
		if r.Sector != complaint.SectorRoads {
			t.Errorf("expected Roads preview but got %q", r.Sector)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for OnResult")
	}

	select {
	case <-ended:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for OnEnd")
	}

	if adapter.Listening(TargetDescription) {
		t.Error("expected target to return to idle after the session")
	}
}

func TestStartCapture_OtherTargetNoPreview(t *testing.T) {
	adapter := NewAdapter(&fakeRecognizer{text: "pothole on road"})

	results := make(chan Result, 1)
	err := adapter.StartCapture(context.Background(), "search-box", Callbacks{
		OnResult: func(r Result) { results <- r },
	})
	if err != nil {
		t.Fatalf("expected capture to start but got: %v", err)
	}

	select {
	case r := <-results:
		if r.SectorPreview {
			t.Error("expected no sector preview for a non-description target")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for OnResult")
	}
}

func TestStartCapture_ErrorPath(t *testing.T) {
	recErr := errors.New("microphone busy")
	adapter := NewAdapter(&fakeRecognizer{err: recErr})

	errs := make(chan error, 1)
	ended := make(chan struct{}, 1)
	err := adapter.StartCapture(context.Background(), TargetDescription, Callbacks{
		OnError: func(e error) { errs <- e },
		OnEnd:   func() { ended <- struct{}{} },
	})
	if err != nil {
		t.Fatalf("expected capture to start but got: %v", err)
	}

	select {
	case e := <-errs:
		if !errors.Is(e, recErr) {
			t.Errorf("expected the recognizer error but got: %v", e)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for OnError")
	}

	select {
	case <-ended:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for OnEnd after error")
	}
}

func TestStartCapture_BusyTarget(t *testing.T) {
	release := make(chan struct{})
	adapter := NewAdapter(&fakeRecognizer{text: "water leak", release: release})

	ended := make(chan struct{}, 1)
	err := adapter.StartCapture(context.Background(), TargetDescription, Callbacks{
		OnEnd: func() { ended <- struct{}{} },
	})
	if err != nil {
		t.Fatalf("expected first capture to start but got: %v", err)
	}

	// Second start on the same target while listening must be refused
	err = adapter.StartCapture(context.Background(), TargetDescription, Callbacks{})
	if !errors.Is(err, ErrCaptureActive) {
		t.Errorf("expected ErrCaptureActive but got: %v", err)
	}

	// A different target is independent
	err = adapter.StartCapture(context.Background(), "search-box", Callbacks{})
	if err != nil {
		t.Errorf("expected independent target to start but got: %v", err)
	}

	close(release)
	select {
	case <-ended:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the held session to end")
	}

	// Target is reusable after the session ends
	if err := adapter.StartCapture(context.Background(), TargetDescription, Callbacks{}); err != nil {
		t.Errorf("expected restart after session end but got: %v", err)
	}
}
