// Package voice wraps the host's one-shot speech capture capability.
//
// A capture session is single-shot and non-continuous: Idle → Listening →
// (Result | Error) → Idle. The external capability emits exactly one of
// Result or Error, and the adapter fires OnEnd on every terminal transition
// so the UI can restore its record control. The adapter imposes no timeout
// of its own — cancellation is governed entirely by the capability (or the
// caller's context).
//
// When the capture target is the complaint description field, the
// transcribed text is fed through the preview classifier so the UI can
// highlight the detected sector immediately.
package voice

import (
	"context"
	"errors"
	"sync"

	"nivaran/internal/classify"
	"nivaran/internal/complaint"
	apperrors "nivaran/internal/errors"
)

// ErrCaptureActive is returned when a capture is started for a target that
// already has a session in the Listening state.
var ErrCaptureActive = errors.New("capture session already active")

// TargetDescription is the one capture target whose results drive the live
// sector preview. No other target triggers classification.
const TargetDescription = "complaint-desc"

// Recognizer is the host speech capability: one blocking recognition per
// call, returning the transcript or an error. Tests supply fakes.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// Result is delivered to OnResult when a capture succeeds.
type Result struct {
	Text string

	// Sector is the live preview classification of Text. Only set when the
	// capture target was TargetDescription.
	Sector        complaint.Sector
	SectorPreview bool
}

// Callbacks receive the session's terminal events. Exactly one of OnResult
// or OnError fires, followed by OnEnd. Nil callbacks are skipped.
type Callbacks struct {
	OnResult func(Result)
	OnError  func(error)
	OnEnd    func()
}

// Adapter manages capture sessions over the host capability.
//
// At most one session per invocation target; sessions for different targets
// are independent and share no mutable state.
type Adapter struct {
	recognizer Recognizer

	mu        sync.Mutex
	listening map[string]bool
}

// NewAdapter creates an adapter over the given capability.
//
// recognizer may be nil when the host has no speech support; StartCapture
// then fails immediately with an unsupported-capability error.
func NewAdapter(recognizer Recognizer) *Adapter {
	return &Adapter{
		recognizer: recognizer,
		listening:  make(map[string]bool),
	}
}

// Listening reports whether a session is active for the given target.
func (a *Adapter) Listening(target string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.listening[target]
}

// StartCapture begins a one-shot capture session for the given target.
//
// Fails synchronously, without entering Listening, when the capability is
// absent or a session for the same target is already active. Otherwise the
// session runs until the capability produces its single Result or Error,
// after which OnEnd fires and the target returns to Idle.
func (a *Adapter) StartCapture(ctx context.Context, target string, cb Callbacks) error {
	if a.recognizer == nil {
		return apperrors.NewUnsupportedError("voice recognition")
	}

	a.mu.Lock()
	if a.listening[target] {
		a.mu.Unlock()
		return ErrCaptureActive
	}
	a.listening[target] = true
	a.mu.Unlock()

	go a.run(ctx, target, cb)
	return nil
}

// run drives one session to its terminal transition.
func (a *Adapter) run(ctx context.Context, target string, cb Callbacks) {
	defer func() {
		a.mu.Lock()
		delete(a.listening, target)
		a.mu.Unlock()
		if cb.OnEnd != nil {
			cb.OnEnd()
		}
	}()

	text, err := a.recognizer.Recognize(ctx)
	if err != nil {
		if cb.OnError != nil {
			cb.OnError(err)
		}
		return
	}

	res := Result{Text: text}
	if target == TargetDescription {
		res.Sector = classify.Classify(text)
		res.SectorPreview = true
	}
	if cb.OnResult != nil {
		cb.OnResult(res)
	}
}
