package view

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"nivaran/internal/complaint"
	"nivaran/internal/locale"
	"nivaran/internal/translate"
)

// failingTranslator always errors, standing in for a dead backend.
type failingTranslator struct{}

func (failingTranslator) Translate(context.Context, string, string) (string, error) {
	return "", errors.New("backend unreachable")
}

func testRecord() complaint.Record {
	return complaint.Record{
		ID:          42,
		UserID:      7,
		Description: "Large pothole on main road",
		Sector:      complaint.SectorRoads,
		Priority:    complaint.PriorityLow,
		Status:      complaint.StatusInProgress,
		Pincode:     "600001",
		CreatedAt:   time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func newProjector(t *testing.T, tr translate.Translator) *Projector {
	t.Helper()
	dict, err := locale.Load()
	if err != nil {
		t.Fatalf("failed to load locales: %v", err)
	}
	return NewProjector(dict, tr)
}

func TestProject_Idempotent(t *testing.T) {
	p := newProjector(t, translate.Mock{})
	rec := testRecord()

	first := p.Project(rec, "hi")
	second := p.Project(rec, "hi")

	if !reflect.DeepEqual(first, second) {
		t.Error("expected projection to be idempotent for the same record and locale")
	}
}

func TestProject_Fields(t *testing.T) {
	p := newProjector(t, translate.Mock{})
	rec := testRecord()

	v := p.Project(rec, "en")

	if v.ID != 42 {
		t.Errorf("expected id 42 but got %d", v.ID)
	}
	if v.Description != rec.Description {
		t.Errorf("expected original description but got %q", v.Description)
	}
	if v.SectorLabel != "Roads" {
		t.Errorf("expected sector label 'Roads' but got %q", v.SectorLabel)
	}
	if v.StatusLabel != "In Progress" {
		t.Errorf("expected status label 'In Progress' but got %q", v.StatusLabel)
	}
	if v.Date != "2025-03-14" {
		t.Errorf("expected date '2025-03-14' but got %q", v.Date)
	}
	if len(v.Timeline) != 4 {
		t.Errorf("expected 4 timeline stages but got %d", len(v.Timeline))
	}
}

func TestProject_CanTranslate(t *testing.T) {
	p := newProjector(t, translate.Mock{})
	rec := testRecord()

	if p.Project(rec, "en").CanTranslate {
		t.Error("expected no translate affordance for the default locale")
	}
	if !p.Project(rec, "hi").CanTranslate {
		t.Error("expected translate affordance for a non-default locale")
	}
}

func TestProject_LocalizedLabels(t *testing.T) {
	p := newProjector(t, translate.Mock{})
	rec := testRecord()

	en := p.Project(rec, "en")
	hi := p.Project(rec, "hi")

	if hi.SectorLabel == en.SectorLabel {
		t.Error("expected Hindi sector label to differ from English")
	}
}

func TestTranslateDescription_FailureShowsFixedText(t *testing.T) {
	p := newProjector(t, failingTranslator{})

	got := p.TranslateDescription(context.Background(), "pothole on road", "ta")

	if got != TranslationFailed {
		t.Errorf("expected %q on failure but got %q", TranslationFailed, got)
	}
	if got != "Translation failed." {
		t.Errorf("expected the exact literal 'Translation failed.' but got %q", got)
	}
}

func TestTranslateDescription_Success(t *testing.T) {
	p := newProjector(t, translate.Mock{})

	got := p.TranslateDescription(context.Background(), "pothole on road", "ta")

	if got == "pothole on road" {
		t.Error("expected translated output, got the input unchanged")
	}
	if got == TranslationFailed {
		t.Errorf("unexpected failure text: %q", got)
	}
}
