package timeline

import (
	"testing"

	"nivaran/internal/complaint"
	"nivaran/internal/locale"
)

func loadDict(t *testing.T) *locale.Dictionary {
	t.Helper()
	dict, err := locale.Load()
	if err != nil {
		t.Fatalf("failed to load locales: %v", err)
	}
	return dict
}

func TestIndex_KnownStatuses(t *testing.T) {
	cases := []struct {
		status complaint.Status
		want   int
	}{
		{complaint.StatusSubmitted, 0},
		{complaint.StatusAssigned, 1},
		{complaint.StatusInProgress, 2},
		{complaint.StatusResolved, 3},
	}

	for _, tc := range cases {
		if got := Index(tc.status); got != tc.want {
			t.Errorf("Index(%q) = %d, expected %d", tc.status, got, tc.want)
		}
	}
}

func TestIndex_UnknownStatusDegradesToSubmitted(t *testing.T) {
	if got := Index(complaint.Status("Escalated")); got != 0 {
		t.Errorf("expected unknown status to map to 0 but got %d", got)
	}
}

func TestBuild_InProgress(t *testing.T) {
	dict := loadDict(t)

	stages := Build(dict, complaint.StatusInProgress, "en")

	if len(stages) != 4 {
		t.Fatalf("expected 4 stages but got %d", len(stages))
	}

	wantReached := []bool{true, true, true, false}
	for i, stage := range stages {
		if stage.Reached != wantReached[i] {
			t.Errorf("stage %d (%q): expected reached=%v but got %v", i, stage.Status, wantReached[i], stage.Reached)
		}
	}
}

func TestBuild_UnknownStatusMatchesSubmitted(t *testing.T) {
	dict := loadDict(t)

	unknown := Build(dict, complaint.Status("Escalated"), "en")
	submitted := Build(dict, complaint.StatusSubmitted, "en")

	for i := range submitted {
		if unknown[i].Reached != submitted[i].Reached {
			t.Errorf("stage %d: expected unknown status to render like Submitted", i)
		}
	}
}

func TestBuild_ResolvedAllReached(t *testing.T) {
	dict := loadDict(t)

	for i, stage := range Build(dict, complaint.StatusResolved, "en") {
		if !stage.Reached {
			t.Errorf("stage %d (%q): expected reached for Resolved complaint", i, stage.Status)
		}
	}
}

func TestBuild_LocalizedLabels(t *testing.T) {
	dict := loadDict(t)

	en := Build(dict, complaint.StatusSubmitted, "en")
	ta := Build(dict, complaint.StatusSubmitted, "ta")

	if en[0].Label != "Submitted" {
		t.Errorf("expected English label 'Submitted' but got %q", en[0].Label)
	}
	if ta[0].Label == en[0].Label {
		t.Error("expected Tamil label to differ from English")
	}

	// Unknown locale renders English
	fr := Build(dict, complaint.StatusSubmitted, "fr")
	if fr[0].Label != en[0].Label {
		t.Errorf("expected English fallback for unknown locale but got %q", fr[0].Label)
	}
}

func TestBuild_StageOrder(t *testing.T) {
	dict := loadDict(t)

	stages := Build(dict, complaint.StatusAssigned, "en")
	wantOrder := []complaint.Status{
		complaint.StatusSubmitted,
		complaint.StatusAssigned,
		complaint.StatusInProgress,
		complaint.StatusResolved,
	}

	for i, want := range wantOrder {
		if stages[i].Status != want {
			t.Errorf("stage %d: expected %q but got %q", i, want, stages[i].Status)
		}
	}
}
