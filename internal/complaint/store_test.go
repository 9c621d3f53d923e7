package complaint

import (
	"path/filepath"
	"testing"
	"time"

	apperrors "nivaran/internal/errors"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecord(userID int64, created time.Time) Record {
	return Record{
		UserID:      userID,
		Description: "Pothole on main road",
		Sector:      SectorRoads,
		Priority:    PriorityLow,
		Status:      StatusSubmitted,
		Pincode:     "600001",
		ClusterID:   "600001-Roads",
		CreatedAt:   created,
	}
}

func TestCreateUserAndLookup(t *testing.T) {
	store := openTestStore(t)

	created, err := store.CreateUser("Asha", "asha@example.com", "secret", "citizen")
	if err != nil {
		t.Fatalf("expected user creation to succeed but got: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a non-zero user id")
	}

	found, err := store.UserByEmail("asha@example.com")
	if err != nil {
		t.Fatalf("expected lookup to succeed but got: %v", err)
	}
	if found.Name != "Asha" || found.Role != "citizen" {
		t.Errorf("unexpected user returned: %+v", found)
	}
}

func TestUserByEmail_NotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.UserByEmail("nobody@example.com")

	if err == nil {
		t.Fatal("expected error for missing user")
	}
	if !apperrors.IsNotFound(err) {
		t.Errorf("expected not-found error but got: %v", err)
	}
}

func TestInsertAndByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.Insert(sampleRecord(1, time.Now()))
	if err != nil {
		t.Fatalf("expected insert to succeed but got: %v", err)
	}

	rec, err := store.ByID(id)
	if err != nil {
		t.Fatalf("expected lookup to succeed but got: %v", err)
	}
	if rec.Description != "Pothole on main road" {
		t.Errorf("unexpected description: %q", rec.Description)
	}
	if rec.Sector != SectorRoads || rec.Priority != PriorityLow {
		t.Errorf("unexpected classification: %q / %q", rec.Sector, rec.Priority)
	}
	if rec.ClusterID != "600001-Roads" {
		t.Errorf("unexpected cluster id: %q", rec.ClusterID)
	}
}

func TestByID_NotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.ByID(999)

	if err == nil {
		t.Fatal("expected error for missing complaint")
	}
	if !apperrors.IsNotFound(err) {
		t.Errorf("expected not-found error but got: %v", err)
	}
}

func TestByUser_NewestFirst(t *testing.T) {
	store := openTestStore(t)

	base := time.Now().Add(-time.Hour)
	first, _ := store.Insert(sampleRecord(1, base))
	second, _ := store.Insert(sampleRecord(1, base.Add(time.Minute)))
	store.Insert(sampleRecord(2, base)) // other user, must not appear

	records, err := store.ByUser(1)
	if err != nil {
		t.Fatalf("expected listing to succeed but got: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 complaints but got %d", len(records))
	}
	if records[0].ID != second || records[1].ID != first {
		t.Errorf("expected newest first but got order %d, %d", records[0].ID, records[1].ID)
	}
}

func TestSetStatus(t *testing.T) {
	store := openTestStore(t)

	id, _ := store.Insert(sampleRecord(1, time.Now()))

	if err := store.SetStatus(id, StatusInProgress); err != nil {
		t.Fatalf("expected status update to succeed but got: %v", err)
	}

	rec, _ := store.ByID(id)
	if rec.Status != StatusInProgress {
		t.Errorf("expected status 'In Progress' but got %q", rec.Status)
	}

	// Updating a missing complaint reports not-found
	if err := store.SetStatus(999, StatusResolved); !apperrors.IsNotFound(err) {
		t.Errorf("expected not-found error but got: %v", err)
	}
}

func TestRecent_Limit(t *testing.T) {
	store := openTestStore(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		store.Insert(sampleRecord(1, base.Add(time.Duration(i)*time.Minute)))
	}

	records, err := store.Recent(3)
	if err != nil {
		t.Fatalf("expected recent listing to succeed but got: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("expected 3 complaints but got %d", len(records))
	}
}
