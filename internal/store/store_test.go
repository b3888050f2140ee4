package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/murarihealth/dashboard/internal/domain/health"
	"github.com/murarihealth/dashboard/internal/platform/storage"
	"github.com/murarihealth/dashboard/internal/seed"
)

// failingStorage errors on every operation, modelling a broken backend.
type failingStorage struct{}

func (failingStorage) Read(context.Context) ([]byte, error) { return nil, errors.New("io error") }

func (failingStorage) Write(context.Context, []byte) error { return errors.New("io error") }

func openTestStore(t *testing.T, st storage.Storage) *Store {
	t.Helper()
	return Open(context.Background(), st, seed.Defaults(), zerolog.Nop())
}

func TestOpen_NoStoredData_UsesDefaults(t *testing.T) {
	s := openTestStore(t, storage.NewMemoryStorage(nil))

	if got := len(s.Symptoms()); got != 12 {
		t.Errorf("expected 12 default symptoms, got %d", got)
	}
	if got := s.HealthScore().Overall; got != 72 {
		t.Errorf("expected default overall score 72, got %d", got)
	}
}

func TestOpen_NilStorage_UsesDefaults(t *testing.T) {
	s := Open(context.Background(), nil, seed.Defaults(), zerolog.Nop())

	if got := len(s.LabResults()); got != 47 {
		t.Errorf("expected 47 default lab results, got %d", got)
	}
}

func TestOpen_FailingStorage_UsesDefaults(t *testing.T) {
	s := openTestStore(t, failingStorage{})

	if got := len(s.Appointments()); got != 10 {
		t.Errorf("expected 10 default appointments, got %d", got)
	}
}

func TestOpen_UnparseableBlob_UsesDefaults(t *testing.T) {
	s := openTestStore(t, storage.NewMemoryStorage([]byte("{not json")))

	if got := len(s.Medications()); got != 2 {
		t.Errorf("expected 2 default medications, got %d", got)
	}
}

func TestOpen_PartialBlob_FieldLevelFallback(t *testing.T) {
	blob := []byte(`{"symptoms":[{"id":"x1","text":"test entry","severity":2}]}`)
	s := openTestStore(t, storage.NewMemoryStorage(blob))

	symptoms := s.Symptoms()
	if len(symptoms) != 1 || symptoms[0].ID != "x1" {
		t.Fatalf("expected the stored symptom to win, got %+v", symptoms)
	}
	// Every other field falls back to its default.
	if got := len(s.LabResults()); got != 47 {
		t.Errorf("expected 47 default lab results, got %d", got)
	}
	if got := s.HealthScore().Metabolic; got != 58 {
		t.Errorf("expected default metabolic score 58, got %d", got)
	}
}

func TestOpen_EmptyStoredCollection_Wins(t *testing.T) {
	// A present key is used verbatim, even when it holds nothing.
	s := openTestStore(t, storage.NewMemoryStorage([]byte(`{"symptoms":[]}`)))

	if got := len(s.Symptoms()); got != 0 {
		t.Errorf("expected the stored empty collection, got %d entries", got)
	}
}

func TestOpen_MalformedField_FallsBackAlone(t *testing.T) {
	blob := []byte(`{"symptoms":"not-a-list","medications":[]}`)
	s := openTestStore(t, storage.NewMemoryStorage(blob))

	if got := len(s.Symptoms()); got != 12 {
		t.Errorf("malformed field should keep its default, got %d", got)
	}
	if got := len(s.Medications()); got != 0 {
		t.Errorf("well-formed sibling field should still apply, got %d", got)
	}
}

func TestMutation_PersistsWholeAggregate(t *testing.T) {
	mem := storage.NewMemoryStorage(nil)
	s := openTestStore(t, mem)

	s.UpdateSymptoms(context.Background(), func(prev []health.Symptom) []health.Symptom {
		return append([]health.Symptom{{ID: "new", Text: "dizzy spells", Severity: 3}}, prev...)
	})

	blob, err := mem.Read(context.Background())
	if err != nil {
		t.Fatalf("nothing persisted: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		t.Fatalf("persisted blob unparseable: %v", err)
	}
	if len(snap.Symptoms) != 13 || snap.Symptoms[0].ID != "new" {
		t.Errorf("expected prepended symptom in persisted blob, got %d entries", len(snap.Symptoms))
	}
	if len(snap.LabResults) != 47 {
		t.Errorf("expected untouched collections persisted too, got %d lab results", len(snap.LabResults))
	}
}

func TestMutation_SurvivesWriteFailure(t *testing.T) {
	s := openTestStore(t, failingStorage{})

	s.SetHealthScore(context.Background(), health.HealthScore{Overall: 50})

	if got := s.HealthScore().Overall; got != 50 {
		t.Errorf("memory must stay authoritative after a failed write, got %d", got)
	}
}

func TestMutation_ImmediatelyVisible(t *testing.T) {
	s := openTestStore(t, storage.NewMemoryStorage(nil))

	s.SetVitalSigns(context.Background(), []health.VitalSign{{Type: "Heart Rate", Value: 60, Unit: "bpm"}})

	vitals := s.VitalSigns()
	if len(vitals) != 1 || vitals[0].Value != 60 {
		t.Errorf("mutation not visible to subsequent read: %+v", vitals)
	}
}

func TestRoundTrip_ReopenSeesMutations(t *testing.T) {
	mem := storage.NewMemoryStorage(nil)
	ctx := context.Background()

	first := openTestStore(t, mem)
	first.UpdateAppointments(ctx, func(prev []health.DoctorAppointment) []health.DoctorAppointment {
		next := append([]health.DoctorAppointment(nil), prev...)
		next[0].Status = health.StatusCancelled
		return next
	})

	second := openTestStore(t, mem)
	if got := second.Appointments()[0].Status; got != health.StatusCancelled {
		t.Errorf("expected cancelled status to survive reopen, got %q", got)
	}
}

func TestSubscribe_FiresAfterEachMutation(t *testing.T) {
	s := openTestStore(t, storage.NewMemoryStorage(nil))

	var calls int
	var last Snapshot
	s.Subscribe(func(snap Snapshot) {
		calls++
		last = snap
	})

	ctx := context.Background()
	s.SetMedications(ctx, nil)
	s.UpdateHealthScore(ctx, func(prev health.HealthScore) health.HealthScore {
		prev.Mental = 80
		return prev
	})

	if calls != 2 {
		t.Fatalf("expected 2 notifications, got %d", calls)
	}
	if last.HealthScore.Mental != 80 {
		t.Errorf("subscriber saw stale snapshot: %+v", last.HealthScore)
	}
}

func TestDefaults_ReturnFreshCopies(t *testing.T) {
	a := seed.Defaults()
	a.Symptoms[0].Text = "mutated"

	b := seed.Defaults()
	if b.Symptoms[0].Text == "mutated" {
		t.Error("seed defaults leaked shared state between calls")
	}
}
