// Package store implements the persisted, observable health data store.
// It owns the ten dashboard collections plus the singleton health score,
// loads them once from durable storage with per-field fallback to the
// bundled defaults, and re-persists the whole aggregate after every
// mutation. Memory is authoritative: a failed write is logged and
// swallowed, never surfaced to the mutator.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/murarihealth/dashboard/internal/domain/health"
	"github.com/murarihealth/dashboard/internal/platform/storage"
	"github.com/murarihealth/dashboard/internal/seed"
)

// Snapshot is the full aggregate as persisted. Field names match the
// stored JSON keys; a blob written by any prior version round-trips.
type Snapshot struct {
	LabResults     []health.LabResult          `json:"labResults"`
	LabTrends      []health.LabTrend           `json:"labTrends"`
	Symptoms       []health.Symptom            `json:"symptoms"`
	Appointments   []health.DoctorAppointment  `json:"appointments"`
	ClinicianNotes []health.ClinicianNote      `json:"clinicianNotes"`
	TimelineEvents []health.TimelineEvent      `json:"timelineEvents"`
	HealthScore    health.HealthScore          `json:"healthScore"`
	RiskFactors    []health.RiskFactor         `json:"riskFactors"`
	VitalSigns     []health.VitalSign          `json:"vitalSigns"`
	Medications    []health.Medication         `json:"medications"`
}

// Subscriber receives the post-commit snapshot after each mutation.
type Subscriber func(Snapshot)

// Store is a Ready health data store. Obtain one with Open; a Store
// that exists has already completed its load.
type Store struct {
	mu          sync.RWMutex
	snap        Snapshot
	storage     storage.Storage
	log         zerolog.Logger
	subscribers []Subscriber
}

// Open loads the aggregate and returns a Ready store. Loading never
// fails the open: an absent, unreadable or unparseable blob falls back
// to the defaults wholesale, and a parseable blob is applied field by
// field, each missing or malformed field falling back on its own. A nil
// storage backend disables persistence entirely.
func Open(ctx context.Context, st storage.Storage, defaults seed.Data, log zerolog.Logger) *Store {
	s := &Store{
		snap:    NewSnapshot(defaults),
		storage: st,
		log:     log,
	}
	s.load(ctx)
	return s
}

// NewSnapshot arranges a seed dataset into the persisted aggregate
// shape.
func NewSnapshot(d seed.Data) Snapshot {
	return Snapshot{
		LabResults:     d.LabResults,
		LabTrends:      d.LabTrends,
		Symptoms:       d.Symptoms,
		Appointments:   d.Appointments,
		ClinicianNotes: d.ClinicianNotes,
		TimelineEvents: d.TimelineEvents,
		HealthScore:    d.HealthScore,
		RiskFactors:    d.RiskFactors,
		VitalSigns:     d.VitalSigns,
		Medications:    d.Medications,
	}
}

func (s *Store) load(ctx context.Context) {
	if s.storage == nil {
		s.log.Debug().Msg("no storage backend, starting from defaults")
		return
	}

	blob, err := s.storage.Read(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn().Err(err).Msg("stored data unreadable, starting from defaults")
		}
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(blob, &fields); err != nil {
		s.log.Warn().Err(err).Msg("stored data unparseable, starting from defaults")
		return
	}

	// A present key wins even when it decodes to an empty collection;
	// only missing or malformed fields keep their default.
	loadField(s.log, fields, "labResults", &s.snap.LabResults)
	loadField(s.log, fields, "labTrends", &s.snap.LabTrends)
	loadField(s.log, fields, "symptoms", &s.snap.Symptoms)
	loadField(s.log, fields, "appointments", &s.snap.Appointments)
	loadField(s.log, fields, "clinicianNotes", &s.snap.ClinicianNotes)
	loadField(s.log, fields, "timelineEvents", &s.snap.TimelineEvents)
	loadField(s.log, fields, "healthScore", &s.snap.HealthScore)
	loadField(s.log, fields, "riskFactors", &s.snap.RiskFactors)
	loadField(s.log, fields, "vitalSigns", &s.snap.VitalSigns)
	loadField(s.log, fields, "medications", &s.snap.Medications)
}

func loadField[T any](log zerolog.Logger, fields map[string]json.RawMessage, key string, dst *T) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn().Err(err).Str("field", key).Msg("stored field malformed, keeping default")
		return
	}
	*dst = v
}

// Subscribe registers fn to run after every committed mutation, inside
// the commit. Subscribers must not mutate the store reentrantly.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns a copy of the whole aggregate.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// commit persists the aggregate and notifies subscribers. Callers hold
// the write lock.
func (s *Store) commit(ctx context.Context) {
	if s.storage != nil {
		blob, err := json.Marshal(s.snap)
		if err != nil {
			s.log.Warn().Err(err).Msg("serializing health data failed")
		} else if err := s.storage.Write(ctx, blob); err != nil {
			s.log.Warn().Err(err).Msg("persisting health data failed")
		}
	}
	for _, fn := range s.subscribers {
		fn(s.snap)
	}
}

// LabResults returns the current lab results.
func (s *Store) LabResults() []health.LabResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.LabResults
}

// SetLabResults replaces the lab results collection.
func (s *Store) SetLabResults(ctx context.Context, v []health.LabResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.LabResults = v
	s.commit(ctx)
}

// UpdateLabResults applies fn to the current collection and commits the
// result.
func (s *Store) UpdateLabResults(ctx context.Context, fn func([]health.LabResult) []health.LabResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.LabResults = fn(s.snap.LabResults)
	s.commit(ctx)
}

// LabTrends returns the current lab trends.
func (s *Store) LabTrends() []health.LabTrend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.LabTrends
}

// SetLabTrends replaces the lab trends collection.
func (s *Store) SetLabTrends(ctx context.Context, v []health.LabTrend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.LabTrends = v
	s.commit(ctx)
}

// UpdateLabTrends applies fn to the current collection and commits.
func (s *Store) UpdateLabTrends(ctx context.Context, fn func([]health.LabTrend) []health.LabTrend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.LabTrends = fn(s.snap.LabTrends)
	s.commit(ctx)
}

// Symptoms returns the current symptom log.
func (s *Store) Symptoms() []health.Symptom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Symptoms
}

// SetSymptoms replaces the symptom log.
func (s *Store) SetSymptoms(ctx context.Context, v []health.Symptom) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Symptoms = v
	s.commit(ctx)
}

// UpdateSymptoms applies fn to the current symptom log and commits.
func (s *Store) UpdateSymptoms(ctx context.Context, fn func([]health.Symptom) []health.Symptom) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Symptoms = fn(s.snap.Symptoms)
	s.commit(ctx)
}

// Appointments returns the current appointments.
func (s *Store) Appointments() []health.DoctorAppointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Appointments
}

// SetAppointments replaces the appointments collection.
func (s *Store) SetAppointments(ctx context.Context, v []health.DoctorAppointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Appointments = v
	s.commit(ctx)
}

// UpdateAppointments applies fn to the current appointments and commits.
func (s *Store) UpdateAppointments(ctx context.Context, fn func([]health.DoctorAppointment) []health.DoctorAppointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Appointments = fn(s.snap.Appointments)
	s.commit(ctx)
}

// ClinicianNotes returns the current clinician notes.
func (s *Store) ClinicianNotes() []health.ClinicianNote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.ClinicianNotes
}

// SetClinicianNotes replaces the clinician notes collection.
func (s *Store) SetClinicianNotes(ctx context.Context, v []health.ClinicianNote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ClinicianNotes = v
	s.commit(ctx)
}

// UpdateClinicianNotes applies fn to the current notes and commits.
func (s *Store) UpdateClinicianNotes(ctx context.Context, fn func([]health.ClinicianNote) []health.ClinicianNote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ClinicianNotes = fn(s.snap.ClinicianNotes)
	s.commit(ctx)
}

// TimelineEvents returns the current timeline.
func (s *Store) TimelineEvents() []health.TimelineEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.TimelineEvents
}

// SetTimelineEvents replaces the timeline collection.
func (s *Store) SetTimelineEvents(ctx context.Context, v []health.TimelineEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.TimelineEvents = v
	s.commit(ctx)
}

// UpdateTimelineEvents applies fn to the current timeline and commits.
func (s *Store) UpdateTimelineEvents(ctx context.Context, fn func([]health.TimelineEvent) []health.TimelineEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.TimelineEvents = fn(s.snap.TimelineEvents)
	s.commit(ctx)
}

// HealthScore returns the current health score record.
func (s *Store) HealthScore() health.HealthScore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.HealthScore
}

// SetHealthScore replaces the health score record.
func (s *Store) SetHealthScore(ctx context.Context, v health.HealthScore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.HealthScore = v
	s.commit(ctx)
}

// UpdateHealthScore applies fn to the current score and commits.
func (s *Store) UpdateHealthScore(ctx context.Context, fn func(health.HealthScore) health.HealthScore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.HealthScore = fn(s.snap.HealthScore)
	s.commit(ctx)
}

// RiskFactors returns the current risk factors.
func (s *Store) RiskFactors() []health.RiskFactor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.RiskFactors
}

// SetRiskFactors replaces the risk factors collection.
func (s *Store) SetRiskFactors(ctx context.Context, v []health.RiskFactor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.RiskFactors = v
	s.commit(ctx)
}

// UpdateRiskFactors applies fn to the current risk factors and commits.
func (s *Store) UpdateRiskFactors(ctx context.Context, fn func([]health.RiskFactor) []health.RiskFactor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.RiskFactors = fn(s.snap.RiskFactors)
	s.commit(ctx)
}

// VitalSigns returns the current vitals.
func (s *Store) VitalSigns() []health.VitalSign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.VitalSigns
}

// SetVitalSigns replaces the vitals collection.
func (s *Store) SetVitalSigns(ctx context.Context, v []health.VitalSign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.VitalSigns = v
	s.commit(ctx)
}

// UpdateVitalSigns applies fn to the current vitals and commits.
func (s *Store) UpdateVitalSigns(ctx context.Context, fn func([]health.VitalSign) []health.VitalSign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.VitalSigns = fn(s.snap.VitalSigns)
	s.commit(ctx)
}

// Medications returns the current medications.
func (s *Store) Medications() []health.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Medications
}

// SetMedications replaces the medications collection.
func (s *Store) SetMedications(ctx context.Context, v []health.Medication) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Medications = v
	s.commit(ctx)
}

// UpdateMedications applies fn to the current medications and commits.
func (s *Store) UpdateMedications(ctx context.Context, fn func([]health.Medication) []health.Medication) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Medications = fn(s.snap.Medications)
	s.commit(ctx)
}
