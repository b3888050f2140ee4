package health

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/murarihealth/dashboard/internal/analyzer"
)

// DataStore is the slice of the health data store the service needs.
// Satisfied by *store.Store; tests substitute an in-memory fake.
type DataStore interface {
	LabResults() []LabResult
	LabTrends() []LabTrend
	Symptoms() []Symptom
	Appointments() []DoctorAppointment
	ClinicianNotes() []ClinicianNote
	TimelineEvents() []TimelineEvent
	HealthScore() HealthScore
	RiskFactors() []RiskFactor
	VitalSigns() []VitalSign
	Medications() []Medication

	UpdateSymptoms(ctx context.Context, fn func([]Symptom) []Symptom)
	UpdateAppointments(ctx context.Context, fn func([]DoctorAppointment) []DoctorAppointment)
	SetHealthScore(ctx context.Context, v HealthScore)
}

var (
	ErrBlankSymptom        = errors.New("symptom text must not be blank")
	ErrSeverityRange       = errors.New("severity must be between 1 and 10")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrScoreRange          = errors.New("health scores must be between 0 and 100")
)

// Service implements the dashboard operations over the data store.
type Service struct {
	store    DataStore
	analyzer *analyzer.Analyzer
	now      func() time.Time
}

// NewService creates a Service. The analyzer carries the keyword rule
// list; the store is already loaded.
func NewService(st DataStore, an *analyzer.Analyzer) *Service {
	return &Service{store: st, analyzer: an, now: time.Now}
}

// AnalyzeSymptom runs the analyzer without logging anything. Used for
// previews; repeated calls on the same text yield the same result.
func (s *Service) AnalyzeSymptom(text string) analyzer.Result {
	return s.analyzer.Analyze(text)
}

// LogSymptom validates the entry, analyzes it, and prepends the
// composed symptom to the log. The returned symptom is immutable.
func (s *Service) LogSymptom(ctx context.Context, text string, severity int) (Symptom, error) {
	if strings.TrimSpace(text) == "" {
		return Symptom{}, ErrBlankSymptom
	}
	if severity < 1 || severity > 10 {
		return Symptom{}, ErrSeverityRange
	}

	res := s.analyzer.Analyze(text)
	sym := Symptom{
		ID:         uuid.New().String(),
		Text:       text,
		Severity:   severity,
		Category:   res.Category,
		BodySystem: res.BodySystem,
		Date:       s.now().Format("2006-01-02"),
		Tags:       res.Tags,
		Sentiment:  res.Sentiment,
		Duration:   res.Duration,
		Frequency:  res.Frequency,
	}

	s.store.UpdateSymptoms(ctx, func(prev []Symptom) []Symptom {
		return append([]Symptom{sym}, prev...)
	})
	return sym, nil
}

// ScheduleAppointmentInput carries the fields a new appointment needs.
type ScheduleAppointmentInput struct {
	Doctor    string `json:"doctor"`
	Specialty string `json:"specialty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Reason    string `json:"reason"`
	Priority  string `json:"priority"`
	Notes     string `json:"notes"`
}

// ScheduleAppointment creates a new appointment in the scheduled state.
func (s *Service) ScheduleAppointment(ctx context.Context, in ScheduleAppointmentInput) (DoctorAppointment, error) {
	if strings.TrimSpace(in.Doctor) == "" {
		return DoctorAppointment{}, fmt.Errorf("doctor is required")
	}
	if strings.TrimSpace(in.Date) == "" {
		return DoctorAppointment{}, fmt.Errorf("date is required")
	}
	switch in.Priority {
	case "":
		in.Priority = PriorityRoutine
	case PriorityRoutine, PriorityUrgent, PriorityEmergency:
	default:
		return DoctorAppointment{}, fmt.Errorf("unknown priority %q", in.Priority)
	}

	appt := DoctorAppointment{
		ID:        uuid.New().String(),
		Doctor:    in.Doctor,
		Specialty: in.Specialty,
		Date:      in.Date,
		Time:      in.Time,
		Location:  in.Location,
		Reason:    in.Reason,
		Status:    StatusScheduled,
		Priority:  in.Priority,
		Notes:     in.Notes,
	}

	s.store.UpdateAppointments(ctx, func(prev []DoctorAppointment) []DoctorAppointment {
		return append(append([]DoctorAppointment(nil), prev...), appt)
	})
	return appt, nil
}

// TransitionAppointment moves an appointment to a new status, enforcing
// the lifecycle: scheduled and overdue may complete or cancel, nothing
// leaves a terminal status.
func (s *Service) TransitionAppointment(ctx context.Context, id, to string) (DoctorAppointment, error) {
	var (
		updated DoctorAppointment
		err     error
	)
	s.store.UpdateAppointments(ctx, func(prev []DoctorAppointment) []DoctorAppointment {
		for i := range prev {
			if prev[i].ID != id {
				continue
			}
			if !ValidStatusTransition(prev[i].Status, to) {
				err = fmt.Errorf("%w: %s to %s", ErrInvalidTransition, prev[i].Status, to)
				return prev
			}
			next := append([]DoctorAppointment(nil), prev...)
			next[i].Status = to
			updated = next[i]
			return next
		}
		err = ErrAppointmentNotFound
		return prev
	})
	if err != nil {
		return DoctorAppointment{}, err
	}
	return updated, nil
}

// UpcomingAppointments returns scheduled and overdue appointments.
func (s *Service) UpcomingAppointments() []DoctorAppointment {
	return s.filterAppointments(true)
}

// PastAppointments returns completed and cancelled appointments.
func (s *Service) PastAppointments() []DoctorAppointment {
	return s.filterAppointments(false)
}

func (s *Service) filterAppointments(upcoming bool) []DoctorAppointment {
	var out []DoctorAppointment
	for _, a := range s.store.Appointments() {
		if a.Upcoming() == upcoming {
			out = append(out, a)
		}
	}
	return out
}

// ReplaceHealthScore validates and replaces the singleton score record.
func (s *Service) ReplaceHealthScore(ctx context.Context, score HealthScore) error {
	for _, v := range []int{
		score.Overall, score.Cardiovascular, score.Metabolic, score.Immune,
		score.Endocrine, score.Hepatic, score.Renal, score.Hematologic,
		score.Nutritional, score.Mental,
	} {
		if v < 0 || v > 100 {
			return ErrScoreRange
		}
	}
	s.store.SetHealthScore(ctx, score)
	return nil
}

// Collection getters, delegating to the store's snapshot reads.

func (s *Service) LabResults() []LabResult { return s.store.LabResults() }

func (s *Service) LabTrends() []LabTrend { return s.store.LabTrends() }

func (s *Service) Symptoms() []Symptom { return s.store.Symptoms() }

func (s *Service) Appointments() []DoctorAppointment { return s.store.Appointments() }

func (s *Service) ClinicianNotes() []ClinicianNote { return s.store.ClinicianNotes() }

func (s *Service) TimelineEvents() []TimelineEvent { return s.store.TimelineEvents() }

func (s *Service) HealthScore() HealthScore { return s.store.HealthScore() }

func (s *Service) RiskFactors() []RiskFactor { return s.store.RiskFactors() }

func (s *Service) VitalSigns() []VitalSign { return s.store.VitalSigns() }

func (s *Service) Medications() []Medication { return s.store.Medications() }
