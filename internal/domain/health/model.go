// Package health holds the dashboard's entity model and the service and
// HTTP layer that operate on the health data store.
package health

// Lab flag values relative to the test's normal range. Flags are asserted
// at creation time, never re-derived from value vs. range.
const (
	FlagNormal   = "normal"
	FlagLow      = "low"
	FlagHigh     = "high"
	FlagCritical = "critical"
)

// Trend direction classifications.
const (
	TrendImproving = "improving"
	TrendWorsening = "worsening"
	TrendStable    = "stable"
)

// Appointment statuses.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusOverdue   = "overdue"
)

// Appointment priorities.
const (
	PriorityRoutine   = "routine"
	PriorityUrgent    = "urgent"
	PriorityEmergency = "emergency"
)

// Medication statuses.
const (
	MedicationActive         = "active"
	MedicationDiscontinued   = "discontinued"
	MedicationPendingRenewal = "pending-renewal"
)

// LabResult is a single lab observation. Dates are kept as the plain
// strings the datasets carry (e.g. "2026-02-10"); the store persists
// collections verbatim and nothing parses them.
type LabResult struct {
	ID        string  `json:"id"`
	TestName  string  `json:"testName"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	NormalMin float64 `json:"normalMin"`
	NormalMax float64 `json:"normalMax"`
	Date      string  `json:"date"`
	Category  string  `json:"category"`
	Flag      string  `json:"flag"`
	Notes     string  `json:"notes,omitempty"`
}

// TrendPoint is one (date, value) sample in a lab trend.
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// LabTrend is the multi-point history of one test. Data is chronological
// and non-empty; CurrentFlag reflects the latest point.
type LabTrend struct {
	TestName      string       `json:"testName"`
	Category      string       `json:"category"`
	Data          []TrendPoint `json:"data"`
	Unit          string       `json:"unit"`
	NormalMin     float64      `json:"normalMin"`
	NormalMax     float64      `json:"normalMax"`
	CurrentFlag   string       `json:"currentFlag"`
	PercentChange float64      `json:"percentChange"`
	Trend         string       `json:"trend"`
}

// Symptom is an analyzed, logged symptom entry. Immutable once logged.
type Symptom struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Severity   int      `json:"severity"` // 1-10
	Category   string   `json:"category"`
	BodySystem string   `json:"bodySystem"`
	Date       string   `json:"date"`
	Tags       []string `json:"tags"`
	Sentiment  float64  `json:"sentiment"` // -1 to 1
	Duration   string   `json:"duration,omitempty"`
	Frequency  string   `json:"frequency,omitempty"`
}

// DoctorAppointment is a scheduled visit. Lifecycle: created as
// "scheduled"; user-triggered transition to "completed" or "cancelled",
// both terminal.
type DoctorAppointment struct {
	ID        string `json:"id"`
	Doctor    string `json:"doctor"`
	Specialty string `json:"specialty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	Notes     string `json:"notes,omitempty"`
	FollowUp  string `json:"followUp,omitempty"`
}

// Upcoming reports whether the appointment belongs in the "upcoming"
// view. Completed and cancelled appointments belong to the past view.
func (a *DoctorAppointment) Upcoming() bool {
	return a.Status == StatusScheduled || a.Status == StatusOverdue
}

// allowedStatusTransitions defines which target statuses are reachable
// from each source status. Completed and cancelled are terminal.
var allowedStatusTransitions = map[string]map[string]bool{
	StatusScheduled: {StatusCompleted: true, StatusCancelled: true},
	StatusOverdue:   {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ValidStatusTransition reports whether an appointment may move from
// one status to another.
func ValidStatusTransition(from, to string) bool {
	return allowedStatusTransitions[from][to]
}

// ClinicianNote is an externally authored SOAP note, read-only here.
type ClinicianNote struct {
	ID           string   `json:"id"`
	Clinician    string   `json:"clinician"`
	Specialty    string   `json:"specialty"`
	Date         string   `json:"date"`
	Subjective   string   `json:"subjective"`
	Objective    string   `json:"objective"`
	Assessment   string   `json:"assessment"`
	Plan         string   `json:"plan"`
	Diagnoses    []string `json:"diagnoses"`
	Medications  []string `json:"medications,omitempty"`
	FollowUpDate string   `json:"followUpDate,omitempty"`
}

// TimelineEvent is a derived/seeded history entry.
type TimelineEvent struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"` // lab, appointment, symptom, note, medication, milestone
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Date        string            `json:"date"`
	Severity    string            `json:"severity,omitempty"` // normal, warning, danger, info
	Details     map[string]string `json:"details,omitempty"`
}

// HealthScore is the singleton overall + subsystem score record, each
// value an integer in [0,100].
type HealthScore struct {
	Overall        int `json:"overall"`
	Cardiovascular int `json:"cardiovascular"`
	Metabolic      int `json:"metabolic"`
	Immune         int `json:"immune"`
	Endocrine      int `json:"endocrine"`
	Hepatic        int `json:"hepatic"`
	Renal          int `json:"renal"`
	Hematologic    int `json:"hematologic"`
	Nutritional    int `json:"nutritional"`
	Mental         int `json:"mental"`
}

// RiskFactor is a named risk with recommendations. RelatedLabs are
// free-text test names, deliberately not validated against LabResults.
type RiskFactor struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Risk            string   `json:"risk"` // low, moderate, high, critical
	Score           int      `json:"score"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
	RelatedLabs     []string `json:"relatedLabs"`
}

// VitalSign is a single vital measurement.
type VitalSign struct {
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Date   string  `json:"date"`
	Status string  `json:"status"` // normal, elevated, low, critical
}

// Medication is a prescribed or supplemental medication.
type Medication struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Dosage      string   `json:"dosage"`
	Frequency   string   `json:"frequency"`
	Prescriber  string   `json:"prescriber"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	RenewalDate string   `json:"renewalDate,omitempty"`
	Status      string   `json:"status"`
	SideEffects []string `json:"sideEffects,omitempty"`
}
