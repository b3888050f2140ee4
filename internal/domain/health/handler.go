package health

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler provides the echo HTTP handlers for the dashboard API.
type Handler struct {
	svc *Service
}

// NewHandler creates a Handler over the service.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the dashboard routes on the supplied group. The
// caller attaches the access-gate middleware to the group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/lab-results", h.handleLabResults)
	g.GET("/lab-trends", h.handleLabTrends)
	g.GET("/symptoms", h.handleSymptoms)
	g.POST("/symptoms", h.handleLogSymptom)
	g.POST("/symptoms/analyze", h.handleAnalyzeSymptom)
	g.GET("/appointments", h.handleAppointments)
	g.POST("/appointments", h.handleScheduleAppointment)
	g.POST("/appointments/:id/complete", h.handleCompleteAppointment)
	g.POST("/appointments/:id/cancel", h.handleCancelAppointment)
	g.GET("/clinician-notes", h.handleClinicianNotes)
	g.GET("/timeline", h.handleTimeline)
	g.GET("/health-score", h.handleHealthScore)
	g.PUT("/health-score", h.handleReplaceHealthScore)
	g.GET("/risk-factors", h.handleRiskFactors)
	g.GET("/vital-signs", h.handleVitalSigns)
	g.GET("/medications", h.handleMedications)
}

func (h *Handler) handleLabResults(c echo.Context) error {
	return c.JSON(http.StatusOK, emptySlice(h.svc.LabResults()))
}

func (h *Handler) handleLabTrends(c echo.Context) error {
	return c.JSON(http.StatusOK, emptySlice(h.svc.LabTrends()))
}

func (h *Handler) handleSymptoms(c echo.Context) error {
	return c.JSON(http.StatusOK, emptySlice(h.svc.Symptoms()))
}

type logSymptomRequest struct {
	Text     string `json:"text"`
	Severity int    `json:"severity"`
}

func (h *Handler) handleLogSymptom(c echo.Context) error {
	var req logSymptomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sym, err := h.svc.LogSymptom(c.Request().Context(), req.Text, req.Severity)
	if err != nil {
		if errors.Is(err, ErrBlankSymptom) || errors.Is(err, ErrSeverityRange) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, sym)
}

type analyzeRequest struct {
	Text string `json:"text"`
}

func (h *Handler) handleAnalyzeSymptom(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.JSON(http.StatusOK, h.svc.AnalyzeSymptom(req.Text))
}

func (h *Handler) handleAppointments(c echo.Context) error {
	switch view := c.QueryParam("view"); view {
	case "":
		return c.JSON(http.StatusOK, emptySlice(h.svc.Appointments()))
	case "upcoming":
		return c.JSON(http.StatusOK, emptySlice(h.svc.UpcomingAppointments()))
	case "past":
		return c.JSON(http.StatusOK, emptySlice(h.svc.PastAppointments()))
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "view must be \"upcoming\" or \"past\"")
	}
}

func (h *Handler) handleScheduleAppointment(c echo.Context) error {
	var in ScheduleAppointmentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	appt, err := h.svc.ScheduleAppointment(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, appt)
}

func (h *Handler) handleCompleteAppointment(c echo.Context) error {
	return h.transition(c, StatusCompleted)
}

func (h *Handler) handleCancelAppointment(c echo.Context) error {
	return h.transition(c, StatusCancelled)
}

func (h *Handler) transition(c echo.Context, to string) error {
	appt, err := h.svc.TransitionAppointment(c.Request().Context(), c.Param("id"), to)
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) handleClinicianNotes(c echo.Context) error {
	return c.JSON(http.StatusOK, emptySlice(h.svc.ClinicianNotes()))
}

func (h *Handler) handleTimeline(c echo.Context) error {
	return c.JSON(http.StatusOK, emptySlice(h.svc.TimelineEvents()))
}

func (h *Handler) handleHealthScore(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.HealthScore())
}

func (h *Handler) handleReplaceHealthScore(c echo.Context) error {
	var score HealthScore
	if err := c.Bind(&score); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.ReplaceHealthScore(c.Request().Context(), score); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, score)
}

func (h *Handler) handleRiskFactors(c echo.Context) error {
	return c.JSON(http.StatusOK, emptySlice(h.svc.RiskFactors()))
}

func (h *Handler) handleVitalSigns(c echo.Context) error {
	return c.JSON(http.StatusOK, emptySlice(h.svc.VitalSigns()))
}

func (h *Handler) handleMedications(c echo.Context) error {
	return c.JSON(http.StatusOK, emptySlice(h.svc.Medications()))
}

// emptySlice keeps JSON list responses as [] instead of null.
func emptySlice[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
