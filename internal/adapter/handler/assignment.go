package handler

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/discussion-planner/errors"
	"github.com/johnquangdev/discussion-planner/internal/adapter/dto/assignment"
	"github.com/johnquangdev/discussion-planner/internal/adapter/presenter"
	"github.com/johnquangdev/discussion-planner/internal/infrastructure/export"
	assignmentUsecase "github.com/johnquangdev/discussion-planner/internal/usecase/assignment"
	usecaseErrors "github.com/johnquangdev/discussion-planner/internal/usecase/errors"
	pkgvalidator "github.com/johnquangdev/discussion-planner/pkg/validator"
)

// Assignment handles assignment-related HTTP requests
type Assignment struct {
	service assignmentUsecase.Service
	logger  *zap.Logger
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service assignmentUsecase.Service, logger *zap.Logger) *Assignment {
	return &Assignment{
		service: service,
		logger:  logger,
	}
}

// GenerateAssignments handles POST /events/:id/assignments/generate
// @Summary      Generate assignments
// @Description  Recomputes the seating plan of an event and replaces the stored one
// @Tags         Assignments
// @Produce      json
// @Param        id   path      string  true  "Event ID (UUID)"
// @Success      200  {object}  assignment.GenerateAssignmentsResponse
// @Failure      400  {object}  common.ErrorResponse  "Invalid event ID"
// @Failure      403  {object}  common.ErrorResponse  "Automatic assignment disabled"
// @Failure      404  {object}  common.ErrorResponse  "Event not found"
// @Failure      409  {object}  common.ErrorResponse  "Generation already running"
// @Failure      422  {object}  common.ErrorResponse  "Event cannot produce assignments"
// @Router       /events/{id}/assignments/generate [post]
func (h *Assignment) GenerateAssignments(c echo.Context) error {
	eventID, err := h.eventID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.service.GenerateAssignments(c.Request().Context(), eventID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(eventID, err))
	}

	return HandleSuccess(h.logger, c, presenter.ToGenerateAssignmentsResponse(out))
}

// ListAssignments handles GET /events/:id/assignments
// @Summary      List assignments
// @Description  Lists the stored assignments of an event, optionally for one round
// @Tags         Assignments
// @Produce      json
// @Param        id     path      string  true   "Event ID (UUID)"
// @Param        round  query     int     false  "Round number"
// @Success      200    {object}  assignment.AssignmentListResponse
// @Failure      400    {object}  common.ErrorResponse  "Invalid request"
// @Failure      404    {object}  common.ErrorResponse  "Event not found"
// @Router       /events/{id}/assignments [get]
func (h *Assignment) ListAssignments(c echo.Context) error {
	req := assignment.ListAssignmentsRequest{EventID: c.Param("id")}
	if c.QueryParam("round") != "" {
		var round int
		if err := echo.QueryParamsBinder(c).Int("round", &round).BindError(); err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("round must be an integer"))
		}
		req.Round = &round
	}

	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	eventID, err := pkgvalidator.ParseEventID(req.EventID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	assignments, err := h.service.GetAssignments(c.Request().Context(), eventID, req.Round)
	if err != nil {
		return HandleError(h.logger, c, toAppError(eventID, err))
	}

	return HandleSuccess(h.logger, c, presenter.ToAssignmentListResponse(req.EventID, req.Round, assignments))
}

// ClearAssignments handles DELETE /events/:id/assignments
// @Summary      Clear assignments
// @Description  Deletes every stored assignment of an event
// @Tags         Assignments
// @Produce      json
// @Param        id   path      string  true  "Event ID (UUID)"
// @Success      200  {object}  assignment.ClearAssignmentsResponse
// @Failure      404  {object}  common.ErrorResponse  "Event not found"
// @Router       /events/{id}/assignments [delete]
func (h *Assignment) ClearAssignments(c echo.Context) error {
	eventID, err := h.eventID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	deleted, err := h.service.ClearAssignments(c.Request().Context(), eventID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(eventID, err))
	}

	return HandleSuccess(h.logger, c, &assignment.ClearAssignmentsResponse{
		EventID: eventID.String(),
		Deleted: deleted,
	})
}

// GetStatistics handles GET /events/:id/assignments/statistics
// @Summary      Get assignment statistics
// @Description  Returns the statistics stored by the last generation
// @Tags         Assignments
// @Produce      json
// @Param        id   path      string  true  "Event ID (UUID)"
// @Success      200  {object}  assignment.StatisticsResponse
// @Failure      404  {object}  common.ErrorResponse  "Event or statistics not found"
// @Router       /events/{id}/assignments/statistics [get]
func (h *Assignment) GetStatistics(c echo.Context) error {
	eventID, err := h.eventID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	stats, err := h.service.GetStatistics(c.Request().Context(), eventID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(eventID, err))
	}

	return HandleSuccess(h.logger, c, presenter.ToStatisticsResponse(stats))
}

// ExportAssignments handles GET /events/:id/assignments/export
// @Summary      Export assignments
// @Description  Downloads the stored seating plan as an XLSX workbook
// @Tags         Assignments
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path      string  true  "Event ID (UUID)"
// @Success      200  {file}    file
// @Failure      404  {object}  common.ErrorResponse  "Event or assignments not found"
// @Router       /events/{id}/assignments/export [get]
func (h *Assignment) ExportAssignments(c echo.Context) error {
	eventID, err := h.eventID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	plan, err := h.service.GetSeatingPlan(c.Request().Context(), eventID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(eventID, err))
	}

	var buf bytes.Buffer
	if err := export.WriteSeatingPlan(&buf, plan); err != nil {
		return HandleError(h.logger, c, errors.ErrExportFailed("xlsx", err))
	}

	filename := fmt.Sprintf("event-%s-assignments.xlsx", eventID)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *Assignment) eventID(c echo.Context) (uuid.UUID, error) {
	req := assignment.EventPathRequest{EventID: c.Param("id")}
	if err := c.Validate(&req); err != nil {
		return uuid.Nil, errors.ErrInvalidArgument(err.Error())
	}
	id, err := pkgvalidator.ParseEventID(req.EventID)
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument(err.Error())
	}
	return id, nil
}

// toAppError maps use case errors onto API errors
func toAppError(eventID uuid.UUID, err error) error {
	id := eventID.String()
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrEventNotFound):
		return errors.ErrEventNotFound(id)
	case stdErrors.Is(err, usecaseErrors.ErrAutoAssignmentDisabled):
		return errors.ErrAutoAssignmentDisabled(id)
	case stdErrors.Is(err, usecaseErrors.ErrGenerationInProgress):
		return errors.ErrGenerationInProgress(id)
	case stdErrors.Is(err, usecaseErrors.ErrStatisticsNotFound):
		return errors.ErrStatisticsNotFound(id)
	case stdErrors.Is(err, usecaseErrors.ErrNoAssignments):
		return errors.ErrAssignmentsNotFound(id)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidRoundFilter):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, assignmentUsecase.ErrNoEligibleParticipants),
		stdErrors.Is(err, assignmentUsecase.ErrNoEligibleTopics):
		return errors.ErrNoEligibleSnapshot(id, err)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrEventInvalidConfig(id, err)
	case stdErrors.Is(err, usecaseErrors.ErrLockBackend):
		return errors.ErrCacheFailed("acquire lock", err)
	case stdErrors.Is(err, usecaseErrors.ErrStorageRead):
		return errors.ErrDBQueryFailed("read event data", err).WithDetail("event_id", id)
	case stdErrors.Is(err, usecaseErrors.ErrStorageWrite):
		return errors.ErrDBTransactionFailed(err).WithDetail("event_id", id)
	default:
		return errors.ErrInternal(err)
	}
}
