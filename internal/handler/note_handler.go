package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/cetler74/dbcars-sub001/internal/dto"
	"github.com/cetler74/dbcars-sub001/internal/models"
	"github.com/cetler74/dbcars-sub001/internal/service"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type NoteHandler struct {
	svc service.NoteService
}

func NewNoteHandler(svc service.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

func (h *NoteHandler) RegisterRoutes(e *echo.Echo) {
	vehicles := e.Group("/api/v1/vehicles")
	vehicles.POST("/:id/notes", h.CreateNote)
	vehicles.GET("/:id/notes", h.ListNotes)

	e.DELETE("/api/v1/notes/:id", h.DeleteNote)
}

func (h *NoteHandler) CreateNote(c echo.Context) error {
	vehicleID, err := paramID(c, "id", "vehicle")
	if err != nil {
		return err
	}

	var req dto.CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	noteType, err := models.ParseNoteType(req.NoteType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, err := parseDate(req.NoteDate, "note_date")
	if err != nil {
		return err
	}

	note := &models.AvailabilityNote{
		VehicleID: vehicleID,
		UnitID:    req.UnitID,
		NoteDate:  datatypes.Date(date),
		NoteType:  noteType,
		Note:      req.Note,
	}

	if err := h.svc.CreateNote(c.Request().Context(), note); err != nil {
		switch {
		case errors.Is(err, service.ErrVehicleNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidNoteType):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// ListNotes covers the current month when from/to are omitted.
func (h *NoteHandler) ListNotes(c echo.Context) error {
	vehicleID, err := paramID(c, "id", "vehicle")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	if s := c.QueryParam("from"); s != "" {
		if from, err = parseDate(s, "from"); err != nil {
			return err
		}
	}
	if s := c.QueryParam("to"); s != "" {
		if to, err = parseDate(s, "to"); err != nil {
			return err
		}
	}

	notes, err := h.svc.ListNotes(c.Request().Context(), vehicleID, from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.NoteResponse, len(notes))
	for i := range notes {
		resp[i] = dto.ToNoteResponse(&notes[i])
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *NoteHandler) DeleteNote(c echo.Context) error {
	id, err := paramID(c, "id", "note")
	if err != nil {
		return err
	}

	if err := h.svc.DeleteNote(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
