package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cetler74/dbcars-sub001/internal/dto"
	"github.com/cetler74/dbcars-sub001/internal/service"
	"github.com/labstack/echo/v4"
)

type AvailabilityHandler struct {
	svc service.AvailabilityService
	now func() time.Time
}

func NewAvailabilityHandler(svc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc, now: time.Now}
}

func (h *AvailabilityHandler) RegisterRoutes(e *echo.Echo) {
	vehicles := e.Group("/api/v1/vehicles")
	vehicles.GET("/:id/calendar", h.GetCalendar)
	vehicles.GET("/:id/availability/:date", h.GetDay)
}

// GetCalendar defaults to the current month when year or month is omitted.
func (h *AvailabilityHandler) GetCalendar(c echo.Context) error {
	vehicleID, err := paramID(c, "id", "vehicle")
	if err != nil {
		return err
	}
	unitID, err := queryUnitID(c)
	if err != nil {
		return err
	}

	now := h.now()
	year, month := now.Year(), int(now.Month())
	if s := c.QueryParam("year"); s != "" {
		if year, err = strconv.Atoi(s); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
	}
	if s := c.QueryParam("month"); s != "" {
		if month, err = strconv.Atoi(s); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid month")
		}
	}

	m, err := h.svc.MonthCalendar(c.Request().Context(), vehicleID, year, time.Month(month), unitID)
	if err != nil {
		return availabilityError(err)
	}

	return c.JSON(http.StatusOK, dto.ToCalendarResponse(vehicleID, m))
}

func (h *AvailabilityHandler) GetDay(c echo.Context) error {
	vehicleID, err := paramID(c, "id", "vehicle")
	if err != nil {
		return err
	}
	unitID, err := queryUnitID(c)
	if err != nil {
		return err
	}
	date, err := parseDate(c.Param("date"), "date")
	if err != nil {
		return err
	}

	info, err := h.svc.Day(c.Request().Context(), vehicleID, date, unitID)
	if err != nil {
		return availabilityError(err)
	}

	return c.JSON(http.StatusOK, dto.ToDayResponse(info))
}

func availabilityError(err error) error {
	switch {
	case errors.Is(err, service.ErrVehicleNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidMonth):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
