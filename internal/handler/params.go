package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cetler74/dbcars-sub001/internal/dto"
	"github.com/labstack/echo/v4"
)

func paramID(c echo.Context, name, what string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+what+" id")
	}
	return uint(id), nil
}

func queryUnitID(c echo.Context) (*uint, error) {
	raw := c.QueryParam("unit_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid unit_id")
	}
	unit := uint(id)
	return &unit, nil
}

func parseDate(raw, field string) (time.Time, error) {
	d, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, field+" must be YYYY-MM-DD")
	}
	return d, nil
}
