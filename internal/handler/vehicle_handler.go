package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cetler74/dbcars-sub001/internal/dto"
	"github.com/cetler74/dbcars-sub001/internal/models"
	"github.com/cetler74/dbcars-sub001/internal/service"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type VehicleHandler struct {
	svc service.VehicleService
}

func NewVehicleHandler(svc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

func (h *VehicleHandler) RegisterRoutes(e *echo.Echo) {
	vehicles := e.Group("/api/v1/vehicles")
	vehicles.GET("", h.ListVehicles)
	vehicles.POST("", h.CreateVehicle)
	vehicles.GET("/:id", h.GetVehicle)
}

func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	filter := service.VehicleFilter{
		Category:     c.QueryParam("category"),
		Transmission: c.QueryParam("transmission"),
		FuelType:     c.QueryParam("fuel_type"),
		Location:     c.QueryParam("location"),
		Query:        c.QueryParam("q"),
		Sort:         c.QueryParam("sort"),
	}
	if s := c.QueryParam("min_seats"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min_seats")
		}
		filter.MinSeats = n
	}
	if s := c.QueryParam("max_price"); s != "" {
		p, err := strconv.ParseFloat(s, 64)
		if err != nil || p < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid max_price")
		}
		filter.MaxPrice = p
	}

	vehicles, err := h.svc.ListVehicles(c.Request().Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSort) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.VehicleResponse, len(vehicles))
	for i := range vehicles {
		resp[i] = dto.ToVehicleResponse(&vehicles[i])
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	id, err := paramID(c, "id", "vehicle")
	if err != nil {
		return err
	}

	vehicle, err := h.svc.GetVehicle(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

func (h *VehicleHandler) CreateVehicle(c echo.Context) error {
	var req dto.CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	vehicle := &models.Vehicle{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Category:     req.Category,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		Seats:        req.Seats,
		DailyRate:    req.DailyRate,
		Location:     req.Location,
		Features:     datatypes.JSONSlice[string](req.Features),
		IsActive:     true,
	}

	if err := h.svc.CreateVehicle(c.Request().Context(), vehicle); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}
