package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cetler74/dbcars-sub001/internal/models"
	"github.com/cetler74/dbcars-sub001/internal/repository"
	"gorm.io/gorm"
)

var ErrInvalidSort = errors.New("sort must be one of price_asc, price_desc, name_asc, name_desc, seats_desc, newest")

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortSeatsDesc = "seats_desc"
	SortNewest    = "newest"
)

// VehicleFilter drives the cars listing. Zero values mean "no constraint".
type VehicleFilter struct {
	Category     string
	Transmission string
	FuelType     string
	Location     string
	Query        string
	MinSeats     int
	MaxPrice     float64
	Sort         string
}

type VehicleService interface {
	ListVehicles(ctx context.Context, filter VehicleFilter) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
}

type vehicleService struct {
	repo repository.VehicleRepository
}

func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo}
}

func (s *vehicleService) ListVehicles(ctx context.Context, filter VehicleFilter) ([]models.Vehicle, error) {
	less, ok := sorters[strings.ToLower(filter.Sort)]
	if !ok {
		return nil, ErrInvalidSort
	}

	vehicles, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}

	out := filterVehicles(vehicles, filter)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	if err := s.repo.Create(ctx, vehicle); err != nil {
		return fmt.Errorf("create vehicle: %w", err)
	}
	return nil
}

var sorters = map[string]func(a, b models.Vehicle) bool{
	"":            func(a, b models.Vehicle) bool { return a.DailyRate < b.DailyRate },
	SortPriceAsc:  func(a, b models.Vehicle) bool { return a.DailyRate < b.DailyRate },
	SortPriceDesc: func(a, b models.Vehicle) bool { return a.DailyRate > b.DailyRate },
	SortNameAsc: func(a, b models.Vehicle) bool {
		return strings.ToLower(a.DisplayName()) < strings.ToLower(b.DisplayName())
	},
	SortNameDesc: func(a, b models.Vehicle) bool {
		return strings.ToLower(a.DisplayName()) > strings.ToLower(b.DisplayName())
	},
	SortSeatsDesc: func(a, b models.Vehicle) bool { return a.Seats > b.Seats },
	SortNewest:    func(a, b models.Vehicle) bool { return a.Year > b.Year },
}

func filterVehicles(vehicles []models.Vehicle, f VehicleFilter) []models.Vehicle {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if !matchFold(f.Category, v.Category) ||
			!matchFold(f.Transmission, v.Transmission) ||
			!matchFold(f.FuelType, v.FuelType) ||
			!matchFold(f.Location, v.Location) {
			continue
		}
		if f.MinSeats > 0 && v.Seats < f.MinSeats {
			continue
		}
		if f.MaxPrice > 0 && v.DailyRate > f.MaxPrice {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(v.DisplayName()), q) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchFold(want, got string) bool {
	want = strings.TrimSpace(want)
	return want == "" || strings.EqualFold(want, got)
}
