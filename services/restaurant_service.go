package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/eddietapia/reservations/entity"
	"github.com/eddietapia/reservations/pkg/apperr"
	"github.com/eddietapia/reservations/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo  *repository.RestaurantRepository
	Cache *repository.CatalogCache
}

func NewRestaurantService(repo *repository.RestaurantRepository, cache *repository.CatalogCache) *RestaurantService {
	return &RestaurantService{Repo: repo, Cache: cache}
}

// RestaurantSummary is the public catalog row, also the shape cached in redis.
type RestaurantSummary struct {
	ID                  uint     `json:"id"`
	Name                string   `json:"name"`
	AverageRating       float64  `json:"averageRating"`
	Address             string   `json:"address"`
	Phone               string   `json:"phone"`
	HasParking          bool     `json:"hasParking"`
	AcceptsReservations bool     `json:"acceptsReservations"`
	Endorsements        []string `json:"endorsements"`
}

// List serves the public catalog, from cache when fresh.
func (s *RestaurantService) List(ctx context.Context) ([]RestaurantSummary, error) {
	if raw, ok := s.Cache.Get(ctx, s.Cache.CatalogKey()); ok {
		var cached []RestaurantSummary
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	rests, err := s.Repo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "loading restaurants", err)
	}

	out := make([]RestaurantSummary, 0, len(rests))
	for i := range rests {
		out = append(out, summarize(&rests[i]))
	}

	if raw, err := json.Marshal(out); err == nil {
		s.Cache.Set(ctx, s.Cache.CatalogKey(), raw)
	}
	return out, nil
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "restaurant %d not found", id)
		}
		return nil, apperr.Wrap(apperr.Storage, "loading restaurant", err)
	}
	return rest, nil
}

type CreateRestaurantReq struct {
	Name                string  `json:"name" binding:"required"`
	AverageRating       float64 `json:"averageRating"`
	Address             string  `json:"address"`
	Phone               string  `json:"phone"`
	Email               string  `json:"email"`
	WebsiteURL          string  `json:"websiteUrl"`
	HasParking          bool    `json:"hasParking"`
	AcceptsReservations *bool   `json:"acceptsReservations"`
}

func (s *RestaurantService) Create(ctx context.Context, req CreateRestaurantReq) (*entity.Restaurant, error) {
	accepts := true
	if req.AcceptsReservations != nil {
		accepts = *req.AcceptsReservations
	}
	rest := &entity.Restaurant{
		Name:                req.Name,
		AverageRating:       req.AverageRating,
		Address:             req.Address,
		Phone:               req.Phone,
		Email:               req.Email,
		WebsiteURL:          req.WebsiteURL,
		HasParking:          req.HasParking,
		AcceptsReservations: accepts,
		IsActive:            true,
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "creating restaurant", err)
	}
	s.Cache.Invalidate(ctx, s.Cache.CatalogKey())
	return rest, nil
}

func (s *RestaurantService) AddTable(ctx context.Context, restaurantID uint, capacity int) (*entity.Table, error) {
	if capacity < 1 {
		return nil, apperr.New(apperr.Validation, "capacity must be positive")
	}
	if _, err := s.Get(restaurantID); err != nil {
		return nil, err
	}
	table := &entity.Table{RestaurantID: restaurantID, Capacity: capacity, IsActive: true}
	if err := s.Repo.AddTable(table); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "creating table", err)
	}
	s.Cache.Invalidate(ctx, s.Cache.CatalogKey())
	return table, nil
}

type WeekdayHoursReq struct {
	Weekday  int `json:"weekday" binding:"min=0,max=6"`
	OpensAt  int `json:"opensAt"`
	ClosesAt int `json:"closesAt"`
}

// SetHours replaces the restaurant's weekly schedule. Weekdays left out are
// closed; a 24-hour day is opensAt=0, closesAt=1440.
func (s *RestaurantService) SetHours(ctx context.Context, restaurantID uint, reqs []WeekdayHoursReq) error {
	if _, err := s.Get(restaurantID); err != nil {
		return err
	}

	seen := make(map[int]bool, len(reqs))
	hours := make([]entity.RestaurantHours, 0, len(reqs))
	for _, h := range reqs {
		if h.Weekday < 0 || h.Weekday > 6 {
			return apperr.Newf(apperr.Validation, "weekday %d out of range", h.Weekday)
		}
		if seen[h.Weekday] {
			return apperr.Newf(apperr.Validation, "duplicate weekday %d", h.Weekday)
		}
		seen[h.Weekday] = true
		if h.OpensAt < 0 || h.ClosesAt > minutesPerDay || h.OpensAt >= h.ClosesAt {
			return apperr.Newf(apperr.Validation, "invalid hours for weekday %d", h.Weekday)
		}
		hours = append(hours, entity.RestaurantHours{
			Weekday:  h.Weekday,
			OpensAt:  h.OpensAt,
			ClosesAt: h.ClosesAt,
		})
	}

	if err := s.Repo.ReplaceHours(restaurantID, hours); err != nil {
		return apperr.Wrap(apperr.Storage, "replacing hours", err)
	}
	s.Cache.Invalidate(ctx, s.Cache.CatalogKey())
	return nil
}

func summarize(r *entity.Restaurant) RestaurantSummary {
	names := make([]string, 0, len(r.Endorsements))
	for _, e := range r.Endorsements {
		names = append(names, e.Name)
	}
	return RestaurantSummary{
		ID:                  r.ID,
		Name:                r.Name,
		AverageRating:       r.AverageRating,
		Address:             r.Address,
		Phone:               r.Phone,
		HasParking:          r.HasParking,
		AcceptsReservations: r.AcceptsReservations,
		Endorsements:        names,
	}
}
