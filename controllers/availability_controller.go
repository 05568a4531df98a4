package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/eddietapia/reservations/entity"
	"github.com/eddietapia/reservations/pkg/resp"
	"github.com/eddietapia/reservations/services"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	Service *services.AvailabilityService
}

func NewAvailabilityController(s *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Service: s}
}

// ====== Response DTO ======
type AvailableRestaurantResponse struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	AverageRating float64  `json:"averageRating"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	HasParking    bool     `json:"hasParking"`
	Endorsements  []string `json:"endorsements"`
}

// Search handles GET /restaurants/available.
// Query: start, end (RFC3339, UTC), eater_id (repeatable), additional_guests,
// dietary (strict|ignore).
func (ctl *AvailabilityController) Search(c *gin.Context) {
	window, err := parseWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	eaterIDs, err := parseIDList(c.QueryArray("eater_id"))
	if err != nil {
		resp.BadRequest(c, "invalid eater_id")
		return
	}

	guests := 0
	if raw := c.Query("additional_guests"); raw != "" {
		guests, err = strconv.Atoi(raw)
		if err != nil {
			resp.BadRequest(c, "invalid additional_guests")
			return
		}
	}

	rests, err := ctl.Service.Search(services.SearchQuery{
		Window:           window,
		EaterIDs:         eaterIDs,
		AdditionalGuests: guests,
		DietaryMode:      c.Query("dietary"),
	})
	if err != nil {
		resp.Error(c, err)
		return
	}

	out := make([]AvailableRestaurantResponse, 0, len(rests))
	for i := range rests {
		out = append(out, mapAvailableRestaurant(&rests[i]))
	}
	resp.OK(c, gin.H{"count": len(out), "restaurants": out})
}

func mapAvailableRestaurant(r *entity.Restaurant) AvailableRestaurantResponse {
	names := make([]string, 0, len(r.Endorsements))
	for _, e := range r.Endorsements {
		names = append(names, e.Name)
	}
	return AvailableRestaurantResponse{
		ID:            r.ID,
		Name:          r.Name,
		AverageRating: r.AverageRating,
		Address:       r.Address,
		Phone:         r.Phone,
		HasParking:    r.HasParking,
		Endorsements:  names,
	}
}

// ====== Helpers shared by booking endpoints ======

func parseWindow(start, end string) (services.TimeWindow, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return services.TimeWindow{}, fmt.Errorf("start must be RFC3339, e.g. 2026-08-30T18:00:00Z")
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return services.TimeWindow{}, fmt.Errorf("end must be RFC3339, e.g. 2026-08-30T18:00:00Z")
	}
	return services.NewTimeWindow(s, e), nil
}

func parseIDList(raw []string) ([]uint, error) {
	out := make([]uint, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, uint(id))
	}
	return out, nil
}
