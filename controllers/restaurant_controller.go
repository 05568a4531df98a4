package controllers

import (
	"strconv"

	"github.com/eddietapia/reservations/entity"
	"github.com/eddietapia/reservations/pkg/resp"
	"github.com/eddietapia/reservations/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: s}
}

// ====== Response DTO ======
type RestaurantDetailResponse struct {
	ID                  uint     `json:"id"`
	Name                string   `json:"name"`
	AverageRating       float64  `json:"averageRating"`
	Address             string   `json:"address"`
	Phone               string   `json:"phone"`
	Email               string   `json:"email"`
	WebsiteURL          string   `json:"websiteUrl"`
	HasParking          bool     `json:"hasParking"`
	AcceptsReservations bool     `json:"acceptsReservations"`
	Endorsements        []string `json:"endorsements"`

	Hours []struct {
		Weekday  int `json:"weekday"`
		OpensAt  int `json:"opensAt"`
		ClosesAt int `json:"closesAt"`
	} `json:"hours"`

	Tables []struct {
		ID       uint `json:"id"`
		Capacity int  `json:"capacity"`
	} `json:"tables"`
}

// ====== Public: catalog ======
func (ctl *RestaurantController) List(c *gin.Context) {
	items, err := ctl.Service.List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	r, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, mapRestaurantDetail(r))
}

// ====== Admin: catalog management ======
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	r, err := ctl.Service.Create(c.Request.Context(), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, mapRestaurantDetail(r))
}

func (ctl *RestaurantController) AddTable(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	var req struct {
		Capacity int `json:"capacity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	table, err := ctl.Service.AddTable(c.Request.Context(), uint(id), req.Capacity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"id": table.ID, "capacity": table.Capacity})
}

func (ctl *RestaurantController) SetHours(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	var req struct {
		Hours []services.WeekdayHoursReq `json:"hours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.SetHours(c.Request.Context(), uint(id), req.Hours); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "hours updated"})
}

// ====== Helper ======
func mapRestaurantDetail(r *entity.Restaurant) RestaurantDetailResponse {
	item := RestaurantDetailResponse{
		ID:                  r.ID,
		Name:                r.Name,
		AverageRating:       r.AverageRating,
		Address:             r.Address,
		Phone:               r.Phone,
		Email:               r.Email,
		WebsiteURL:          r.WebsiteURL,
		HasParking:          r.HasParking,
		AcceptsReservations: r.AcceptsReservations,
	}
	for _, e := range r.Endorsements {
		item.Endorsements = append(item.Endorsements, e.Name)
	}
	for _, h := range r.Hours {
		item.Hours = append(item.Hours, struct {
			Weekday  int `json:"weekday"`
			OpensAt  int `json:"opensAt"`
			ClosesAt int `json:"closesAt"`
		}{h.Weekday, h.OpensAt, h.ClosesAt})
	}
	for _, t := range r.Tables {
		item.Tables = append(item.Tables, struct {
			ID       uint `json:"id"`
			Capacity int  `json:"capacity"`
		}{t.ID, t.Capacity})
	}
	return item
}
