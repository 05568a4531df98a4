package controllers

import (
	"strconv"
	"time"

	"github.com/eddietapia/reservations/entity"
	"github.com/eddietapia/reservations/pkg/resp"
	"github.com/eddietapia/reservations/services"
	"github.com/eddietapia/reservations/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Service *services.ReservationService
	QR      services.QRGenerator
}

func NewReservationController(s *services.ReservationService, qr services.QRGenerator) *ReservationController {
	return &ReservationController{Service: s, QR: qr}
}

type createReservationReq struct {
	RestaurantID     uint   `json:"restaurantId" binding:"required"`
	Start            string `json:"start" binding:"required"`
	End              string `json:"end" binding:"required"`
	AttendeeIDs      []uint `json:"attendeeIds"`
	AdditionalGuests int    `json:"additionalGuests"`
}

type ReservationResponse struct {
	ID           uint            `json:"id"`
	HostID       uint            `json:"hostId"`
	RestaurantID uint            `json:"restaurantId"`
	Restaurant   string          `json:"restaurant,omitempty"`
	TableID      uint            `json:"tableId"`
	Start        time.Time       `json:"start"`
	End          time.Time       `json:"end"`
	PartySize    int             `json:"partySize"`
	IsActive     bool            `json:"isActive"`
	Attendees    []eaterResponse `json:"attendees,omitempty"`
}

// Create handles POST /reservations. The authenticated eater is the host.
func (ctl *ReservationController) Create(c *gin.Context) {
	var req createReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	window, err := parseWindow(req.Start, req.End)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := ctl.Service.Create(c.Request.Context(), services.CreateReservationReq{
		HostID:           utils.CurrentEaterID(c),
		RestaurantID:     req.RestaurantID,
		Window:           window,
		AttendeeIDs:      req.AttendeeIDs,
		AdditionalGuests: req.AdditionalGuests,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, mapReservation(res))
}

func (ctl *ReservationController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid reservation id")
		return
	}
	includeInactive := c.Query("include_inactive") == "true"

	res, err := ctl.Service.Get(uint(id), includeInactive, utils.CurrentEaterID(c), utils.CurrentRole(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, mapReservation(res))
}

// Cancel handles DELETE /reservations/:id as a soft delete.
func (ctl *ReservationController) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid reservation id")
		return
	}

	if err := ctl.Service.Cancel(c.Request.Context(), uint(id), utils.CurrentEaterID(c), utils.CurrentRole(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "reservation cancelled"})
}

// CheckinCode handles GET /reservations/:id/qr with a PNG body.
func (ctl *ReservationController) CheckinCode(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid reservation id")
		return
	}

	if _, err := ctl.Service.Get(uint(id), false, utils.CurrentEaterID(c), utils.CurrentRole(c)); err != nil {
		resp.Error(c, err)
		return
	}

	png, err := ctl.QR.ReservationCode(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(200, "image/png", png)
}

// ListMine handles GET /profile/reservations for the authenticated eater.
func (ctl *ReservationController) ListMine(c *gin.Context) {
	out, err := ctl.Service.ListForEater(utils.CurrentEaterID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}

	items := make([]ReservationResponse, 0, len(out))
	for i := range out {
		items = append(items, mapReservation(&out[i]))
	}
	resp.OK(c, gin.H{"items": items})
}

func mapReservation(r *entity.Reservation) ReservationResponse {
	item := ReservationResponse{
		ID:           r.ID,
		HostID:       r.HostID,
		RestaurantID: r.RestaurantID,
		Restaurant:   r.Restaurant.Name,
		TableID:      r.TableID,
		Start:        r.StartsAt.UTC(),
		End:          r.EndsAt.UTC(),
		PartySize:    r.PartySize,
		IsActive:     r.IsActive,
	}
	for i := range r.Attendees {
		item.Attendees = append(item.Attendees, mapEater(&r.Attendees[i]))
	}
	return item
}
