package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/eddietapia/reservations/entity"
	"github.com/eddietapia/reservations/events"
	"github.com/eddietapia/reservations/pkg/apperr"
	"github.com/eddietapia/reservations/repository"

	"gorm.io/gorm"
)

type ReservationService struct {
	DB              *gorm.DB
	EaterRepo       *repository.EaterRepository
	RestaurantRepo  *repository.RestaurantRepository
	ReservationRepo *repository.ReservationRepository
	Publisher       *events.Publisher

	locks keyedLocks
}

func NewReservationService(
	db *gorm.DB,
	eaterRepo *repository.EaterRepository,
	restaurantRepo *repository.RestaurantRepository,
	reservationRepo *repository.ReservationRepository,
	publisher *events.Publisher,
) *ReservationService {
	return &ReservationService{
		DB:              db,
		EaterRepo:       eaterRepo,
		RestaurantRepo:  restaurantRepo,
		ReservationRepo: reservationRepo,
		Publisher:       publisher,
	}
}

type CreateReservationReq struct {
	HostID           uint
	RestaurantID     uint
	Window           TimeWindow
	AttendeeIDs      []uint // may repeat or include the host; deduped
	AdditionalGuests int    // walk-ins without an account
}

// Create books a table. The checks run twice by design: once here for a fast
// answer, then again inside the transaction while the booking locks are held,
// so two racing requests for the same table or the same eater cannot both
// commit. The locks cover the restaurant ID and every attendee ID; stripe
// ordering in keyedLocks keeps concurrent bookings deadlock free.
func (s *ReservationService) Create(ctx context.Context, req CreateReservationReq) (*entity.Reservation, error) {
	if err := req.Window.Validate(); err != nil {
		return nil, err
	}
	if req.HostID == 0 {
		return nil, apperr.New(apperr.Validation, "host is required")
	}
	if req.AdditionalGuests < 0 {
		return nil, apperr.New(apperr.Validation, "additional guests cannot be negative")
	}

	restaurant, err := s.RestaurantRepo.FindByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "restaurant %d not found", req.RestaurantID)
		}
		return nil, apperr.Wrap(apperr.Storage, "loading restaurant", err)
	}
	if !restaurant.AcceptsReservations {
		return nil, apperr.Newf(apperr.Validation, "%s does not accept reservations", restaurant.Name)
	}

	attendeeIDs := dedupeIDs(append([]uint{req.HostID}, req.AttendeeIDs...))
	attendees, err := s.EaterRepo.FindActiveByIDs(attendeeIDs)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "loading attendees", err)
	}
	if missing := firstMissingID(attendeeIDs, attendees); missing != 0 {
		return nil, apperr.Newf(apperr.NotFound, "eater %d not found", missing)
	}

	partySize := len(attendees) + req.AdditionalGuests

	if !hoursCover(restaurant.Hours, req.Window) {
		return nil, apperr.Newf(apperr.Validation, "%s is closed during the requested window", restaurant.Name)
	}

	unlock := s.locks.lock(bookingLockKeys(req.RestaurantID, attendeeIDs)...)
	defer unlock()

	var created *entity.Reservation
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Double-booking guard: every attendee must be free across all
		// restaurants for the whole window.
		for _, id := range attendeeIDs {
			conflict, err := s.ReservationRepo.FirstActiveForEaterOverlapping(tx, id, req.Window.Start, req.Window.End)
			if err != nil {
				return apperr.Wrap(apperr.Storage, "checking eater availability", err)
			}
			if conflict != nil {
				return apperr.BookingConflict(
					fmt.Sprintf("eater %d already has reservation %d from %s to %s",
						id, conflict.ID,
						conflict.StartsAt.UTC().Format("15:04"), conflict.EndsAt.UTC().Format("15:04")),
					id, conflict.ID)
			}
		}

		existing, err := s.ReservationRepo.ActiveForRestaurantOverlapping(tx, req.RestaurantID, req.Window.Start, req.Window.End)
		if err != nil {
			return apperr.Wrap(apperr.Storage, "checking table availability", err)
		}
		table, anyFits := pickTable(restaurant.Tables, partySize, req.Window, existing)
		if table == nil {
			if !anyFits {
				return apperr.Newf(apperr.Capacity, "%s has no table for a party of %d", restaurant.Name, partySize)
			}
			return apperr.New(apperr.Conflict, "no table is free for the requested window")
		}

		res := &entity.Reservation{
			HostID:       req.HostID,
			RestaurantID: req.RestaurantID,
			TableID:      table.ID,
			StartsAt:     req.Window.Start,
			EndsAt:       req.Window.End,
			PartySize:    partySize,
			IsActive:     true,
			Attendees:    attendees,
		}
		if err := s.ReservationRepo.Create(tx, res); err != nil {
			return apperr.Wrap(apperr.Storage, "creating reservation", err)
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeReservationCreated, created)
	return created, nil
}

// Cancel soft-deletes a reservation on behalf of viewerID. The single-row
// transactional update means concurrent booking checks see the reservation
// either fully active or fully cancelled, never in between.
func (s *ReservationService) Cancel(ctx context.Context, id uint, viewerID uint, viewerRole string) error {
	res, err := s.Get(id, false, viewerID, viewerRole)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		rows, err := s.ReservationRepo.SoftCancel(tx, id)
		if err != nil {
			return apperr.Wrap(apperr.Storage, "cancelling reservation", err)
		}
		if rows == 0 {
			return apperr.Newf(apperr.NotFound, "reservation %d not found or already cancelled", id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	res.IsActive = false
	s.publish(ctx, events.TypeReservationCancelled, res)
	return nil
}

// Get returns a reservation with its attendees. Cancelled reservations are
// hidden unless includeInactive is set. Only the host, an attendee, or an
// admin may read a reservation; anyone else gets the same not-found as a
// nonexistent ID, so strangers cannot probe for live bookings.
func (s *ReservationService) Get(id uint, includeInactive bool, viewerID uint, viewerRole string) (*entity.Reservation, error) {
	res, err := s.ReservationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "reservation %d not found", id)
		}
		return nil, apperr.Wrap(apperr.Storage, "loading reservation", err)
	}
	if !res.IsActive && !includeInactive {
		return nil, apperr.Newf(apperr.NotFound, "reservation %d not found", id)
	}
	if !canView(res, viewerID, viewerRole) {
		return nil, apperr.Newf(apperr.NotFound, "reservation %d not found", id)
	}
	return res, nil
}

func canView(res *entity.Reservation, viewerID uint, viewerRole string) bool {
	if viewerRole == "admin" || res.HostID == viewerID {
		return true
	}
	for _, a := range res.Attendees {
		if a.ID == viewerID {
			return true
		}
	}
	return false
}

// ListForEater returns the eater's active reservations, soonest first.
func (s *ReservationService) ListForEater(eaterID uint) ([]entity.Reservation, error) {
	out, err := s.ReservationRepo.ListActiveForEater(eaterID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "listing reservations", err)
	}
	return out, nil
}

func (s *ReservationService) publish(ctx context.Context, eventType string, res *entity.Reservation) {
	if res == nil {
		return
	}
	err := s.Publisher.Publish(ctx, events.ReservationEvent{
		Type:          eventType,
		ReservationID: res.ID,
		RestaurantID:  res.RestaurantID,
		TableID:       res.TableID,
		HostID:        res.HostID,
		PartySize:     res.PartySize,
		StartsAt:      res.StartsAt,
		EndsAt:        res.EndsAt,
	})
	if err != nil {
		// The booking already committed; the event stream is advisory.
		log.Printf("publish %s for reservation %d failed: %v", eventType, res.ID, err)
	}
}

func bookingLockKeys(restaurantID uint, eaterIDs []uint) []string {
	keys := make([]string, 0, len(eaterIDs)+1)
	keys = append(keys, fmt.Sprintf("restaurant:%d", restaurantID))
	for _, id := range eaterIDs {
		keys = append(keys, fmt.Sprintf("eater:%d", id))
	}
	sort.Strings(keys)
	return keys
}
