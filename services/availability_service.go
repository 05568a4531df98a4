package services

import (
	"sort"

	"github.com/eddietapia/reservations/entity"
	"github.com/eddietapia/reservations/pkg/apperr"
	"github.com/eddietapia/reservations/repository"
)

// Dietary filter modes for availability search.
const (
	DietaryStrict = "strict" // exclude restaurants that miss any restriction
	DietaryIgnore = "ignore" // skip the dietary filter entirely
)

type AvailabilityService struct {
	EaterRepo       *repository.EaterRepository
	RestaurantRepo  *repository.RestaurantRepository
	ReservationRepo *repository.ReservationRepository
}

func NewAvailabilityService(
	eaterRepo *repository.EaterRepository,
	restaurantRepo *repository.RestaurantRepository,
	reservationRepo *repository.ReservationRepository,
) *AvailabilityService {
	return &AvailabilityService{
		EaterRepo:       eaterRepo,
		RestaurantRepo:  restaurantRepo,
		ReservationRepo: reservationRepo,
	}
}

type SearchQuery struct {
	Window           TimeWindow
	EaterIDs         []uint
	AdditionalGuests int
	DietaryMode      string // DietaryStrict (default) or DietaryIgnore
}

// Search returns every active, reservation-accepting restaurant that is open
// for the whole window, covers the party's dietary restrictions, and has a
// free table big enough. Ordered by average rating descending, ID ascending on
// ties. Pure read: no table is held by searching, so a concurrent booking can
// still claim a table the search reported; Create re-checks at commit time.
func (s *AvailabilityService) Search(q SearchQuery) ([]entity.Restaurant, error) {
	if err := q.Window.Validate(); err != nil {
		return nil, err
	}
	if len(q.EaterIDs) == 0 {
		return nil, apperr.New(apperr.Validation, "at least one eater is required")
	}
	if q.AdditionalGuests < 0 {
		return nil, apperr.New(apperr.Validation, "additional guests cannot be negative")
	}
	switch q.DietaryMode {
	case "", DietaryStrict, DietaryIgnore:
	default:
		return nil, apperr.Newf(apperr.Validation, "unknown dietary mode %q", q.DietaryMode)
	}

	eaters, err := s.EaterRepo.FindActiveByIDs(dedupeIDs(q.EaterIDs))
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "loading eaters", err)
	}
	if missing := firstMissingID(q.EaterIDs, eaters); missing != 0 {
		return nil, apperr.Newf(apperr.NotFound, "eater %d not found", missing)
	}

	partySize := len(eaters) + q.AdditionalGuests
	required := aggregateRestrictions(eaters)

	catalog, err := s.RestaurantRepo.FindCatalog()
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "loading restaurant catalog", err)
	}

	// Hours and dietary filters run on the preloaded catalog; the surviving
	// candidates share one reservation query.
	var candidates []entity.Restaurant
	candidateIDs := make([]uint, 0, len(catalog))
	for _, rest := range catalog {
		if !hoursCover(rest.Hours, q.Window) {
			continue
		}
		if q.DietaryMode != DietaryIgnore && !coversRestrictions(rest.Endorsements, required) {
			continue
		}
		candidates = append(candidates, rest)
		candidateIDs = append(candidateIDs, rest.ID)
	}

	existing, err := s.ReservationRepo.ActiveForRestaurantsOverlapping(
		s.ReservationRepo.DB, candidateIDs, q.Window.Start, q.Window.End)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "loading reservations", err)
	}
	byRestaurant := make(map[uint][]entity.Reservation, len(candidateIDs))
	for _, r := range existing {
		byRestaurant[r.RestaurantID] = append(byRestaurant[r.RestaurantID], r)
	}

	var available []entity.Restaurant
	for _, rest := range candidates {
		if table, _ := pickTable(rest.Tables, partySize, q.Window, byRestaurant[rest.ID]); table == nil {
			continue
		}
		available = append(available, rest)
	}

	sort.Slice(available, func(i, j int) bool {
		if available[i].AverageRating != available[j].AverageRating {
			return available[i].AverageRating > available[j].AverageRating
		}
		return available[i].ID < available[j].ID
	})
	return available, nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// firstMissingID returns the first requested ID absent from the loaded eaters, 0
// when everything resolved.
func firstMissingID(ids []uint, eaters []entity.Eater) uint {
	found := make(map[uint]bool, len(eaters))
	for _, e := range eaters {
		found[e.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return id
		}
	}
	return 0
}
