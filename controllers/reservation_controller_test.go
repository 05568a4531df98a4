package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eddietapia/reservations/entity"
	"github.com/eddietapia/reservations/repository"
	"github.com/eddietapia/reservations/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	host   *entity.Eater
	rest   *entity.Restaurant

	// actingAs is the eater the stub auth middleware injects per request.
	actingAs uint
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Eater{},
		&entity.DietaryRestriction{}, &entity.Endorsement{},
		&entity.Restaurant{}, &entity.RestaurantHours{}, &entity.Table{},
		&entity.Reservation{},
	))

	host := &entity.Eater{Name: "Ada", Email: "ada@example.com", Role: "eater", IsActive: true}
	require.NoError(t, db.Create(host).Error)

	rest := &entity.Restaurant{Name: "Bistro", AcceptsReservations: true, IsActive: true}
	for d := 0; d < 7; d++ {
		rest.Hours = append(rest.Hours, entity.RestaurantHours{Weekday: d, OpensAt: 0, ClosesAt: 1440})
	}
	rest.Tables = []entity.Table{{Capacity: 4, IsActive: true}}
	require.NoError(t, db.Create(rest).Error)

	eaterRepo := repository.NewEaterRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	resvRepo := repository.NewReservationRepository(db)

	resvCtrl := NewReservationController(
		services.NewReservationService(db, eaterRepo, restRepo, resvRepo, nil),
		services.QRGenerator{BaseURL: "http://localhost:8000"},
	)
	availCtrl := NewAvailabilityController(
		services.NewAvailabilityService(eaterRepo, restRepo, resvRepo),
	)

	env := &testEnv{db: db, host: host, rest: rest, actingAs: host.ID}

	r := gin.New()
	// Stand-in for the JWT middleware, injecting whichever eater the test
	// currently impersonates.
	r.Use(func(c *gin.Context) { c.Set("eaterId", env.actingAs) })
	r.GET("/restaurants/available", availCtrl.Search)
	r.POST("/reservations", resvCtrl.Create)
	r.GET("/reservations/:id", resvCtrl.Detail)
	r.DELETE("/reservations/:id", resvCtrl.Cancel)
	r.GET("/reservations/:id/qr", resvCtrl.CheckinCode)

	env.router = r
	return env
}

func (env *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestAvailabilityEndpoint(t *testing.T) {
	env := newTestEnv(t)

	// Missing start/end is a 400 before any lookup.
	w := env.do(t, http.MethodGet, "/restaurants/available?eater_id=1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	path := fmt.Sprintf("/restaurants/available?start=%s&end=%s&eater_id=%d",
		"2026-08-31T18:00:00Z", "2026-08-31T20:00:00Z", env.host.ID)
	w = env.do(t, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Count       int `json:"count"`
			Restaurants []struct {
				Name string `json:"name"`
			} `json:"restaurants"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 1, body.Data.Count)
	assert.Equal(t, "Bistro", body.Data.Restaurants[0].Name)
}

func TestReservationLifecycleEndpoints(t *testing.T) {
	env := newTestEnv(t)

	create := fmt.Sprintf(`{"restaurantId":%d,"start":"2026-08-31T18:00:00Z","end":"2026-08-31T20:00:00Z"}`, env.rest.ID)
	w := env.do(t, http.MethodPost, "/reservations", create)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data ReservationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.ID
	require.NotZero(t, id)

	// The only table is taken; an overlapping booking by another eater would
	// conflict, but the same host overlapping themselves is also a 409.
	overlap := fmt.Sprintf(`{"restaurantId":%d,"start":"2026-08-31T19:00:00Z","end":"2026-08-31T21:00:00Z"}`, env.rest.ID)
	w = env.do(t, http.MethodPost, "/reservations", overlap)
	assert.Equal(t, http.StatusConflict, w.Code)

	var conflict struct {
		Code                     string `json:"code"`
		ConflictingEaterID       uint   `json:"conflictingEaterId"`
		ConflictingReservationID uint   `json:"conflictingReservationId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conflict))
	assert.Equal(t, "conflict", conflict.Code)
	assert.Equal(t, env.host.ID, conflict.ConflictingEaterID)
	assert.Equal(t, id, conflict.ConflictingReservationID)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/reservations/%d/qr", id), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/reservations/%d", id), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/reservations/%d", id), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/reservations/%d?include_inactive=true", id), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReservationEndpointsRejectNonParticipants(t *testing.T) {
	env := newTestEnv(t)

	create := fmt.Sprintf(`{"restaurantId":%d,"start":"2026-08-31T18:00:00Z","end":"2026-08-31T20:00:00Z"}`, env.rest.ID)
	w := env.do(t, http.MethodPost, "/reservations", create)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data ReservationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.ID

	stranger := &entity.Eater{Name: "Casey", Email: "casey@example.com", Role: "eater", IsActive: true}
	require.NoError(t, env.db.Create(stranger).Error)
	env.actingAs = stranger.ID

	// A non-participant cannot read, fetch the check-in code, or cancel.
	w = env.do(t, http.MethodGet, fmt.Sprintf("/reservations/%d", id), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = env.do(t, http.MethodGet, fmt.Sprintf("/reservations/%d/qr", id), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/reservations/%d", id), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The booking survived the stranger's delete.
	env.actingAs = env.host.ID
	w = env.do(t, http.MethodGet, fmt.Sprintf("/reservations/%d", id), "")
	assert.Equal(t, http.StatusOK, w.Code)
}
