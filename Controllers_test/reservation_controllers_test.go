package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yeremiapane/coffee-shop/controllers"
	"github.com/yeremiapane/coffee-shop/models"
)

func setupReservationRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	reservationCtrl := controllers.NewReservationController(db)
	router.POST("/reservations", reservationCtrl.CreateReservation)
	router.GET("/reservations/:code", reservationCtrl.GetReservation)
	router.DELETE("/reservations/:code", reservationCtrl.CancelReservation)
	return router
}

func tableAvailable(t *testing.T, db *gorm.DB, id uint) bool {
	t.Helper()
	var table models.Table
	require.NoError(t, db.First(&table, id).Error)
	return table.IsAvailable
}

func TestCreateAndCancelReservation(t *testing.T) {
	db := setupTestDB(t)
	router := setupReservationRouter(db)

	w := doRequest(t, router, "POST", "/reservations", map[string]interface{}{
		"name":       "Rina",
		"party_size": 10,
		"table_ids":  []uint{7, 10},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res models.Reservation
	env := decode(t, w, &res)
	assert.Equal(t, "Reservation confirmed", env.Message)
	assert.NotEmpty(t, res.Code)
	assert.Equal(t, 11, res.TotalCapacity)
	assert.Equal(t, models.ReservationConfirmed, res.Status)
	assert.Len(t, res.Tables, 2)
	assert.False(t, tableAvailable(t, db, 7))
	assert.False(t, tableAvailable(t, db, 10))

	w = doRequest(t, router, "GET", "/reservations/"+res.Code, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var fetched models.Reservation
	decode(t, w, &fetched)
	assert.Equal(t, "Rina", fetched.Name)
	assert.Len(t, fetched.Tables, 2)

	// The same table cannot be booked twice.
	w = doRequest(t, router, "POST", "/reservations", map[string]interface{}{
		"party_size": 2,
		"table_ids":  []uint{7},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "This table is already reserved", decode(t, w, nil).Message)

	w = doRequest(t, router, "DELETE", "/reservations/"+res.Code, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var cancelled models.Reservation
	decode(t, w, &cancelled)
	assert.Equal(t, models.ReservationCancelled, cancelled.Status)
	assert.True(t, tableAvailable(t, db, 7))
	assert.True(t, tableAvailable(t, db, 10))

	w = doRequest(t, router, "DELETE", "/reservations/"+res.Code, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateReservationRejected(t *testing.T) {
	db := setupTestDB(t)
	router := setupReservationRouter(db)

	tests := []struct {
		name    string
		body    map[string]interface{}
		code    int
		message string
	}{
		{
			name:    "table already taken",
			body:    map[string]interface{}{"party_size": 2, "table_ids": []uint{2}},
			code:    http.StatusConflict,
			message: "This table is already reserved",
		},
		{
			name:    "duplicate table",
			body:    map[string]interface{}{"party_size": 4, "table_ids": []uint{1, 1}},
			code:    http.StatusBadRequest,
			message: controllers.ErrDuplicateTable.Message,
		},
		{
			name:    "not enough seats",
			body:    map[string]interface{}{"party_size": 9, "table_ids": []uint{1, 6}},
			code:    http.StatusBadRequest,
			message: controllers.ErrNotEnoughSeats.Message,
		},
		{
			name:    "unknown table",
			body:    map[string]interface{}{"party_size": 2, "table_ids": []uint{1, 99}},
			code:    http.StatusNotFound,
			message: controllers.ErrTableNotFound.Message,
		},
		{
			name: "no tables",
			body: map[string]interface{}{"party_size": 2, "table_ids": []uint{}},
			code: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, "POST", "/reservations", tt.body)
			assert.Equal(t, tt.code, w.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, decode(t, w, nil).Message)
			}
		})
	}

	// A failed reservation leaves the floor untouched.
	assert.True(t, tableAvailable(t, db, 1))
	assert.True(t, tableAvailable(t, db, 6))

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Zero(t, count)
}

func TestReservationPartySizeClamped(t *testing.T) {
	router := setupReservationRouter(setupTestDB(t))

	w := doRequest(t, router, "POST", "/reservations", map[string]interface{}{
		"party_size": 0,
		"table_ids":  []uint{1},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var res models.Reservation
	decode(t, w, &res)
	assert.Equal(t, 1, res.PartySize)
}

func TestGetReservationNotFound(t *testing.T) {
	router := setupReservationRouter(setupTestDB(t))

	w := doRequest(t, router, "GET", "/reservations/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(t, router, "DELETE", "/reservations/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
