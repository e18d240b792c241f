package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeremiapane/coffee-shop/kds"
	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/reservation"
	"github.com/yeremiapane/coffee-shop/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

type createReservationRequest struct {
	Name      string `json:"name"`
	PartySize int    `json:"party_size"`
	TableIDs  []uint `json:"table_ids" binding:"required,min=1"`
}

// CreateReservation -> reservasi satu meja atau gabungan beberapa meja
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	seen := make(map[uint]bool, len(req.TableIDs))
	for _, id := range req.TableIDs {
		if seen[id] {
			utils.RespondError(c, http.StatusBadRequest, ErrDuplicateTable)
			return
		}
		seen[id] = true
	}

	res := models.Reservation{
		Code:      uuid.New().String(),
		Name:      req.Name,
		PartySize: reservation.ClampPartySize(req.PartySize),
		Status:    models.ReservationConfirmed,
	}

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		var tables []models.Table
		if err := tx.Where("id IN ?", req.TableIDs).Order("number").Find(&tables).Error; err != nil {
			return err
		}
		if len(tables) != len(req.TableIDs) {
			return ErrTableNotFound
		}
		for _, t := range tables {
			if !t.IsAvailable {
				return ErrTableUnavailable
			}
		}
		res.TotalCapacity = reservation.Seats(tables)
		if res.TotalCapacity < res.PartySize {
			return ErrNotEnoughSeats
		}

		result := tx.Model(&models.Table{}).
			Where("id IN ? AND is_available = ?", req.TableIDs, true).
			Update("is_available", false)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(req.TableIDs)) {
			return ErrTableUnavailable
		}

		for i := range tables {
			tables[i].IsAvailable = false
		}
		res.Tables = tables
		return tx.Create(&res).Error
	})
	if err != nil {
		var ce *CustomError
		switch {
		case errors.Is(err, ErrTableNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, ErrTableUnavailable):
			utils.RespondError(c, http.StatusConflict, err)
		case errors.As(err, &ce):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.ErrorLogger.Errorf("Failed to create reservation: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	rc.broadcastFloor()
	kds.BroadcastReservationCreated(res)
	kds.BroadcastStaffNotification(fmt.Sprintf("New reservation for %d guests at %d table(s)", res.PartySize, len(res.Tables)))

	utils.InfoLogger.Printf("Reservation %s created: party=%d tables=%v", res.Code, res.PartySize, req.TableIDs)
	utils.RespondJSON(c, http.StatusCreated, "Reservation confirmed", res)
}

func (rc *ReservationController) GetReservation(c *gin.Context) {
	var res models.Reservation
	if err := rc.DB.Preload("Tables").Where("code = ?", c.Param("code")).First(&res).Error; err != nil {
		respondLookupError(c, err, &CustomError{"Reservation not found"})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", res)
}

// CancelReservation -> batalkan reservasi dan kosongkan kembali mejanya
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	var res models.Reservation
	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Tables").Where("code = ?", c.Param("code")).First(&res).Error; err != nil {
			return err
		}
		if res.Status == models.ReservationCancelled {
			return ErrAlreadyCancelled
		}

		ids := make([]uint, 0, len(res.Tables))
		for i := range res.Tables {
			ids = append(ids, res.Tables[i].ID)
			res.Tables[i].IsAvailable = true
		}
		if len(ids) > 0 {
			if err := tx.Model(&models.Table{}).Where("id IN ?", ids).Update("is_available", true).Error; err != nil {
				return err
			}
		}

		res.Status = models.ReservationCancelled
		return tx.Model(&res).Update("status", res.Status).Error
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyCancelled) {
			utils.RespondError(c, http.StatusConflict, err)
			return
		}
		respondLookupError(c, err, &CustomError{"Reservation not found"})
		return
	}

	rc.broadcastFloor()
	kds.BroadcastReservationCancelled(res)

	utils.InfoLogger.Printf("Reservation %s cancelled", res.Code)
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", res)
}

func (rc *ReservationController) broadcastFloor() {
	var tables []models.Table
	if err := rc.DB.Order("number").Find(&tables).Error; err != nil {
		utils.ErrorLogger.Errorf("Failed to load tables for broadcast: %v", err)
		return
	}
	kds.BroadcastTableUpdate(tables)
}
