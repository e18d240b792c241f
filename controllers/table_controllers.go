package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/reservation"
	"github.com/yeremiapane/coffee-shop/utils"
	"gorm.io/gorm"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// GetAllTables -> floor plan lengkap dengan status ketersediaan
func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Order("number").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, "id = ?", tableID).Error; err != nil {
		respondLookupError(c, err, ErrTableNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// LookupTable resolves a table number typed by the guest or read from a QR code.
func (tc *TableController) LookupTable(c *gin.Context) {
	var count int64
	if err := tc.DB.Model(&models.Table{}).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	invalid := &CustomError{fmt.Sprintf("%s (1-%d)", ErrInvalidTableNumber.Message, count)}
	number, err := strconv.Atoi(c.Query("number"))
	if err != nil || number < 1 || int64(number) > count {
		utils.RespondError(c, http.StatusBadRequest, invalid)
		return
	}

	var table models.Table
	if err := tc.DB.Where("number = ?", number).First(&table).Error; err != nil {
		respondLookupError(c, err, ErrTableNotFound)
		return
	}

	source := c.DefaultQuery("source", "manual")
	utils.InfoLogger.Printf("Table %d selected via %s", table.Number, source)
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Table %d selected", table.Number), gin.H{
		"table":  table,
		"source": source,
	})
}

// GetAvailability -> saran meja tunggal atau kombinasi meja untuk jumlah tamu
func (tc *TableController) GetAvailability(c *gin.Context) {
	partySize, err := strconv.Atoi(c.Query("party_size"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidPartySize)
		return
	}

	var tables []models.Table
	if err := tc.DB.Order("number").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	suggestion := reservation.Plan(tables, partySize)
	message := suggestion.Message
	if message == "" {
		message = "Available tables"
	}
	utils.RespondJSON(c, http.StatusOK, message, suggestion)
}
