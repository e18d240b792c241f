package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus -> daftar menu, bisa difilter ?category=coffee
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	category := c.Query("category")

	query := mc.DB.Order("id")
	if category != "" && category != models.CategoryAll {
		query = query.Where("category = ?", category)
	}

	var menus []models.MenuItem
	if err := query.Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

func (mc *MenuController) GetMenuByID(c *gin.Context) {
	var menu models.MenuItem
	if err := mc.DB.First(&menu, "id = ?", c.Param("menu_id")).Error; err != nil {
		respondLookupError(c, err, ErrMenuItemNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}
