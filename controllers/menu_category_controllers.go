package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/utils"
	"gorm.io/gorm"
)

type MenuCategoryController struct {
	DB *gorm.DB
}

func NewMenuCategoryController(db *gorm.DB) *MenuCategoryController {
	return &MenuCategoryController{DB: db}
}

// GetAllCategories -> "all" diikuti kategori unik sesuai urutan menu
func (mcc *MenuCategoryController) GetAllCategories(c *gin.Context) {
	var menus []models.MenuItem
	if err := mcc.DB.Select("id", "category").Order("id").Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	categories := []string{models.CategoryAll}
	seen := map[string]bool{models.CategoryAll: true}
	for _, m := range menus {
		if seen[m.Category] {
			continue
		}
		seen[m.Category] = true
		categories = append(categories, m.Category)
	}
	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}
