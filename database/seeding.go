package database

import (
	"fmt"

	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/utils"
	"gorm.io/gorm"
)

// MockTables is the coffee-shop floor plan: a 3-column grid of twelve tables.
func MockTables() []models.Table {
	return []models.Table{
		{ID: 1, Number: 1, Capacity: 2, IsAvailable: true, Position: models.Position{X: 0, Y: 0}},
		{ID: 2, Number: 2, Capacity: 2, IsAvailable: false, Position: models.Position{X: 1, Y: 0}},
		{ID: 3, Number: 3, Capacity: 4, IsAvailable: true, Position: models.Position{X: 2, Y: 0}},
		{ID: 4, Number: 4, Capacity: 4, IsAvailable: true, Position: models.Position{X: 0, Y: 1}},
		{ID: 5, Number: 5, Capacity: 6, IsAvailable: false, Position: models.Position{X: 1, Y: 1}},
		{ID: 6, Number: 6, Capacity: 2, IsAvailable: true, Position: models.Position{X: 2, Y: 1}},
		{ID: 7, Number: 7, Capacity: 6, IsAvailable: true, Position: models.Position{X: 0, Y: 2}},
		{ID: 8, Number: 8, Capacity: 3, IsAvailable: true, Position: models.Position{X: 1, Y: 2}},
		{ID: 9, Number: 9, Capacity: 4, IsAvailable: false, Position: models.Position{X: 2, Y: 2}},
		{ID: 10, Number: 10, Capacity: 5, IsAvailable: true, Position: models.Position{X: 0, Y: 3}},
		{ID: 11, Number: 11, Capacity: 3, IsAvailable: true, Position: models.Position{X: 1, Y: 3}},
		{ID: 12, Number: 12, Capacity: 6, IsAvailable: true, Position: models.Position{X: 2, Y: 3}},
	}
}

// MockMenu is the menu shown on the ordering page.
func MockMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          1,
			Name:        "Espresso",
			Description: "Strong coffee brewed by forcing hot water through finely-ground coffee beans.",
			Price:       25000,
			ImageURL:    "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?ixlib=rb-4.0.3",
			Category:    models.CategoryCoffee,
		},
		{
			ID:          2,
			Name:        "Cappuccino",
			Description: "Equal parts espresso, steamed milk, and milk foam.",
			Price:       35000,
			ImageURL:    "https://images.unsplash.com/photo-1534778101976-62847782c213?ixlib=rb-4.0.3",
			Category:    models.CategoryCoffee,
		},
		{
			ID:          3,
			Name:        "Latte",
			Description: "Espresso with steamed milk and a light layer of foam.",
			Price:       35000,
			ImageURL:    "https://images.unsplash.com/photo-1570968915860-54d5c301fa9f?ixlib=rb-4.0.3",
			Category:    models.CategoryCoffee,
		},
		{
			ID:          4,
			Name:        "Green Tea",
			Description: "Freshly brewed green tea, served hot or cold.",
			Price:       28000,
			ImageURL:    "https://images.unsplash.com/photo-1556682851-2ded4aae60a2?ixlib=rb-4.0.3",
			Category:    models.CategoryNonCoffee,
		},
		{
			ID:          5,
			Name:        "Chocolate Croissant",
			Description: "Buttery, flaky pastry filled with rich chocolate.",
			Price:       22000,
			ImageURL:    "https://images.unsplash.com/photo-1608198093002-ad4e005484ec?ixlib=rb-4.0.3",
			Category:    models.CategoryPastry,
		},
		{
			ID:          6,
			Name:        "Chicken Sandwich",
			Description: "Grilled chicken with lettuce, tomato, and special sauce.",
			Price:       45000,
			ImageURL:    "https://images.unsplash.com/photo-1554433607-66b5efe9d304?ixlib=rb-4.0.3",
			Category:    models.CategoryFood,
		},
	}
}

// Seed inserts the mock floor plan and menu. Tables that already hold rows are
// left alone so a restart against MySQL does not duplicate data.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Table{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count tables: %w", err)
	}
	if count == 0 {
		tables := MockTables()
		if err := db.Create(&tables).Error; err != nil {
			return fmt.Errorf("seed tables: %w", err)
		}
		utils.InfoLogger.Printf("Seeded %d tables", len(tables))
	}

	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count menu items: %w", err)
	}
	if count == 0 {
		menu := MockMenu()
		if err := db.Create(&menu).Error; err != nil {
			return fmt.Errorf("seed menu: %w", err)
		}
		utils.InfoLogger.Printf("Seeded %d menu items", len(menu))
	}
	return nil
}
