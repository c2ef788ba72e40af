package models

import "time"

// Item categories. The unit-cost table in internal/report keys off these.
const (
	CategoryMeat      = "meat"
	CategoryProduce   = "produce"
	CategoryDairy     = "dairy"
	CategoryDryGoods  = "dry-goods"
	CategoryBeverages = "beverages"
	CategoryOils      = "oils"
)

var Categories = []string{
	CategoryMeat,
	CategoryProduce,
	CategoryDairy,
	CategoryDryGoods,
	CategoryBeverages,
	CategoryOils,
}

// InventoryItem is a stock-tracked item owned by an admin tenant.
// Status and PercentRemaining are derived fields: they are recomputed from
// CurrentStock/MinStock immediately before every write, never set on their own.
type InventoryItem struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	CurrentStock     float64   `json:"currentStock"`
	MinStock         float64   `json:"minStock"`
	Unit             string    `json:"unit"`
	Status           string    `json:"status"`
	PercentRemaining float64   `json:"percentRemaining"`
	LastUpdated      time.Time `json:"lastUpdated"`
	CreatedBy        string    `json:"createdBy"`
	CreatedByName    string    `json:"createdByName"`
	Version          int       `json:"-"`
}
