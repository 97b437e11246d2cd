package models

// Product represents a catalogue item. Lives on the public pool.
type Product struct {
	Code         string  `gorm:"primaryKey;size:20"     json:"code"`
	Description  string  `gorm:"size:255;not null"      json:"description"`
	Price        float64 `gorm:"not null;default:0"     json:"price"`
	Stock        int     `gorm:"not null;default:0"     json:"stock"`
	CategoryCode string  `gorm:"size:20;index"          json:"category_code"`
}

func (Product) TableName() string { return "products" }

// Category groups products. Lives on the private pool.
type Category struct {
	Code string `gorm:"primaryKey;size:20" json:"code"`
	Name string `gorm:"size:100;not null"  json:"name"`
}

func (Category) TableName() string { return "categories" }

// Warehouse is a physical stock location. Lives on the private pool.
type Warehouse struct {
	Code    string `gorm:"primaryKey;size:20" json:"code"`
	Name    string `gorm:"size:100;not null"  json:"name"`
	Address string `gorm:"size:255"           json:"address"`
}

func (Warehouse) TableName() string { return "warehouses" }
