package seeders

import (
	"github.com/tiendahq/tienda/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func init() {
	Register("products", PoolPublic, SeedProducts)
	Register("categories", PoolPrivate, SeedCategories)
	Register("warehouses", PoolPrivate, SeedWarehouses)
	Register("suppliers", PoolPrivate, SeedSuppliers)
}

// SeedProducts inserts a small demo catalogue. Existing codes are left
// untouched so reseeding is safe.
func SeedProducts(db *gorm.DB) error {
	products := []models.Product{
		{Code: "P001", Description: "Rice 1kg", Price: 1.50, Stock: 200, CategoryCode: "C01"},
		{Code: "P002", Description: "Sugar 1kg", Price: 1.20, Stock: 150, CategoryCode: "C01"},
		{Code: "P003", Description: "Cooking oil 1L", Price: 3.80, Stock: 80, CategoryCode: "C01"},
		{Code: "P004", Description: "Laundry soap", Price: 0.90, Stock: 300, CategoryCode: "C02"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}

func SeedCategories(db *gorm.DB) error {
	categories := []models.Category{
		{Code: "C01", Name: "Groceries"},
		{Code: "C02", Name: "Cleaning"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error
}

func SeedWarehouses(db *gorm.DB) error {
	warehouses := []models.Warehouse{
		{Code: "W01", Name: "Central", Address: "Av. Principal 100"},
		{Code: "W02", Name: "North", Address: "Calle Norte 25"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&warehouses).Error
}

func SeedSuppliers(db *gorm.DB) error {
	suppliers := []models.Supplier{
		{TaxID: "1790012345001", Name: "Distribuidora Andina", Telephone: "022555100", Email: "ventas@andina.example"},
		{TaxID: "1790098765001", Name: "Importadora del Sur", Telephone: "022555200", Email: "contacto@delsur.example"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&suppliers).Error
}
