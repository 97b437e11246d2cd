package repositories

import (
	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/pkg/database"
	"github.com/tiendahq/tienda/pkg/orm"
)

// WarehouseRepository handles database operations for Warehouse on the
// private pool.
type WarehouseRepository struct{}

func NewWarehouseRepository() *WarehouseRepository {
	return &WarehouseRepository{}
}

func (r *WarehouseRepository) Find(code string) (models.Warehouse, error) {
	var warehouse models.Warehouse
	err := orm.On(database.Private).Model(&models.Warehouse{}).
		Where("code = ?", code).First(&warehouse)
	return warehouse, err
}

func (r *WarehouseRepository) Create(warehouse *models.Warehouse) error {
	return orm.On(database.Private).Create(warehouse)
}

func (r *WarehouseRepository) Update(warehouse *models.Warehouse) error {
	return orm.On(database.Private).Save(warehouse)
}

func (r *WarehouseRepository) Delete(code string) (int64, error) {
	return orm.On(database.Private).Where("code = ?", code).Delete(&models.Warehouse{})
}

func (r *WarehouseRepository) All() ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	err := orm.On(database.Private).Model(&models.Warehouse{}).
		Order("code").Get(&warehouses)
	return warehouses, err
}
