package repositories

import (
	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/pkg/database"
	"github.com/tiendahq/tienda/pkg/orm"
)

// SupplierRepository handles database operations for Supplier on the
// private pool.
type SupplierRepository struct{}

func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{}
}

func (r *SupplierRepository) Find(taxID string) (models.Supplier, error) {
	var supplier models.Supplier
	err := orm.On(database.Private).Model(&models.Supplier{}).
		Where("tax_id = ?", taxID).First(&supplier)
	return supplier, err
}

func (r *SupplierRepository) Create(supplier *models.Supplier) error {
	return orm.On(database.Private).Create(supplier)
}

func (r *SupplierRepository) Update(supplier *models.Supplier) error {
	return orm.On(database.Private).Save(supplier)
}

func (r *SupplierRepository) Delete(taxID string) (int64, error) {
	return orm.On(database.Private).Where("tax_id = ?", taxID).Delete(&models.Supplier{})
}

func (r *SupplierRepository) All() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := orm.On(database.Private).Model(&models.Supplier{}).
		Order("name").Get(&suppliers)
	return suppliers, err
}
