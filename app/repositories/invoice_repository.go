package repositories

import (
	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/pkg/apperr"
	"github.com/tiendahq/tienda/pkg/database"
	"github.com/tiendahq/tienda/pkg/orm"
)

// InvoiceRepository reads invoices from the private pool. Invoices are
// written only by the invoicing procedure; the repository exposes
// lookups and administrative deletion.
type InvoiceRepository struct{}

func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{}
}

func (r *InvoiceRepository) Find(code int64) (models.Invoice, error) {
	var invoice models.Invoice
	err := orm.On(database.Private).Model(&models.Invoice{}).
		Where("code = ?", code).First(&invoice)
	return invoice, err
}

func (r *InvoiceRepository) ByClient(identification string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := orm.On(database.Private).Model(&models.Invoice{}).
		Where("client_identification = ?", identification).
		Order("code DESC").Get(&invoices)
	return invoices, err
}

func (r *InvoiceRepository) All(page, limit int) ([]models.Invoice, orm.Pagination, error) {
	var invoices []models.Invoice
	pagination, err := orm.On(database.Private).Model(&models.Invoice{}).
		GetWithPagination(&invoices, page, limit)
	return invoices, pagination, err
}

// Delete removes an invoice and reports NotFound when no row matched.
func (r *InvoiceRepository) Delete(code int64) error {
	affected, err := orm.On(database.Private).Where("code = ?", code).Delete(&models.Invoice{})
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("invoice not found")
	}
	return nil
}
