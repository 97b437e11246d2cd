package services

import (
	"github.com/tiendahq/tienda/pkg/metrics"
	"gorm.io/gorm"
)

// Procedures is the narrow port to the billing/receiving stored
// procedures. The procedures are opaque external collaborators: the
// invoicing one reads the cart, computes subtotal/tax/total and writes
// the invoice row; the receiving one performs the multi-table stock
// updates for a delivered order. None of that arithmetic is ever
// reimplemented on this side of the port.
type Procedures interface {
	// RegisterInvoice invoices the cart on the given private-pool
	// transaction handle.
	RegisterInvoice(tx *gorm.DB, cartCode int64, billingIdentification, paymentMethod string) error

	// ReceiveOrder transitions the order to received. Runs on a plain
	// connection: the procedure manages its own durability internally.
	ReceiveOrder(db *gorm.DB, orderCode int64) error
}

// StoredProcedures invokes the real engine procedures.
type StoredProcedures struct{}

func NewStoredProcedures() *StoredProcedures { return &StoredProcedures{} }

func (StoredProcedures) RegisterInvoice(tx *gorm.DB, cartCode int64, billingIdentification, paymentMethod string) error {
	err := tx.Exec("CALL sp_register_invoice(?, ?, ?)", cartCode, billingIdentification, paymentMethod).Error
	metrics.RecordProcedure("sp_register_invoice", err)
	return err
}

func (StoredProcedures) ReceiveOrder(db *gorm.DB, orderCode int64) error {
	err := db.Exec("CALL sp_receive_merchandise(?)", orderCode).Error
	metrics.RecordProcedure("sp_receive_merchandise", err)
	return err
}
