package models

import "time"

// Purchase order lifecycle states. String-valued in storage, closed set
// in logic.
const (
	OrderAwaiting = "AWAITING"
	OrderReceived = "RECEIVED"
)

// Supplier is a goods provider, keyed by tax ID. Lives on the private pool.
type Supplier struct {
	TaxID     string `gorm:"primaryKey;size:13" json:"tax_id"`
	Name      string `gorm:"size:255;not null"  json:"name"`
	Telephone string `gorm:"size:20"            json:"telephone"`
	Email     string `gorm:"size:255"           json:"email"`
}

func (Supplier) TableName() string { return "suppliers" }

// PurchaseOrder is a restocking order header. Codes are allocated
// max(existing)+1 inside the same transaction that inserts the header,
// so they are strictly increasing and never reused. Lives on the private
// pool.
type PurchaseOrder struct {
	Code          int64     `gorm:"primaryKey"         json:"code"`
	SupplierTaxID string    `gorm:"size:13;not null"   json:"supplier_tax_id"`
	DeliveryDate  time.Time `json:"delivery_date"`
	Status        string    `gorm:"size:20;not null"   json:"status"`
}

func (PurchaseOrder) TableName() string { return "purchase_orders" }

// PurchaseOrderLine is one product entry in a purchase order. Natural key
// (order_code, product_code). Product existence is enforced by the
// engine's foreign keys, not by the orchestration layer.
type PurchaseOrderLine struct {
	OrderCode   int64   `gorm:"primaryKey;autoIncrement:false" json:"order_code"`
	ProductCode string  `gorm:"primaryKey;size:20"             json:"product_code"`
	Quantity    int     `gorm:"not null"                       json:"quantity"`
	UnitCost    float64 `gorm:"not null"                       json:"unit_cost"`
}

func (PurchaseOrderLine) TableName() string { return "purchase_order_lines" }

// Invoice is created exclusively by the invoicing stored procedure; the
// application never constructs an invoice row directly, which keeps the
// procedure the sole authority for subtotal/tax/total arithmetic. Lives
// on the private pool.
type Invoice struct {
	Code                 int64     `gorm:"primaryKey"       json:"code"`
	ClientIdentification string    `gorm:"size:13;not null" json:"client_identification"`
	IssuedAt             time.Time `json:"issued_at"`
	PaymentMethod        string    `gorm:"size:20"          json:"payment_method"`
	Subtotal             float64   `json:"subtotal"`
	Tax                  float64   `json:"tax"`
	Total                float64   `json:"total"`
}

func (Invoice) TableName() string { return "invoices" }
