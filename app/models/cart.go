package models

import "time"

// Cart is a client's shopping cart, keyed by a generated numeric code.
// One cart per client; a cart code is never shared. Lives on the public
// pool. Checkout does not delete cart rows here — the invoicing procedure
// owns any cart bookkeeping.
type Cart struct {
	Code                 int64     `gorm:"primaryKey"                   json:"code"`
	ClientIdentification string    `gorm:"uniqueIndex;size:13;not null" json:"client_identification"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (Cart) TableName() string { return "carts" }

// CartLine is one product entry in a cart. Natural key
// (cart_code, product_code): at most one line per product per cart —
// repeated additions increment the quantity, never duplicate the line.
type CartLine struct {
	CartCode    int64  `gorm:"primaryKey;autoIncrement:false" json:"cart_code"`
	ProductCode string `gorm:"primaryKey;size:20"             json:"product_code"`
	Quantity    int    `gorm:"not null"                       json:"quantity"`
}

func (CartLine) TableName() string { return "cart_lines" }
