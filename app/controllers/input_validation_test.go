package controllers

import (
	"testing"

	"github.com/tiendahq/tienda/pkg/validate"
)

func TestLoginInputRequiresCredentials(t *testing.T) {
	errs := validate.Struct(&loginInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("empty login must not validate")
	}
	if _, ok := errs["username"]; !ok {
		t.Error("missing username must be reported")
	}
	if _, ok := errs["password"]; !ok {
		t.Error("missing password must be reported")
	}

	if errs := validate.Struct(&loginInput{Username: "maria", Password: "pw"}); len(errs) != 0 {
		t.Errorf("valid login rejected: %v", errs)
	}
}

func TestAddItemInputQuantityBounds(t *testing.T) {
	errs := validate.Struct(&addItemInput{ProductCode: "P001", Quantity: -5})
	if _, ok := errs["quantity"]; !ok {
		t.Error("negative quantity must be rejected")
	}

	errs = validate.Struct(&addItemInput{ProductCode: "P001", Quantity: 0})
	if _, ok := errs["quantity"]; !ok {
		t.Error("zero quantity must be rejected")
	}

	if errs := validate.Struct(&addItemInput{ProductCode: "P001", Quantity: 1}); len(errs) != 0 {
		t.Errorf("valid add-item rejected: %v", errs)
	}
}

func TestCheckoutInputPaymentMethod(t *testing.T) {
	in := checkoutInput{BillingIdentification: "0912345678", PaymentMethod: "BARTER"}
	errs := validate.Struct(&in)
	if _, ok := errs["payment_method"]; !ok {
		t.Error("unknown payment method must be rejected")
	}

	for _, method := range []string{"CASH", "CARD", "TRANSFER"} {
		in.PaymentMethod = method
		if errs := validate.Struct(&in); len(errs) != 0 {
			t.Errorf("payment method %s rejected: %v", method, errs)
		}
	}
}

func TestCheckoutInputBillingIdentification(t *testing.T) {
	in := checkoutInput{BillingIdentification: "12AB", PaymentMethod: "CASH"}
	errs := validate.Struct(&in)
	if _, ok := errs["billing_identification"]; !ok {
		t.Error("non-numeric billing identification must be rejected")
	}
}

func TestProductInputPriceAndStock(t *testing.T) {
	errs := validate.Struct(&productInput{Code: "P001", Description: "Rice", Price: -1})
	if _, ok := errs["price"]; !ok {
		t.Error("negative price must be rejected")
	}

	errs = validate.Struct(&productInput{Code: "P001", Description: "Rice", Price: 1.50, Stock: -3})
	if _, ok := errs["stock"]; !ok {
		t.Error("negative stock must be rejected")
	}

	if errs := validate.Struct(&productInput{Code: "P001", Description: "Rice", Price: 1.50, Stock: 10}); len(errs) != 0 {
		t.Errorf("valid product rejected: %v", errs)
	}
}
