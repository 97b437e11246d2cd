package validate_test

import (
	"testing"

	"github.com/tiendahq/tienda/pkg/validate"
)

type registerInput struct {
	Identification string `json:"identification" validate:"required,digits=10"`
	Username       string `json:"username"       validate:"required,alpha_dash,min=2,max=50"`
	Email          string `json:"email"          validate:"required,email"`
	Password       string `json:"password"       validate:"required,min=8"`
	Telephone      string `json:"telephone"      validate:"nullable,digits=10"`
	Quantity       int    `json:"quantity"       validate:"required,gte=1,lte=1000"`
	PaymentMethod  string `json:"payment_method" validate:"required,in=CASH,CARD,TRANSFER"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registerInput{
		Identification: "0102030405",
		Username:       "maria_v",
		Email:          "maria@example.com",
		Password:       "secret123",
		Telephone:      "", // nullable — allowed to be empty
		Quantity:       2,
		PaymentMethod:  "CASH",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registerInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["identification"]; !ok {
		t.Error("expected identification to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Quantity int `json:"quantity" validate:"required,gte=1,lte=1000"`
	}
	if errs := validate.Struct(in{Quantity: -3}); !validate.HasErrors(errs) {
		t.Error("expected negative quantity to fail")
	}
	if errs := validate.Struct(in{Quantity: 25}); validate.HasErrors(errs) {
		t.Errorf("expected quantity 25 to pass, got: %v", errs)
	}
}

func TestInRuleKeepsMultiValueParams(t *testing.T) {
	type in struct {
		Method string `json:"method" validate:"required,in=CASH,CARD,TRANSFER,max=20"`
	}
	if errs := validate.Struct(in{Method: "BARTER"}); !validate.HasErrors(errs) {
		t.Error("expected invalid method to fail")
	}
	if errs := validate.Struct(in{Method: "CARD"}); validate.HasErrors(errs) {
		t.Errorf("expected CARD to pass: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Telephone string `json:"telephone" validate:"nullable,digits=10"`
	}
	if errs := validate.Struct(in{Telephone: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	if errs := validate.Struct(in{Telephone: "12ab"}); !validate.HasErrors(errs) {
		t.Error("expected non-digit telephone to fail")
	}
}

func TestDigitsRule(t *testing.T) {
	type in struct {
		ID string `json:"id" validate:"required,digits=10"`
	}
	if errs := validate.Struct(in{ID: "123"}); !validate.HasErrors(errs) {
		t.Error("expected short identification to fail")
	}
	if errs := validate.Struct(in{ID: "0102030405"}); validate.HasErrors(errs) {
		t.Errorf("expected 10-digit identification to pass: %v", errs)
	}
}

func TestDateRule(t *testing.T) {
	type in struct {
		DeliveryDate string `json:"delivery_date" validate:"required,date"`
	}
	if errs := validate.Struct(in{DeliveryDate: "not-a-date"}); !validate.HasErrors(errs) {
		t.Error("expected invalid date to fail")
	}
	if errs := validate.Struct(in{DeliveryDate: "2026-03-15"}); validate.HasErrors(errs) {
		t.Errorf("expected ISO date to pass: %v", errs)
	}
}
