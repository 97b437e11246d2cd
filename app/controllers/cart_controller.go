package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tiendahq/tienda/app/services"
	"github.com/tiendahq/tienda/pkg/bind"
	"github.com/tiendahq/tienda/pkg/middleware"
	"github.com/tiendahq/tienda/pkg/rbac"
	"github.com/tiendahq/tienda/pkg/response"
)

type addItemInput struct {
	ProductCode string `json:"product_code" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,integer,gt=0"`
}

type checkoutInput struct {
	BillingIdentification string `json:"billing_identification" validate:"required,digits=10"`
	PaymentMethod         string `json:"payment_method" validate:"required,in=CASH,CARD,TRANSFER"`
}

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

// owner returns the cart owner's identification from the URL, after
// checking the principal may act on it: clients only on their own cart,
// staff on any.
func (c *CartController) owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	identification := chi.URLParam(r, "identification")

	principal, ok := middleware.PrincipalFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return "", false
	}
	if rbac.Role(principal.Role) == rbac.Client && principal.Subject != identification {
		response.Forbidden(w)
		return "", false
	}
	return identification, true
}

func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	identification, ok := c.owner(w, r)
	if !ok {
		return
	}

	cart, err := c.service.Get(r.Context(), identification)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, cart)
}

func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	identification, ok := c.owner(w, r)
	if !ok {
		return
	}

	var body addItemInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	cart, err := c.service.AddItem(r.Context(), identification, body.ProductCode, body.Quantity)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, cart)
}

func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	identification, ok := c.owner(w, r)
	if !ok {
		return
	}

	cart, err := c.service.RemoveItem(r.Context(), identification, chi.URLParam(r, "productCode"))
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, cart)
}

func (c *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	identification, ok := c.owner(w, r)
	if !ok {
		return
	}

	var body checkoutInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.service.Checkout(r.Context(), identification, body.BillingIdentification, body.PaymentMethod); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"status": "invoiced"})
}
