package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tiendahq/tienda/app/services"
	"github.com/tiendahq/tienda/pkg/bind"
	"github.com/tiendahq/tienda/pkg/response"
)

type PurchaseOrderController struct {
	service *services.PurchaseOrderService
}

func NewPurchaseOrderController(service *services.PurchaseOrderService) *PurchaseOrderController {
	return &PurchaseOrderController{service: service}
}

func orderCode(r *http.Request) (int64, bool) {
	code, err := strconv.ParseInt(chi.URLParam(r, "code"), 10, 64)
	return code, err == nil
}

func (c *PurchaseOrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.List(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, orders)
}

func (c *PurchaseOrderController) Get(w http.ResponseWriter, r *http.Request) {
	code, ok := orderCode(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid order code")
		return
	}

	order, lines, err := c.service.Get(r.Context(), code)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]interface{}{"order": order, "lines": lines})
}

func (c *PurchaseOrderController) Create(w http.ResponseWriter, r *http.Request) {
	var body services.CreateOrderInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	code, err := c.service.Create(r.Context(), body)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, map[string]int64{"code": code})
}

func (c *PurchaseOrderController) Receive(w http.ResponseWriter, r *http.Request) {
	code, ok := orderCode(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid order code")
		return
	}

	if err := c.service.Receive(r.Context(), code); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"status": "received"})
}

func (c *PurchaseOrderController) Delete(w http.ResponseWriter, r *http.Request) {
	code, ok := orderCode(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid order code")
		return
	}

	if err := c.service.Delete(r.Context(), code); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"status": "deleted"})
}
