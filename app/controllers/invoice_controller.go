package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tiendahq/tienda/app/repositories"
	"github.com/tiendahq/tienda/pkg/response"
	"gorm.io/gorm"
)

// InvoiceController exposes invoices read-only plus administrative
// deletion. Invoices are created exclusively by the checkout procedure.
type InvoiceController struct {
	repo *repositories.InvoiceRepository
}

func NewInvoiceController() *InvoiceController {
	return &InvoiceController{repo: repositories.NewInvoiceRepository()}
}

func (c *InvoiceController) Index(w http.ResponseWriter, r *http.Request) {
	if client := r.URL.Query().Get("client"); client != "" {
		invoices, err := c.repo.ByClient(client)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "could not list invoices")
			return
		}
		response.Success(w, invoices)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	invoices, pagination, err := c.repo.All(page, limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list invoices")
		return
	}
	response.Paginated(w, invoices, pagination)
}

func (c *InvoiceController) Show(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.ParseInt(chi.URLParam(r, "code"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid invoice code")
		return
	}

	invoice, err := c.repo.Find(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load invoice")
		return
	}
	response.Success(w, invoice)
}

func (c *InvoiceController) Destroy(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.ParseInt(chi.URLParam(r, "code"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid invoice code")
		return
	}

	if err := c.repo.Delete(code); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"status": "deleted"})
}
