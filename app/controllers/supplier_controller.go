package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/app/repositories"
	"github.com/tiendahq/tienda/pkg/bind"
	"github.com/tiendahq/tienda/pkg/response"
	"gorm.io/gorm"
)

type supplierInput struct {
	TaxID     string `json:"tax_id" validate:"required,max=13"`
	Name      string `json:"name" validate:"required,max=120"`
	Telephone string `json:"telephone" validate:"nullable,max=20"`
	Email     string `json:"email" validate:"nullable,email"`
}

type SupplierController struct {
	repo *repositories.SupplierRepository
}

func NewSupplierController() *SupplierController {
	return &SupplierController{repo: repositories.NewSupplierRepository()}
}

func (c *SupplierController) Index(w http.ResponseWriter, r *http.Request) {
	suppliers, err := c.repo.All()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list suppliers")
		return
	}
	response.Success(w, suppliers)
}

func (c *SupplierController) Show(w http.ResponseWriter, r *http.Request) {
	supplier, err := c.repo.Find(chi.URLParam(r, "taxID"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load supplier")
		return
	}
	response.Success(w, supplier)
}

func (c *SupplierController) Store(w http.ResponseWriter, r *http.Request) {
	var body supplierInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	supplier := models.Supplier{
		TaxID:     body.TaxID,
		Name:      body.Name,
		Telephone: body.Telephone,
		Email:     body.Email,
	}
	if err := c.repo.Create(&supplier); err != nil {
		response.Conflict(w, "supplier already exists")
		return
	}
	response.Created(w, supplier)
}

func (c *SupplierController) Update(w http.ResponseWriter, r *http.Request) {
	supplier, err := c.repo.Find(chi.URLParam(r, "taxID"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load supplier")
		return
	}

	var body supplierInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	supplier.Name = body.Name
	supplier.Telephone = body.Telephone
	supplier.Email = body.Email
	if err := c.repo.Update(&supplier); err != nil {
		response.Error(w, http.StatusInternalServerError, "could not update supplier")
		return
	}
	response.Success(w, supplier)
}

func (c *SupplierController) Destroy(w http.ResponseWriter, r *http.Request) {
	affected, err := c.repo.Delete(chi.URLParam(r, "taxID"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not delete supplier")
		return
	}
	if affected == 0 {
		response.NotFound(w)
		return
	}
	response.Success(w, map[string]string{"status": "deleted"})
}
