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

type productInput struct {
	Code         string  `json:"code" validate:"required,max=20"`
	Description  string  `json:"description" validate:"required,max=200"`
	Price        float64 `json:"price" validate:"required,numeric,gte=0"`
	Stock        int     `json:"stock" validate:"integer,gte=0"`
	CategoryCode string  `json:"category_code" validate:"nullable,max=20"`
}

type ProductController struct {
	repo *repositories.ProductRepository
}

func NewProductController() *ProductController {
	return &ProductController{repo: repositories.NewProductRepository()}
}

func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.repo.All()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list products")
		return
	}
	response.Success(w, products)
}

func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	product, err := c.repo.Find(chi.URLParam(r, "code"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load product")
		return
	}
	response.Success(w, product)
}

func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var body productInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product := models.Product{
		Code:         body.Code,
		Description:  body.Description,
		Price:        body.Price,
		Stock:        body.Stock,
		CategoryCode: body.CategoryCode,
	}
	if err := c.repo.Create(&product); err != nil {
		response.Conflict(w, "product already exists")
		return
	}
	response.Created(w, product)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	product, err := c.repo.Find(chi.URLParam(r, "code"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load product")
		return
	}

	var body productInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product.Description = body.Description
	product.Price = body.Price
	product.Stock = body.Stock
	product.CategoryCode = body.CategoryCode
	if err := c.repo.Update(&product); err != nil {
		response.Error(w, http.StatusInternalServerError, "could not update product")
		return
	}
	response.Success(w, product)
}

func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	affected, err := c.repo.Delete(chi.URLParam(r, "code"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not delete product")
		return
	}
	if affected == 0 {
		response.NotFound(w)
		return
	}
	response.Success(w, map[string]string{"status": "deleted"})
}
