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

// CategoryController manages the category catalogue on the private pool.
type CategoryController struct {
	repo *repositories.CategoryRepository
}

func NewCategoryController() *CategoryController {
	return &CategoryController{repo: repositories.NewCategoryRepository()}
}

func (c *CategoryController) Index(w http.ResponseWriter, r *http.Request) {
	categories, err := c.repo.All()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list categories")
		return
	}
	response.Success(w, categories)
}

func (c *CategoryController) Store(w http.ResponseWriter, r *http.Request) {
	var body models.Category
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.repo.Create(&body); err != nil {
		response.Conflict(w, "category already exists")
		return
	}
	response.Created(w, body)
}

func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	category, err := c.repo.Find(chi.URLParam(r, "code"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load category")
		return
	}

	var body models.Category
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	category.Name = body.Name
	if err := c.repo.Update(&category); err != nil {
		response.Error(w, http.StatusInternalServerError, "could not update category")
		return
	}
	response.Success(w, category)
}

func (c *CategoryController) Destroy(w http.ResponseWriter, r *http.Request) {
	affected, err := c.repo.Delete(chi.URLParam(r, "code"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not delete category")
		return
	}
	if affected == 0 {
		response.NotFound(w)
		return
	}
	response.Success(w, map[string]string{"status": "deleted"})
}

// WarehouseController manages warehouses on the private pool.
type WarehouseController struct {
	repo *repositories.WarehouseRepository
}

func NewWarehouseController() *WarehouseController {
	return &WarehouseController{repo: repositories.NewWarehouseRepository()}
}

func (c *WarehouseController) Index(w http.ResponseWriter, r *http.Request) {
	warehouses, err := c.repo.All()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list warehouses")
		return
	}
	response.Success(w, warehouses)
}

func (c *WarehouseController) Store(w http.ResponseWriter, r *http.Request) {
	var body models.Warehouse
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.repo.Create(&body); err != nil {
		response.Conflict(w, "warehouse already exists")
		return
	}
	response.Created(w, body)
}

func (c *WarehouseController) Update(w http.ResponseWriter, r *http.Request) {
	warehouse, err := c.repo.Find(chi.URLParam(r, "code"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load warehouse")
		return
	}

	var body models.Warehouse
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	warehouse.Name = body.Name
	warehouse.Address = body.Address
	if err := c.repo.Update(&warehouse); err != nil {
		response.Error(w, http.StatusInternalServerError, "could not update warehouse")
		return
	}
	response.Success(w, warehouse)
}

func (c *WarehouseController) Destroy(w http.ResponseWriter, r *http.Request) {
	affected, err := c.repo.Delete(chi.URLParam(r, "code"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not delete warehouse")
		return
	}
	if affected == 0 {
		response.NotFound(w)
		return
	}
	response.Success(w, map[string]string{"status": "deleted"})
}
