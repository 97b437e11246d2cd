package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tiendahq/tienda/app/repositories"
	"github.com/tiendahq/tienda/pkg/bind"
	"github.com/tiendahq/tienda/pkg/response"
	"gorm.io/gorm"
)

type clientInput struct {
	Name      string `json:"name" validate:"required,max=120"`
	Telephone string `json:"telephone" validate:"nullable,max=20"`
	Email     string `json:"email" validate:"required,email"`
}

// ClientController manages client records. Creation happens through
// registration; this controller covers the staff-facing listing and
// maintenance operations.
type ClientController struct {
	repo *repositories.ClientRepository
}

func NewClientController() *ClientController {
	return &ClientController{repo: repositories.NewClientRepository()}
}

func (c *ClientController) Index(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	clients, pagination, err := c.repo.All(page, limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list clients")
		return
	}
	response.Paginated(w, clients, pagination)
}

func (c *ClientController) Show(w http.ResponseWriter, r *http.Request) {
	client, err := c.repo.Find(chi.URLParam(r, "identification"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load client")
		return
	}
	response.Success(w, client)
}

func (c *ClientController) Update(w http.ResponseWriter, r *http.Request) {
	client, err := c.repo.Find(chi.URLParam(r, "identification"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load client")
		return
	}

	var body clientInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	client.Name = body.Name
	client.Telephone = body.Telephone
	client.Email = body.Email
	if err := c.repo.Update(&client); err != nil {
		response.Error(w, http.StatusInternalServerError, "could not update client")
		return
	}
	response.Success(w, client)
}

func (c *ClientController) Destroy(w http.ResponseWriter, r *http.Request) {
	affected, err := c.repo.Delete(chi.URLParam(r, "identification"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not delete client")
		return
	}
	if affected == 0 {
		response.NotFound(w)
		return
	}
	response.Success(w, map[string]string{"status": "deleted"})
}
