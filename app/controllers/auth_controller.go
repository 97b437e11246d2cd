package controllers

import (
	"net/http"

	"github.com/tiendahq/tienda/app/services"
	"github.com/tiendahq/tienda/pkg/bind"
	"github.com/tiendahq/tienda/pkg/middleware"
	"github.com/tiendahq/tienda/pkg/response"
)

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	IsAdmin  bool   `json:"isAdmin"`
}

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := c.service.Login(r.Context(), body.Username, body.Password, body.IsAdmin)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, result)
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body services.RegisterInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	profile, err := c.service.Register(r.Context(), body)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, profile)
}

func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	profile, err := c.service.GetProfile(r.Context(), principal)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, profile)
}
