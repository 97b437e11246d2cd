package services

import (
	"context"
	"errors"

	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/app/repositories"
	"github.com/tiendahq/tienda/config"
	"github.com/tiendahq/tienda/pkg/apperr"
	"github.com/tiendahq/tienda/pkg/auth"
	"github.com/tiendahq/tienda/pkg/database"
	"github.com/tiendahq/tienda/pkg/logger"
	"github.com/tiendahq/tienda/pkg/rbac"
	"gorm.io/gorm"
)

// NativeAuthenticator verifies credentials directly against the database
// engine and resolves the role granted to that native session.
type NativeAuthenticator interface {
	Authenticate(ctx context.Context, username, password string) (rbac.Role, error)
}

// RegisterInput is the registration payload. Identification doubles as
// the client's primary key and the billing identity on invoices.
type RegisterInput struct {
	Identification string `json:"identification" validate:"required,digits=10"`
	Name           string `json:"name" validate:"required,max=120"`
	Telephone      string `json:"telephone" validate:"nullable,max=20"`
	Email          string `json:"email" validate:"required,email"`
	Username       string `json:"username" validate:"required,alpha_dash,min=3,max=60"`
	Password       string `json:"password" validate:"required,min=6"`
}

// LoginUser is the identity summary embedded in a login response.
type LoginUser struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// LoginResult is what a successful login returns to the controller.
type LoginResult struct {
	AccessToken string    `json:"accessToken"`
	User        LoginUser `json:"user"`
}

// Profile is the authenticated identity view.
type Profile struct {
	Identification string `json:"identification"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
}

// AuthService resolves credentials against two authorities with a hard
// precedence rule: a matching client row always settles the outcome.
// Only credentials unknown to the clients table ever reach the native
// authenticator, so a client with a wrong password is rejected outright
// rather than retried against the engine.
type AuthService struct {
	public *gorm.DB
	users  *repositories.UserRepository
	native NativeAuthenticator
	carts  *CartService
}

func NewAuthService(public *gorm.DB, native NativeAuthenticator, carts *CartService) *AuthService {
	return &AuthService{
		public: public,
		users:  repositories.NewUserRepository(public),
		native: native,
		carts:  carts,
	}
}

// Login authenticates username/password. isAdmin short-circuits the
// client lookup and goes straight to the native authenticator.
// All failures collapse to the same Unauthorized; the caller never
// learns which check rejected them.
func (s *AuthService) Login(ctx context.Context, username, password string, isAdmin bool) (LoginResult, error) {
	if isAdmin {
		return s.nativeLogin(ctx, username, password)
	}

	user, err := s.users.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Unknown to the clients table: fall through to the engine.
		return s.nativeLogin(ctx, username, password)
	case err != nil:
		return LoginResult{}, apperr.Internal("could not look up user", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		if !config.LegacyPlainLogin() || !auth.CheckLegacyPassword(user.Password, password) {
			return LoginResult{}, apperr.Unauthorized("invalid credentials")
		}
		logger.Warn("login accepted via legacy plaintext password, rehash pending",
			"username", username)
	}

	token, err := auth.GenerateToken(auth.Principal{
		Subject:  user.Identification,
		Username: user.Username,
		Role:     string(rbac.Client),
	})
	if err != nil {
		return LoginResult{}, apperr.Internal("could not issue token", err)
	}
	return LoginResult{
		AccessToken: token,
		User:        LoginUser{Name: s.clientName(ctx, user), Role: string(rbac.Client)},
	}, nil
}

// clientName resolves the display name for a login response, falling
// back to the username when the client row is missing.
func (s *AuthService) clientName(ctx context.Context, user models.User) string {
	var client models.Client
	err := s.public.WithContext(ctx).
		Where("identification = ?", user.Identification).First(&client).Error
	if err != nil || client.Name == "" {
		return user.Username
	}
	return client.Name
}

func (s *AuthService) nativeLogin(ctx context.Context, username, password string) (LoginResult, error) {
	role, err := s.native.Authenticate(ctx, username, password)
	if err != nil {
		return LoginResult{}, apperr.Unauthorized("invalid credentials", err)
	}

	token, err := auth.GenerateToken(auth.Principal{
		Subject:  auth.AdminSubject,
		Username: username,
		Role:     string(role),
	})
	if err != nil {
		return LoginResult{}, apperr.Internal("could not issue token", err)
	}
	return LoginResult{
		AccessToken: token,
		User:        LoginUser{Name: username, Role: string(role)},
	}, nil
}

// Register creates the client row, the user row, and the client's cart.
// Client and user are written in one public-pool transaction; the cart
// is created afterwards on a best-effort basis. A cart failure is
// logged and swallowed so a registered client is never left unable to
// log in; the cart is recreated lazily on first use.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (Profile, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return Profile{}, apperr.Internal("could not hash password", err)
	}

	err = database.Transaction(ctx, s.public, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("username = ? OR identification = ?", in.Username, in.Identification).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict("username or identification already registered")
		}

		client := models.Client{
			Identification: in.Identification,
			Name:           in.Name,
			Telephone:      in.Telephone,
			Email:          in.Email,
		}
		if err := tx.Where(models.Client{Identification: in.Identification}).
			FirstOrCreate(&client).Error; err != nil {
			return err
		}

		return tx.Create(&models.User{
			Identification: in.Identification,
			Username:       in.Username,
			Password:       hash,
		}).Error
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) || errors.Is(err, apperr.ErrResourceExhausted) {
			return Profile{}, err
		}
		return Profile{}, apperr.Internal("could not register user", err)
	}

	if _, err := s.carts.CreateForClient(ctx, in.Identification); err != nil {
		logger.Warn("register: cart creation failed, will retry on first use",
			"identification", in.Identification, "error", err)
	}

	return Profile{
		Identification: in.Identification,
		Username:       in.Username,
		Name:           in.Name,
		Email:          in.Email,
		Role:           string(rbac.Client),
	}, nil
}

// GetProfile resolves the authenticated principal to a profile. Native
// principals carry a sentinel subject and no client row; they get a
// synthetic profile built from the token alone.
func (s *AuthService) GetProfile(ctx context.Context, p auth.Principal) (Profile, error) {
	if p.Subject == auth.AdminSubject {
		return Profile{
			Identification: auth.AdminSubject,
			Username:       p.Username,
			Name:           p.Username,
			Role:           p.Role,
		}, nil
	}

	var row struct {
		Identification string
		Username       string
		Name           string
		Email          string
	}
	err := s.public.WithContext(ctx).Raw(`
		SELECT u.identification, u.username, c.name, c.email
		FROM users u
		LEFT JOIN clients c ON c.identification = u.identification
		WHERE u.identification = ?`, p.Subject).Scan(&row).Error
	if err != nil {
		return Profile{}, apperr.Internal("could not load profile", err)
	}
	if row.Username == "" {
		return Profile{}, apperr.NotFound("profile not found")
	}

	return Profile{
		Identification: row.Identification,
		Username:       row.Username,
		Name:           row.Name,
		Email:          row.Email,
		Role:           p.Role,
	}, nil
}
