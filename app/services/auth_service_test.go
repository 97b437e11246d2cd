package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/pkg/apperr"
	"github.com/tiendahq/tienda/pkg/auth"
	"github.com/tiendahq/tienda/pkg/rbac"
)

func newAuthFixture(t *testing.T, native *fakeNative) (*AuthService, *fakeProcedures) {
	t.Helper()
	public := newPublicDB(t)
	private := newPrivateDB(t)
	proc := &fakeProcedures{}
	carts := NewCartService(public, private, proc)
	return NewAuthService(public, native, carts), proc
}

func seedUser(t *testing.T, svc *AuthService, identification, username, password string) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	require.NoError(t, svc.public.Create(&models.Client{
		Identification: identification,
		Name:           "Test Client",
		Email:          username + "@example.com",
	}).Error)
	require.NoError(t, svc.public.Create(&models.User{
		Identification: identification,
		Username:       username,
		Password:       hash,
	}).Error)
}

func TestLoginClient(t *testing.T) {
	native := &fakeNative{role: rbac.Admin}
	svc, _ := newAuthFixture(t, native)
	seedUser(t, svc, "0912345678", "maria", "s3cret!")

	result, err := svc.Login(context.Background(), "maria", "s3cret!", false)
	require.NoError(t, err)
	assert.Equal(t, string(rbac.Client), result.User.Role)
	assert.Equal(t, "Test Client", result.User.Name)
	assert.NotEmpty(t, result.AccessToken)

	p, err := auth.VerifyToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "0912345678", p.Subject)
	assert.Equal(t, "maria", p.Username)
	assert.Zero(t, native.calls, "client login must not touch the engine")
}

func TestLoginWrongPasswordNoNativeFallback(t *testing.T) {
	native := &fakeNative{role: rbac.Admin}
	svc, _ := newAuthFixture(t, native)
	seedUser(t, svc, "0912345678", "maria", "s3cret!")

	_, err := svc.Login(context.Background(), "maria", "wrong", false)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
	assert.Zero(t, native.calls,
		"a matching client row settles the outcome; no engine retry")
}

func TestLoginUnknownUserTriesNative(t *testing.T) {
	native := &fakeNative{role: rbac.Purchasing}
	svc, _ := newAuthFixture(t, native)

	result, err := svc.Login(context.Background(), "dba_compras", "pw", false)
	require.NoError(t, err)
	assert.Equal(t, 1, native.calls)
	assert.Equal(t, string(rbac.Purchasing), result.User.Role)
	assert.Equal(t, "dba_compras", result.User.Name)

	p, err := auth.VerifyToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, auth.AdminSubject, p.Subject)
}

func TestLoginAdminFlagSkipsClientLookup(t *testing.T) {
	native := &fakeNative{role: rbac.Admin}
	svc, _ := newAuthFixture(t, native)
	// Same username exists as a client; the flag must still go native.
	seedUser(t, svc, "0912345678", "maria", "s3cret!")

	result, err := svc.Login(context.Background(), "maria", "engine-pw", true)
	require.NoError(t, err)
	assert.Equal(t, 1, native.calls)
	assert.Equal(t, string(rbac.Admin), result.User.Role)
}

func TestLoginNativeFailureIsUnauthorized(t *testing.T) {
	native := &fakeNative{err: errors.New("ORA-01017")}
	svc, _ := newAuthFixture(t, native)

	_, err := svc.Login(context.Background(), "nobody", "pw", false)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}

func TestLoginLegacyPlaintextPassword(t *testing.T) {
	native := &fakeNative{}
	svc, _ := newAuthFixture(t, native)

	require.NoError(t, svc.public.Create(&models.Client{
		Identification: "0999999999", Name: "Legacy", Email: "legacy@example.com",
	}).Error)
	require.NoError(t, svc.public.Create(&models.User{
		Identification: "0999999999",
		Username:       "legacy",
		Password:       "plain-old-password", // pre-hashing row
	}).Error)

	result, err := svc.Login(context.Background(), "legacy", "plain-old-password", false)
	require.NoError(t, err)
	assert.Equal(t, string(rbac.Client), result.User.Role)
	assert.Equal(t, "Legacy", result.User.Name)
}

func TestRegisterCreatesUserClientAndCart(t *testing.T) {
	svc, _ := newAuthFixture(t, &fakeNative{})

	profile, err := svc.Register(context.Background(), RegisterInput{
		Identification: "0912345678",
		Name:           "Maria Perez",
		Email:          "maria@example.com",
		Username:       "maria",
		Password:       "s3cret!",
	})
	require.NoError(t, err)
	assert.Equal(t, string(rbac.Client), profile.Role)

	var cart models.Cart
	require.NoError(t, svc.public.
		Where("client_identification = ?", "0912345678").First(&cart).Error)
	assert.Equal(t, int64(1), cart.Code)

	// Password must be stored hashed.
	var user models.User
	require.NoError(t, svc.public.Where("username = ?", "maria").First(&user).Error)
	assert.NotEqual(t, "s3cret!", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "s3cret!"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthFixture(t, &fakeNative{})
	seedUser(t, svc, "0912345678", "maria", "s3cret!")

	_, err := svc.Register(context.Background(), RegisterInput{
		Identification: "0800000001",
		Name:           "Another",
		Email:          "other@example.com",
		Username:       "maria",
		Password:       "whatever",
	})
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestGetProfileNativePrincipal(t *testing.T) {
	svc, _ := newAuthFixture(t, &fakeNative{})

	profile, err := svc.GetProfile(context.Background(), auth.Principal{
		Subject: auth.AdminSubject, Username: "dba", Role: string(rbac.Admin),
	})
	require.NoError(t, err)
	assert.Equal(t, auth.AdminSubject, profile.Identification)
	assert.Equal(t, string(rbac.Admin), profile.Role)
}

func TestGetProfileClient(t *testing.T) {
	svc, _ := newAuthFixture(t, &fakeNative{})
	seedUser(t, svc, "0912345678", "maria", "s3cret!")

	profile, err := svc.GetProfile(context.Background(), auth.Principal{
		Subject: "0912345678", Username: "maria", Role: string(rbac.Client),
	})
	require.NoError(t, err)
	assert.Equal(t, "maria", profile.Username)
	assert.Equal(t, "maria@example.com", profile.Email)
}
