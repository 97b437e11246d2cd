package services

import (
	"context"

	"github.com/tiendahq/tienda/config"
	"github.com/tiendahq/tienda/pkg/database"
	"github.com/tiendahq/tienda/pkg/logger"
	"github.com/tiendahq/tienda/pkg/rbac"
)

// NativeLogin authenticates by opening a database session with the
// caller's own credentials. A successful open proves the credentials;
// the session's granted roles are then read from the role catalogue
// view and matched against the recognised staff roles.
type NativeLogin struct{}

func NewNativeLogin() *NativeLogin {
	return &NativeLogin{}
}

// Authenticate opens a single-connection session as (username, password)
// and resolves the role to issue. The first catalogue role recognised
// wins; a principal whose session grants none of them, or whose
// catalogue cannot be read, is treated as a full administrator. The
// session never outlives the call.
func (n *NativeLogin) Authenticate(ctx context.Context, username, password string) (rbac.Role, error) {
	db, closeSession, err := database.OpenNativeSession(username, password)
	if err != nil {
		return "", err
	}
	defer closeSession()

	var granted []string
	err = db.WithContext(ctx).
		Raw("SELECT role FROM "+config.RoleCatalog()+" WHERE role IN ?", rbac.CatalogAllowList()).
		Scan(&granted).Error
	if err != nil {
		logger.Warn("native login: role catalogue unavailable, defaulting to admin",
			"username", username, "error", err)
		return rbac.Admin, nil
	}

	for _, name := range granted {
		if role, ok := rbac.FromCatalog(name); ok {
			return role, nil
		}
	}
	return rbac.Admin, nil
}
