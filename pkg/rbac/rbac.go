// Package rbac provides the role model and role-based access control
// middleware.
//
// Roles form a closed set and carry no hierarchy: an operation requiring
// sales denies admin unless admin is listed too. Each protected route
// enumerates its own accepted set with HasRole.
package rbac

import (
	"net/http"

	"github.com/tiendahq/tienda/pkg/middleware"
	"github.com/tiendahq/tienda/pkg/response"
)

// Role is one of the closed set of principal roles.
type Role string

const (
	Guest           Role = "guest"
	Client          Role = "client"
	Admin           Role = "admin"
	Sales           Role = "sales"
	Marketing       Role = "marketing"
	Purchasing      Role = "purchasing"
	WarehouseKeeper Role = "warehouse_keeper"
)

// Valid reports whether r belongs to the closed set.
func Valid(r Role) bool {
	switch r {
	case Guest, Client, Admin, Sales, Marketing, Purchasing, WarehouseKeeper:
		return true
	}
	return false
}

// catalogRoles maps engine role names (as returned by the session role
// catalog) to application roles. Only these names are consulted when
// resolving a database-native administrator; anything else degrades to
// Admin.
var catalogRoles = map[string]Role{
	"ROL_BODEGUERO": WarehouseKeeper,
	"ROL_VENTAS":    Sales,
	"ROL_MARKETING": Marketing,
	"ROL_COMPRAS":   Purchasing,
}

// CatalogAllowList returns the engine role names the role authority is
// permitted to consult, in a stable order suitable for an IN clause.
func CatalogAllowList() []string {
	return []string{"ROL_BODEGUERO", "ROL_VENTAS", "ROL_MARKETING", "ROL_COMPRAS"}
}

// FromCatalog maps an engine role name to its application role. ok is
// false when the name is not allow-listed.
func FromCatalog(name string) (Role, bool) {
	r, ok := catalogRoles[name]
	return r, ok
}

// Allow is the access decision function. A nil/empty required set means
// the operation is public. Otherwise the principal's role must be a member
// of the set; no role implies membership in another role's set.
func Allow(required []Role, principal Role) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if principal == r {
			return true
		}
	}
	return false
}

// HasRole returns middleware that allows access only to principals whose
// role is in the given set. Requires middleware.Auth to have run first; a
// request with no principal attached is denied outright.
func HasRole(roles ...Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := middleware.PrincipalFromCtx(r.Context())
			if !ok {
				response.Unauthorized(w)
				return
			}
			if !Allow(roles, Role(p.Role)) {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
