// Package routes wires controllers onto the HTTP router with their
// access guards.
package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/tiendahq/tienda/app/controllers"
	"github.com/tiendahq/tienda/app/services"
	"github.com/tiendahq/tienda/pkg/database"
	"github.com/tiendahq/tienda/pkg/middleware"
	"github.com/tiendahq/tienda/pkg/rbac"
)

// RegisterAPI mounts the /api route tree. Guards follow the role model:
// an unguarded route is public, staff routes list the roles allowed,
// and cart routes additionally pin clients to their own cart inside the
// controller.
func RegisterAPI(r chi.Router) {
	proc := services.NewStoredProcedures()
	cartService := services.NewCartService(database.Public, database.Private, proc)
	authService := services.NewAuthService(database.Public, services.NewNativeLogin(), cartService)
	orderService := services.NewPurchaseOrderService(database.Private, proc)

	auth := controllers.NewAuthController(authService)
	cart := controllers.NewCartController(cartService)
	orders := controllers.NewPurchaseOrderController(orderService)
	products := controllers.NewProductController()
	categories := controllers.NewCategoryController()
	warehouses := controllers.NewWarehouseController()
	suppliers := controllers.NewSupplierController()
	clients := controllers.NewClientController()
	invoices := controllers.NewInvoiceController()

	r.Route("/api", func(api chi.Router) {
		api.Post("/login", auth.Login)
		api.Post("/register", auth.Register)

		api.Get("/products", products.Index)
		api.Get("/products/{code}", products.Show)
		api.Get("/categories", categories.Index)

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.Auth)

			protected.Get("/profile", auth.Profile)

			protected.Route("/cart/{identification}", func(c chi.Router) {
				c.Get("/", cart.Get)
				c.Post("/add", cart.AddItem)
				c.Delete("/remove/{productCode}", cart.RemoveItem)
				c.Post("/checkout", cart.Checkout)
			})

			protected.Route("/purchase-orders", func(po chi.Router) {
				po.With(rbac.HasRole(rbac.Admin, rbac.Purchasing)).Get("/", orders.List)
				po.With(rbac.HasRole(rbac.Admin, rbac.Purchasing)).Get("/{code}", orders.Get)
				po.With(rbac.HasRole(rbac.Admin, rbac.Purchasing)).Post("/", orders.Create)
				po.With(rbac.HasRole(rbac.Admin, rbac.Purchasing, rbac.WarehouseKeeper)).
					Patch("/{code}/receive", orders.Receive)
				po.With(rbac.HasRole(rbac.Admin, rbac.Purchasing)).Delete("/{code}", orders.Delete)
			})

			protected.With(rbac.HasRole(rbac.Admin)).Post("/products", products.Store)
			protected.With(rbac.HasRole(rbac.Admin)).Put("/products/{code}", products.Update)
			protected.With(rbac.HasRole(rbac.Admin)).Delete("/products/{code}", products.Destroy)

			protected.With(rbac.HasRole(rbac.Admin)).Post("/categories", categories.Store)
			protected.With(rbac.HasRole(rbac.Admin)).Put("/categories/{code}", categories.Update)
			protected.With(rbac.HasRole(rbac.Admin)).Delete("/categories/{code}", categories.Destroy)

			protected.Route("/warehouses", func(wh chi.Router) {
				wh.With(rbac.HasRole(rbac.Admin, rbac.WarehouseKeeper)).Get("/", warehouses.Index)
				wh.With(rbac.HasRole(rbac.Admin)).Post("/", warehouses.Store)
				wh.With(rbac.HasRole(rbac.Admin)).Put("/{code}", warehouses.Update)
				wh.With(rbac.HasRole(rbac.Admin)).Delete("/{code}", warehouses.Destroy)
			})

			protected.Route("/suppliers", func(sp chi.Router) {
				sp.With(rbac.HasRole(rbac.Admin, rbac.Purchasing)).Get("/", suppliers.Index)
				sp.With(rbac.HasRole(rbac.Admin, rbac.Purchasing)).Get("/{taxID}", suppliers.Show)
				sp.With(rbac.HasRole(rbac.Admin)).Post("/", suppliers.Store)
				sp.With(rbac.HasRole(rbac.Admin)).Put("/{taxID}", suppliers.Update)
				sp.With(rbac.HasRole(rbac.Admin)).Delete("/{taxID}", suppliers.Destroy)
			})

			protected.Route("/clients", func(cl chi.Router) {
				cl.With(rbac.HasRole(rbac.Admin, rbac.Sales, rbac.Marketing)).Get("/", clients.Index)
				cl.With(rbac.HasRole(rbac.Admin, rbac.Sales, rbac.Client)).
					Get("/{identification}", clients.Show)
				cl.With(rbac.HasRole(rbac.Admin, rbac.Sales)).Put("/{identification}", clients.Update)
				cl.With(rbac.HasRole(rbac.Admin)).Delete("/{identification}", clients.Destroy)
			})

			protected.Route("/invoices", func(inv chi.Router) {
				inv.With(rbac.HasRole(rbac.Admin, rbac.Sales)).Get("/", invoices.Index)
				inv.With(rbac.HasRole(rbac.Admin, rbac.Sales)).Get("/{code}", invoices.Show)
				inv.With(rbac.HasRole(rbac.Admin)).Delete("/{code}", invoices.Destroy)
			})
		})
	})
}
