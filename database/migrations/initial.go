package migrations

import (
	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_clients_table", migration.PoolPublic, &CreateClientsTable{})
	migration.Register("20260101000001_create_users_table", migration.PoolPublic, &CreateUsersTable{})
	migration.Register("20260101000002_create_products_table", migration.PoolPublic, &CreateProductsTable{})
	migration.Register("20260101000003_create_carts_table", migration.PoolPublic, &CreateCartsTable{})

	migration.Register("20260101000100_create_categories_table", migration.PoolPrivate, &CreateCategoriesTable{})
	migration.Register("20260101000101_create_warehouses_table", migration.PoolPrivate, &CreateWarehousesTable{})
	migration.Register("20260101000102_create_suppliers_table", migration.PoolPrivate, &CreateSuppliersTable{})
	migration.Register("20260101000103_create_purchase_orders_table", migration.PoolPrivate, &CreatePurchaseOrdersTable{})
	migration.Register("20260101000104_create_invoices_table", migration.PoolPrivate, &CreateInvoicesTable{})
}

// -------- public pool --------

type CreateClientsTable struct{}

func (m *CreateClientsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Client{})
}

func (m *CreateClientsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("clients")
}

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

type CreateCartsTable struct{}

func (m *CreateCartsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Cart{}, &models.CartLine{})
}

func (m *CreateCartsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("cart_lines", "carts")
}

// -------- private pool --------

type CreateCategoriesTable struct{}

func (m *CreateCategoriesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{})
}

func (m *CreateCategoriesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("categories")
}

type CreateWarehousesTable struct{}

func (m *CreateWarehousesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Warehouse{})
}

func (m *CreateWarehousesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("warehouses")
}

type CreateSuppliersTable struct{}

func (m *CreateSuppliersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Supplier{})
}

func (m *CreateSuppliersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("suppliers")
}

type CreatePurchaseOrdersTable struct{}

func (m *CreatePurchaseOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.PurchaseOrder{}, &models.PurchaseOrderLine{})
}

func (m *CreatePurchaseOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("purchase_order_lines", "purchase_orders")
}

type CreateInvoicesTable struct{}

func (m *CreateInvoicesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Invoice{})
}

func (m *CreateInvoicesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("invoices")
}
