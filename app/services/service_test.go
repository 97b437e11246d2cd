package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/pkg/rbac"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// newTestDB opens a fresh in-memory database. MaxOpenConns is pinned to
// one so concurrent transactions serialize the way a real pool under
// contention would.
func newTestDB(t *testing.T, tables ...interface{}) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(tables...); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newPublicDB(t *testing.T) *gorm.DB {
	return newTestDB(t, &models.Client{}, &models.User{}, &models.Product{},
		&models.Cart{}, &models.CartLine{})
}

func newPrivateDB(t *testing.T) *gorm.DB {
	return newTestDB(t, &models.Supplier{}, &models.PurchaseOrder{},
		&models.PurchaseOrderLine{}, &models.Invoice{})
}

// fakeProcedures stands in for the stored-procedure port. Each call is
// counted; the configurable hooks let a test make the procedure write
// rows or fail.
type fakeProcedures struct {
	registerCalls int
	receiveCalls  int

	registerFn func(tx *gorm.DB, cartCode int64, billingIdentification, paymentMethod string) error
	receiveFn  func(db *gorm.DB, orderCode int64) error
}

func (f *fakeProcedures) RegisterInvoice(tx *gorm.DB, cartCode int64, billingIdentification, paymentMethod string) error {
	f.registerCalls++
	if f.registerFn != nil {
		return f.registerFn(tx, cartCode, billingIdentification, paymentMethod)
	}
	return nil
}

func (f *fakeProcedures) ReceiveOrder(db *gorm.DB, orderCode int64) error {
	f.receiveCalls++
	if f.receiveFn != nil {
		return f.receiveFn(db, orderCode)
	}
	return nil
}

// fakeNative stands in for the engine-credential authenticator.
type fakeNative struct {
	calls int
	role  rbac.Role
	err   error
}

func (f *fakeNative) Authenticate(_ context.Context, _, _ string) (rbac.Role, error) {
	f.calls++
	return f.role, f.err
}
