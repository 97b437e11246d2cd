package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/pkg/apperr"
	"gorm.io/gorm"
)

func newCartFixture(t *testing.T, proc *fakeProcedures) *CartService {
	t.Helper()
	public := newPublicDB(t)
	private := newPrivateDB(t)

	require.NoError(t, public.Create(&models.Client{
		Identification: "0912345678", Name: "Maria", Email: "maria@example.com",
	}).Error)
	require.NoError(t, public.Create(&models.Product{
		Code: "P001", Description: "Rice 1kg", Price: 1.50, Stock: 100,
	}).Error)
	require.NoError(t, public.Create(&models.Cart{
		Code: 1, ClientIdentification: "0912345678", UpdatedAt: time.Now(),
	}).Error)

	return NewCartService(public, private, proc)
}

func TestAddItemTwiceSumsQuantity(t *testing.T) {
	svc := newCartFixture(t, &fakeProcedures{})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "0912345678", "P001", 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "0912345678", "P001", 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1, "same product must stay on one line")
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, "Rice 1kg", cart.Items[0].Description)
}

func TestRemoveItemAbsentIsNoOp(t *testing.T) {
	svc := newCartFixture(t, &fakeProcedures{})

	cart, err := svc.RemoveItem(context.Background(), "0912345678", "P404")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRemoveItem(t *testing.T) {
	svc := newCartFixture(t, &fakeProcedures{})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "0912345678", "P001", 2)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "0912345678", "P001")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestGetNoCart(t *testing.T) {
	svc := newCartFixture(t, &fakeProcedures{})

	_, err := svc.Get(context.Background(), "0800000000")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestCheckoutDelegatesToProcedure(t *testing.T) {
	proc := &fakeProcedures{
		registerFn: func(tx *gorm.DB, cartCode int64, billing, method string) error {
			return tx.Create(&models.Invoice{
				Code:                 1,
				ClientIdentification: billing,
				IssuedAt:             time.Now(),
				PaymentMethod:        method,
				Subtotal:             3.0,
				Tax:                  0.36,
				Total:                3.36,
			}).Error
		},
	}
	svc := newCartFixture(t, proc)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "0912345678", "P001", 2)
	require.NoError(t, err)

	require.NoError(t, svc.Checkout(ctx, "0912345678", "0912345678", "CASH"))
	assert.Equal(t, 1, proc.registerCalls)

	var count int64
	require.NoError(t, svc.private.Model(&models.Invoice{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCheckoutEmptyCartStillInvokesProcedure(t *testing.T) {
	proc := &fakeProcedures{}
	svc := newCartFixture(t, proc)

	require.NoError(t, svc.Checkout(context.Background(), "0912345678", "0912345678", "CASH"))
	assert.Equal(t, 1, proc.registerCalls,
		"emptiness is the procedure's call, not the orchestrator's")
}

func TestCheckoutProcedureFailureRollsBack(t *testing.T) {
	proc := &fakeProcedures{
		registerFn: func(tx *gorm.DB, cartCode int64, billing, method string) error {
			// Write something, then fail: nothing may survive.
			if err := tx.Create(&models.Invoice{Code: 99, ClientIdentification: billing}).Error; err != nil {
				return err
			}
			return errors.New("ORA-20001: insufficient stock")
		},
	}
	svc := newCartFixture(t, proc)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "0912345678", "P001", 2)
	require.NoError(t, err)

	err = svc.Checkout(ctx, "0912345678", "0912345678", "CARD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInternal))
	assert.Contains(t, err.Error(), "insufficient stock")

	var invoices int64
	require.NoError(t, svc.private.Model(&models.Invoice{}).Count(&invoices).Error)
	assert.Zero(t, invoices, "failed checkout must leave no invoice row")

	// The public-side cart is untouched by a private-side failure.
	cart, err := svc.Get(ctx, "0912345678")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCreateForClientAllocatesSequentialCodes(t *testing.T) {
	svc := newCartFixture(t, &fakeProcedures{})
	ctx := context.Background()

	// Fixture already holds cart 1.
	code, err := svc.CreateForClient(ctx, "0800000001")
	require.NoError(t, err)
	assert.Equal(t, int64(2), code)

	code, err = svc.CreateForClient(ctx, "0800000002")
	require.NoError(t, err)
	assert.Equal(t, int64(3), code)
}
