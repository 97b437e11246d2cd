package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/pkg/apperr"
	"gorm.io/gorm"
)

func newOrderFixture(t *testing.T, proc *fakeProcedures) *PurchaseOrderService {
	t.Helper()
	private := newPrivateDB(t)

	require.NoError(t, private.Create(&models.Supplier{
		TaxID: "1790012345001", Name: "Distribuidora Andina",
	}).Error)

	return NewPurchaseOrderService(private, proc)
}

func orderInput(lines ...OrderLineInput) CreateOrderInput {
	return CreateOrderInput{
		SupplierTaxID: "1790012345001",
		DeliveryDate:  "2026-09-15",
		Lines:         lines,
	}
}

func TestCreateOrder(t *testing.T) {
	svc := newOrderFixture(t, &fakeProcedures{})

	code, err := svc.Create(context.Background(), orderInput(
		OrderLineInput{ProductCode: "P001", Quantity: 10, UnitCost: 1.10},
		OrderLineInput{ProductCode: "P002", Quantity: 5, UnitCost: 0.95},
	))
	require.NoError(t, err)
	assert.Equal(t, int64(1), code)

	order, lines, err := svc.Get(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, models.OrderAwaiting, order.Status)
	assert.Len(t, lines, 2)
}

func TestCreateOrderConcurrentCodesAreDistinct(t *testing.T) {
	svc := newOrderFixture(t, &fakeProcedures{})

	const n = 8
	codes := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code, err := svc.Create(context.Background(), orderInput(
				OrderLineInput{ProductCode: "P001", Quantity: 1, UnitCost: 1},
			))
			if err != nil {
				t.Error(err)
				return
			}
			codes[i] = code
		}(i)
	}
	wg.Wait()

	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	for i, code := range codes {
		assert.Equal(t, int64(i+1), code, "codes must be distinct and consecutive")
	}
}

func TestCreateOrderLineFailureRollsBackHeader(t *testing.T) {
	svc := newOrderFixture(t, &fakeProcedures{})

	// Duplicate product in one order violates the line primary key.
	_, err := svc.Create(context.Background(), orderInput(
		OrderLineInput{ProductCode: "P001", Quantity: 1, UnitCost: 1},
		OrderLineInput{ProductCode: "P001", Quantity: 2, UnitCost: 1},
	))
	require.Error(t, err)

	var headers int64
	require.NoError(t, svc.private.Model(&models.PurchaseOrder{}).Count(&headers).Error)
	assert.Zero(t, headers, "failed line must roll back the header too")
}

func TestCreateOrderBadDate(t *testing.T) {
	svc := newOrderFixture(t, &fakeProcedures{})

	in := orderInput(OrderLineInput{ProductCode: "P001", Quantity: 1, UnitCost: 1})
	in.DeliveryDate = "15/09/2026"
	_, err := svc.Create(context.Background(), in)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestReceiveDelegatesToProcedure(t *testing.T) {
	proc := &fakeProcedures{
		receiveFn: func(db *gorm.DB, orderCode int64) error {
			return db.Model(&models.PurchaseOrder{}).
				Where("code = ?", orderCode).
				Update("status", models.OrderReceived).Error
		},
	}
	svc := newOrderFixture(t, proc)
	ctx := context.Background()

	code, err := svc.Create(ctx, orderInput(
		OrderLineInput{ProductCode: "P001", Quantity: 10, UnitCost: 1.10},
	))
	require.NoError(t, err)

	require.NoError(t, svc.Receive(ctx, code))
	assert.Equal(t, 1, proc.receiveCalls)

	order, _, err := svc.Get(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, models.OrderReceived, order.Status)
}

func TestReceiveUnknownOrder(t *testing.T) {
	proc := &fakeProcedures{}
	svc := newOrderFixture(t, proc)

	err := svc.Receive(context.Background(), 404)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Zero(t, proc.receiveCalls)
}

func TestReceiveProcedureFailure(t *testing.T) {
	proc := &fakeProcedures{
		receiveFn: func(db *gorm.DB, orderCode int64) error {
			return errors.New("ORA-20002: order already received")
		},
	}
	svc := newOrderFixture(t, proc)
	ctx := context.Background()

	code, err := svc.Create(ctx, orderInput(
		OrderLineInput{ProductCode: "P001", Quantity: 1, UnitCost: 1},
	))
	require.NoError(t, err)

	err = svc.Receive(ctx, code)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInternal))
	assert.Contains(t, err.Error(), "already received")
}

func TestDeleteOrderRemovesLines(t *testing.T) {
	svc := newOrderFixture(t, &fakeProcedures{})
	ctx := context.Background()

	code, err := svc.Create(ctx, orderInput(
		OrderLineInput{ProductCode: "P001", Quantity: 1, UnitCost: 1},
		OrderLineInput{ProductCode: "P002", Quantity: 2, UnitCost: 2},
	))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, code))

	var headers, lines int64
	require.NoError(t, svc.private.Model(&models.PurchaseOrder{}).Count(&headers).Error)
	require.NoError(t, svc.private.Model(&models.PurchaseOrderLine{}).Count(&lines).Error)
	assert.Zero(t, headers)
	assert.Zero(t, lines)
}

func TestDeleteNonexistentOrderSucceeds(t *testing.T) {
	svc := newOrderFixture(t, &fakeProcedures{})
	assert.NoError(t, svc.Delete(context.Background(), 404))
}

func TestListNewestFirst(t *testing.T) {
	svc := newOrderFixture(t, &fakeProcedures{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, orderInput(
			OrderLineInput{ProductCode: "P001", Quantity: 1, UnitCost: 1},
		))
		require.NoError(t, err)
	}

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, int64(3), orders[0].Code)
	assert.Equal(t, "Distribuidora Andina", orders[0].SupplierName)
}
