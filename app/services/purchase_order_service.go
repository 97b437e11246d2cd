package services

import (
	"context"
	"errors"
	"time"

	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/pkg/apperr"
	"github.com/tiendahq/tienda/pkg/database"
	"github.com/tiendahq/tienda/pkg/logger"
	"gorm.io/gorm"
)

// OrderLineInput is one requested line of a new purchase order.
type OrderLineInput struct {
	ProductCode string  `json:"product_code" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,integer,gt=0"`
	UnitCost    float64 `json:"unit_cost" validate:"required,numeric,gte=0"`
}

// CreateOrderInput is the payload for creating a purchase order.
type CreateOrderInput struct {
	SupplierTaxID string           `json:"supplier_tax_id" validate:"required,max=13"`
	DeliveryDate  string           `json:"delivery_date" validate:"required,date"`
	Lines         []OrderLineInput `json:"lines"`
}

// OrderView is a purchase order joined with its supplier's name.
type OrderView struct {
	Code          int64     `json:"code"`
	SupplierTaxID string    `json:"supplier_tax_id"`
	SupplierName  string    `json:"supplier_name"`
	DeliveryDate  time.Time `json:"delivery_date"`
	Status        string    `json:"status"`
}

// PurchaseOrderService implements the replenishment workflow on the
// private pool. Order creation is fully transactional; reception is
// delegated wholesale to the stored procedure, which adjusts stock and
// flips the status itself.
type PurchaseOrderService struct {
	private *gorm.DB
	proc    Procedures
}

func NewPurchaseOrderService(private *gorm.DB, proc Procedures) *PurchaseOrderService {
	return &PurchaseOrderService{private: private, proc: proc}
}

// List returns all orders, newest first, with supplier names joined.
func (s *PurchaseOrderService) List(ctx context.Context) ([]OrderView, error) {
	var orders []OrderView
	err := s.private.WithContext(ctx).Raw(`
		SELECT o.code, o.supplier_tax_id, s.name AS supplier_name,
		       o.delivery_date, o.status
		FROM purchase_orders o
		LEFT JOIN suppliers s ON s.tax_id = o.supplier_tax_id
		ORDER BY o.code DESC`).Scan(&orders).Error
	if err != nil {
		return nil, apperr.Internal("could not list purchase orders", err)
	}
	return orders, nil
}

// Get returns one order with its lines.
func (s *PurchaseOrderService) Get(ctx context.Context, code int64) (models.PurchaseOrder, []models.PurchaseOrderLine, error) {
	var order models.PurchaseOrder
	err := s.private.WithContext(ctx).Where("code = ?", code).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PurchaseOrder{}, nil, apperr.NotFound("purchase order not found")
	}
	if err != nil {
		return models.PurchaseOrder{}, nil, apperr.Internal("could not load purchase order", err)
	}

	var lines []models.PurchaseOrderLine
	if err := s.private.WithContext(ctx).Where("order_code = ?", code).Find(&lines).Error; err != nil {
		return models.PurchaseOrder{}, nil, apperr.Internal("could not load order lines", err)
	}
	return order, lines, nil
}

// Create allocates the next order code and writes the header and every
// line inside one transaction. The code comes from max(code)+1 read in
// the same transaction, so concurrent creators get distinct consecutive
// codes. Any line failure rolls the whole order back.
func (s *PurchaseOrderService) Create(ctx context.Context, in CreateOrderInput) (int64, error) {
	delivery, err := time.Parse("2006-01-02", in.DeliveryDate)
	if err != nil {
		return 0, apperr.Conflict("invalid delivery date: " + in.DeliveryDate)
	}

	var code int64
	err = database.Transaction(ctx, s.private, func(tx *gorm.DB) error {
		if err := tx.Raw("SELECT COALESCE(MAX(code), 0) + 1 FROM purchase_orders").Scan(&code).Error; err != nil {
			return err
		}

		if err := tx.Create(&models.PurchaseOrder{
			Code:          code,
			SupplierTaxID: in.SupplierTaxID,
			DeliveryDate:  delivery,
			Status:        models.OrderAwaiting,
		}).Error; err != nil {
			return err
		}

		for _, line := range in.Lines {
			if err := tx.Create(&models.PurchaseOrderLine{
				OrderCode:   code,
				ProductCode: line.ProductCode,
				Quantity:    line.Quantity,
				UnitCost:    line.UnitCost,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperr.ErrResourceExhausted) {
			return 0, err
		}
		return 0, apperr.Internal("could not create purchase order", err)
	}
	return code, nil
}

// Receive hands the order to the reception procedure, which moves the
// received quantities into stock and marks the order received. The
// procedure manages its own transaction; no application transaction
// wraps the call.
func (s *PurchaseOrderService) Receive(ctx context.Context, code int64) error {
	var count int64
	if err := s.private.WithContext(ctx).Model(&models.PurchaseOrder{}).
		Where("code = ?", code).Count(&count).Error; err != nil {
		return apperr.Internal("could not look up purchase order", err)
	}
	if count == 0 {
		return apperr.NotFound("purchase order not found")
	}

	if err := s.proc.ReceiveOrder(s.private.WithContext(ctx), code); err != nil {
		logger.Error("purchase order reception failed", "order", code, "error", err)
		return apperr.Internal("reception failed: "+err.Error(), err)
	}
	return nil
}

// Delete removes an order's lines and header in one transaction. The
// delete is unconditional: lines first, then the header, and deleting
// an order that does not exist succeeds with nothing removed.
func (s *PurchaseOrderService) Delete(ctx context.Context, code int64) error {
	err := database.Transaction(ctx, s.private, func(tx *gorm.DB) error {
		if err := tx.Where("order_code = ?", code).Delete(&models.PurchaseOrderLine{}).Error; err != nil {
			return err
		}
		return tx.Where("code = ?", code).Delete(&models.PurchaseOrder{}).Error
	})
	if err != nil {
		return apperr.Internal("could not delete purchase order", err)
	}
	return nil
}
