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

// CartLineView is a cart line joined with its product description and
// price from the public catalogue.
type CartLineView struct {
	ProductCode string  `json:"product_code"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// CartView is a client's cart with its joined lines.
type CartView struct {
	Code                 int64          `json:"code"`
	ClientIdentification string         `json:"client_identification"`
	Items                []CartLineView `json:"items"`
}

// CartService implements the cart and checkout workflow. Cart data lives
// on the public pool; invoicing happens on the private pool through the
// stored-procedure port. The two are never joined in one transaction:
// the cart may change between the read here and the procedure's own
// read, and checkout failure on the private pool leaves the public cart
// untouched.
type CartService struct {
	public  *gorm.DB
	private *gorm.DB
	proc    Procedures
}

func NewCartService(public, private *gorm.DB, proc Procedures) *CartService {
	return &CartService{public: public, private: private, proc: proc}
}

// Get loads the client's cart and its lines with product descriptions.
func (s *CartService) Get(ctx context.Context, identification string) (CartView, error) {
	cart, err := s.findCart(ctx, identification)
	if err != nil {
		return CartView{}, err
	}

	var items []CartLineView
	err = s.public.WithContext(ctx).Raw(`
		SELECT l.product_code, l.quantity, p.description, p.price
		FROM cart_lines l
		LEFT JOIN products p ON p.code = l.product_code
		WHERE l.cart_code = ?`, cart.Code).Scan(&items).Error
	if err != nil {
		return CartView{}, apperr.Internal("could not load cart", err)
	}

	return CartView{
		Code:                 cart.Code,
		ClientIdentification: cart.ClientIdentification,
		Items:                items,
	}, nil
}

// AddItem upserts a line by its natural key (cart_code, product_code):
// an existing line has its quantity incremented by qty, otherwise a new
// line is inserted. The cart's last-updated timestamp is stamped on
// every mutation.
func (s *CartService) AddItem(ctx context.Context, identification, productCode string, qty int) (CartView, error) {
	cart, err := s.findCart(ctx, identification)
	if err != nil {
		return CartView{}, err
	}

	err = database.Transaction(ctx, s.public, func(tx *gorm.DB) error {
		var line models.CartLine
		err := tx.Where("cart_code = ? AND product_code = ?", cart.Code, productCode).
			First(&line).Error

		switch {
		case err == nil:
			if err := tx.Model(&models.CartLine{}).
				Where("cart_code = ? AND product_code = ?", cart.Code, productCode).
				Update("quantity", gorm.Expr("quantity + ?", qty)).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.CartLine{
				CartCode:    cart.Code,
				ProductCode: productCode,
				Quantity:    qty,
			}).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return tx.Model(&models.Cart{}).Where("code = ?", cart.Code).
			Update("updated_at", time.Now()).Error
	})
	if err != nil {
		if errors.Is(err, apperr.ErrResourceExhausted) {
			return CartView{}, err
		}
		return CartView{}, apperr.Internal("could not add item to cart", err)
	}

	return s.Get(ctx, identification)
}

// RemoveItem deletes a line by its natural key. Removing a line that
// does not exist is a no-op, not an error.
func (s *CartService) RemoveItem(ctx context.Context, identification, productCode string) (CartView, error) {
	cart, err := s.findCart(ctx, identification)
	if err != nil {
		return CartView{}, err
	}

	err = database.Transaction(ctx, s.public, func(tx *gorm.DB) error {
		if err := tx.Where("cart_code = ? AND product_code = ?", cart.Code, productCode).
			Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("code = ?", cart.Code).
			Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return CartView{}, apperr.Internal("could not remove item from cart", err)
	}

	return s.Get(ctx, identification)
}

// Checkout invoices the client's cart. The cart is read from the public
// pool, then the invoicing procedure runs inside one private-pool
// transaction. The procedure is the sole authority on invoice creation:
// it reads the cart lines itself, computes the totals and writes the
// invoice row — even an empty cart is handed to it. Any procedure error
// rolls the private transaction back; no invoice row survives.
func (s *CartService) Checkout(ctx context.Context, identification, billingIdentification, paymentMethod string) error {
	cart, err := s.findCart(ctx, identification)
	if err != nil {
		return err
	}

	err = database.Transaction(ctx, s.private, func(tx *gorm.DB) error {
		return s.proc.RegisterInvoice(tx, cart.Code, billingIdentification, paymentMethod)
	})
	if err != nil {
		if errors.Is(err, apperr.ErrResourceExhausted) {
			return err
		}
		logger.Error("checkout: invoicing procedure failed",
			"cart", cart.Code, "client", identification, "error", err)
		// The procedure's message travels for diagnostics; never a stack.
		return apperr.Internal("checkout failed: "+err.Error(), err)
	}

	return nil
}

// CreateForClient allocates a new cart for a client inside one
// public-pool transaction. The max+1 read and the insert share the
// transaction so concurrent creators serialize on the engine's write
// lock.
func (s *CartService) CreateForClient(ctx context.Context, identification string) (int64, error) {
	var code int64
	err := database.Transaction(ctx, s.public, func(tx *gorm.DB) error {
		if err := tx.Raw("SELECT COALESCE(MAX(code), 0) + 1 FROM carts").Scan(&code).Error; err != nil {
			return err
		}
		return tx.Create(&models.Cart{
			Code:                 code,
			ClientIdentification: identification,
			UpdatedAt:            time.Now(),
		}).Error
	})
	if err != nil {
		return 0, apperr.Internal("could not create cart", err)
	}
	return code, nil
}

func (s *CartService) findCart(ctx context.Context, identification string) (models.Cart, error) {
	var cart models.Cart
	err := s.public.WithContext(ctx).
		Where("client_identification = ?", identification).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{}, apperr.NotFound("no active cart for client " + identification)
	}
	if err != nil {
		return models.Cart{}, apperr.Internal("could not load cart", err)
	}
	return cart, nil
}
