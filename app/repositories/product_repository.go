package repositories

import (
	"time"

	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/pkg/cache"
	"github.com/tiendahq/tienda/pkg/database"
	"github.com/tiendahq/tienda/pkg/orm"
)

const productListCacheKey = "products:all"

// ProductRepository handles database operations for Product on the
// public pool. The full listing is served through the cache; every
// write invalidates it.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Find(code string) (models.Product, error) {
	var product models.Product
	err := orm.On(database.Public).Model(&models.Product{}).
		Where("code = ?", code).First(&product)
	return product, err
}

// All returns the full catalogue, cached for a minute.
func (r *ProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	err := orm.On(database.Public).Model(&models.Product{}).
		Cache(productListCacheKey, time.Minute, &products)
	return products, err
}

func (r *ProductRepository) Create(product *models.Product) error {
	defer cache.Forget(productListCacheKey)
	return orm.On(database.Public).Create(product)
}

func (r *ProductRepository) Update(product *models.Product) error {
	defer cache.Forget(productListCacheKey)
	return orm.On(database.Public).Save(product)
}

func (r *ProductRepository) Delete(code string) (int64, error) {
	defer cache.Forget(productListCacheKey)
	return orm.On(database.Public).Where("code = ?", code).Delete(&models.Product{})
}
