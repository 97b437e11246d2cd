package repositories

import (
	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/pkg/database"
	"github.com/tiendahq/tienda/pkg/orm"
)

// CategoryRepository handles database operations for Category on the
// private pool.
type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) Find(code string) (models.Category, error) {
	var category models.Category
	err := orm.On(database.Private).Model(&models.Category{}).
		Where("code = ?", code).First(&category)
	return category, err
}

func (r *CategoryRepository) Create(category *models.Category) error {
	return orm.On(database.Private).Create(category)
}

func (r *CategoryRepository) Update(category *models.Category) error {
	return orm.On(database.Private).Save(category)
}

func (r *CategoryRepository) Delete(code string) (int64, error) {
	return orm.On(database.Private).Where("code = ?", code).Delete(&models.Category{})
}

func (r *CategoryRepository) All() ([]models.Category, error) {
	var categories []models.Category
	err := orm.On(database.Private).Model(&models.Category{}).
		Order("name").Get(&categories)
	return categories, err
}
