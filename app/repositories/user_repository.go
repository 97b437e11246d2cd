package repositories

import (
	"context"

	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/pkg/orm"
	"gorm.io/gorm"
)

// UserRepository handles database operations for User. Unlike the
// catalogue repositories it is bound to an injected pool rather than
// the global one, because the auth service owns which pool credentials
// are resolved against.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername looks up a user by their login name.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := orm.On(r.db.WithContext(ctx)).Model(&models.User{}).
		Where("username = ?", username).First(&user)
	return user, err
}

// FindByIdentification looks up a user by their client identification.
func (r *UserRepository) FindByIdentification(ctx context.Context, identification string) (models.User, error) {
	var user models.User
	err := orm.On(r.db.WithContext(ctx)).Model(&models.User{}).
		Where("identification = ?", identification).First(&user)
	return user, err
}

// Create persists a new user record.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return orm.On(r.db.WithContext(ctx)).Create(user)
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return orm.On(r.db.WithContext(ctx)).Save(user)
}

// All returns all users with pagination.
func (r *UserRepository) All(ctx context.Context, page, limit int) ([]models.User, orm.Pagination, error) {
	var users []models.User
	pagination, err := orm.On(r.db.WithContext(ctx)).Model(&models.User{}).
		GetWithPagination(&users, page, limit)
	return users, pagination, err
}
