package repositories

import (
	"github.com/tiendahq/tienda/app/models"
	"github.com/tiendahq/tienda/pkg/database"
	"github.com/tiendahq/tienda/pkg/orm"
)

// ClientRepository handles database operations for Client on the public pool.
type ClientRepository struct{}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

func (r *ClientRepository) Find(identification string) (models.Client, error) {
	var client models.Client
	err := orm.On(database.Public).Model(&models.Client{}).
		Where("identification = ?", identification).First(&client)
	return client, err
}

func (r *ClientRepository) Create(client *models.Client) error {
	return orm.On(database.Public).Create(client)
}

func (r *ClientRepository) Update(client *models.Client) error {
	return orm.On(database.Public).Save(client)
}

func (r *ClientRepository) Delete(identification string) (int64, error) {
	return orm.On(database.Public).
		Where("identification = ?", identification).
		Delete(&models.Client{})
}

func (r *ClientRepository) All(page, limit int) ([]models.Client, orm.Pagination, error) {
	var clients []models.Client
	pagination, err := orm.On(database.Public).Model(&models.Client{}).
		GetWithPagination(&clients, page, limit)
	return clients, pagination, err
}
