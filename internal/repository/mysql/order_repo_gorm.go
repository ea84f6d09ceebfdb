package mysql

import (
	"errors"

	"catering-service/internal/domain"
	"catering-service/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(order *domain.Order) error {
	return r.db.Create(order).Error
}

// FindByID returns nil, nil when no order exists; callers map that to
// their own not-found error.
func (r *orderRepo) FindByID(id string) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.First(&o, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByDate(date string) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Where("date = ?", date).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) Update(order *domain.Order) error {
	// Select("*") forces zero values through; Updates alone would skip a
	// cleared discount or an unshared flag.
	result := r.db.Model(&domain.Order{}).Where("order_id = ?", order.OrderID).
		Select("*").Omit("order_id", "created_at").Updates(order)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *orderRepo) Delete(id string) error {
	result := r.db.Delete(&domain.Order{}, "order_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
