package repository

import (
	"errors"

	"catering-service/internal/domain"
)

// ErrNotFound is returned by Update and Delete when no row matched.
// FindByID signals absence with nil, nil instead.
var ErrNotFound = errors.New("record not found")

type OrderRepository interface {
	Save(order *domain.Order) error
	FindByID(id string) (*domain.Order, error)
	FindAll() ([]domain.Order, error)
	FindByDate(date string) ([]domain.Order, error)
	Update(order *domain.Order) error
	Delete(id string) error
}
