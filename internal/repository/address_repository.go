package repository

import (
	"context"

	"app/internal/domain/model"
)

type AddressRepository interface {
	Create(ctx context.Context, a model.Address) (model.Address, error)
	FindByID(ctx context.Context, id int64) (model.Address, error)
	List(ctx context.Context) ([]model.Address, error)
	Update(ctx context.Context, a model.Address) error
	Delete(ctx context.Context, id int64) error
}
