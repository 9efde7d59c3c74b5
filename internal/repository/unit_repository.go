package repository

import (
	"context"

	"app/internal/domain/model"
)

type UnitTypeRepository interface {
	Create(ctx context.Context, t model.UnitType) (model.UnitType, error)
	FindByID(ctx context.Context, id int64) (model.UnitType, error)
	List(ctx context.Context) ([]model.UnitType, error)
	Update(ctx context.Context, t model.UnitType) error
	Delete(ctx context.Context, id int64) error
}

type UnitRepository interface {
	Create(ctx context.Context, u model.Unit) (model.Unit, error)
	FindByID(ctx context.Context, id int64) (model.Unit, error)
	List(ctx context.Context) ([]model.Unit, error)
	Update(ctx context.Context, u model.Unit) error
	Delete(ctx context.Context, id int64) error
}

type ProductUnitRepository interface {
	Create(ctx context.Context, pu model.ProductUnit) (model.ProductUnit, error)
	FindByID(ctx context.Context, id int64) (model.ProductUnit, error)
	List(ctx context.Context) ([]model.ProductUnit, error)
	Update(ctx context.Context, pu model.ProductUnit) error
	Delete(ctx context.Context, id int64) error
}
