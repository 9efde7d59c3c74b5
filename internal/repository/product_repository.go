package repository

import (
	"context"

	"app/internal/domain/model"
)

type ProductRepository interface {
	Create(ctx context.Context, p model.Product) (model.Product, error)
	// カテゴリ・画像・バリアントを載せて返す
	FindByID(ctx context.Context, id int64) (model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}

type ProductImageRepository interface {
	Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error)
	FindByID(ctx context.Context, id int64) (model.ProductImage, error)
	ListByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error)
	Update(ctx context.Context, img model.ProductImage) error
	Delete(ctx context.Context, id int64) error
}

type ProductVariantRepository interface {
	Create(ctx context.Context, v model.ProductVariant) (model.ProductVariant, error)
	FindByID(ctx context.Context, id int64) (model.ProductVariant, error)
	List(ctx context.Context) ([]model.ProductVariant, error)
	Update(ctx context.Context, v model.ProductVariant) error
	Delete(ctx context.Context, id int64) error
}

type SizeRepository interface {
	Create(ctx context.Context, s model.Size) (model.Size, error)
	FindByID(ctx context.Context, id int64) (model.Size, error)
	List(ctx context.Context) ([]model.Size, error)
	Update(ctx context.Context, s model.Size) error
	Delete(ctx context.Context, id int64) error
}
