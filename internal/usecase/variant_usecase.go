package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type VariantUsecase struct {
	variantRepo repo.ProductVariantRepository
	sizeRepo    repo.SizeRepository
}

// DI
func NewVariantUsecase(variantRepo repo.ProductVariantRepository, sizeRepo repo.SizeRepository) *VariantUsecase {
	return &VariantUsecase{variantRepo: variantRepo, sizeRepo: sizeRepo}
}

type CreateVariantInput struct {
	ProductID int64
	SizeID    *int64
	Color     string
	SKU       string
	Price     *float64
	Stock     *int64
}

type UpdateVariantInput struct {
	SizeID *int64
	Color  *string
	SKU    *string
	Price  *float64
	Stock  *int64
}

func (u *VariantUsecase) CreateVariant(ctx context.Context, in CreateVariantInput) (model.ProductVariant, error) {
	if in.ProductID <= 0 {
		return model.ProductVariant{}, NewHTTPError(http.StatusBadRequest, "product_id is required")
	}
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		return model.ProductVariant{}, NewHTTPError(http.StatusBadRequest, "sku is required")
	}
	if in.Price == nil || *in.Price < 0 {
		return model.ProductVariant{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	v := model.ProductVariant{
		ProductID: in.ProductID,
		SizeID:    in.SizeID,
		Color:     in.Color,
		SKU:       sku,
		Price:     *in.Price,
	}
	if in.Stock != nil {
		v.Stock = *in.Stock
	}

	created, err := u.variantRepo.Create(ctx, v)
	if err != nil {
		return model.ProductVariant{}, fromRepoError(err, "product variant")
	}
	return created, nil
}

func (u *VariantUsecase) GetVariant(ctx context.Context, id int64) (model.ProductVariant, error) {
	v, err := u.variantRepo.FindByID(ctx, id)
	if err != nil {
		return model.ProductVariant{}, fromRepoError(err, "product variant")
	}
	return v, nil
}

func (u *VariantUsecase) ListVariants(ctx context.Context) ([]model.ProductVariant, error) {
	variants, err := u.variantRepo.List(ctx)
	if err != nil {
		return []model.ProductVariant{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return variants, nil
}

func (u *VariantUsecase) UpdateVariant(ctx context.Context, id int64, in UpdateVariantInput) (model.ProductVariant, error) {
	v, err := u.variantRepo.FindByID(ctx, id)
	if err != nil {
		return model.ProductVariant{}, fromRepoError(err, "product variant")
	}

	if in.SizeID != nil {
		v.SizeID = in.SizeID
	}
	if in.Color != nil {
		v.Color = *in.Color
	}
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if sku == "" {
			return model.ProductVariant{}, NewHTTPError(http.StatusBadRequest, "sku is required")
		}
		v.SKU = sku
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return model.ProductVariant{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
		}
		v.Price = *in.Price
	}
	if in.Stock != nil {
		v.Stock = *in.Stock
	}

	if err := u.variantRepo.Update(ctx, v); err != nil {
		return model.ProductVariant{}, fromRepoError(err, "product variant")
	}
	return v, nil
}

func (u *VariantUsecase) DeleteVariant(ctx context.Context, id int64) error {
	if err := u.variantRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "product variant")
	}
	return nil
}

// ---- サイズ ----

func (u *VariantUsecase) CreateSize(ctx context.Context, name string) (model.Size, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Size{}, NewHTTPError(http.StatusBadRequest, "size_name is required")
	}
	created, err := u.sizeRepo.Create(ctx, model.Size{SizeName: name})
	if err != nil {
		return model.Size{}, fromRepoError(err, "size")
	}
	return created, nil
}

func (u *VariantUsecase) GetSize(ctx context.Context, id int64) (model.Size, error) {
	s, err := u.sizeRepo.FindByID(ctx, id)
	if err != nil {
		return model.Size{}, fromRepoError(err, "size")
	}
	return s, nil
}

func (u *VariantUsecase) ListSizes(ctx context.Context) ([]model.Size, error) {
	sizes, err := u.sizeRepo.List(ctx)
	if err != nil {
		return []model.Size{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return sizes, nil
}

func (u *VariantUsecase) UpdateSize(ctx context.Context, id int64, name *string) (model.Size, error) {
	s, err := u.sizeRepo.FindByID(ctx, id)
	if err != nil {
		return model.Size{}, fromRepoError(err, "size")
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return model.Size{}, NewHTTPError(http.StatusBadRequest, "size_name is required")
		}
		s.SizeName = trimmed
	}
	if err := u.sizeRepo.Update(ctx, s); err != nil {
		return model.Size{}, fromRepoError(err, "size")
	}
	return s, nil
}

func (u *VariantUsecase) DeleteSize(ctx context.Context, id int64) error {
	if err := u.sizeRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "size")
	}
	return nil
}
