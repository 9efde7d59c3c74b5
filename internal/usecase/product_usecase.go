package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	imageRepo   repo.ProductImageRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, imageRepo repo.ProductImageRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo, imageRepo: imageRepo}
}

type CreateProductInput struct {
	CategoryID  *int64
	Name        string
	Description string
	Price       *float64
	SKU         string
	Stock       *int64
}

type UpdateProductInput struct {
	CategoryID  *int64
	Name        *string
	Description *string
	Price       *float64
	SKU         *string
	Stock       *int64
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "sku is required")
	}
	if in.Price == nil || *in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	p := model.Product{
		CategoryID:  in.CategoryID,
		Name:        name,
		Description: in.Description,
		Price:       *in.Price,
		SKU:         sku,
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
		}
		p.Stock = *in.Stock
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, fromRepoError(err, "product")
	}
	return created, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, fromRepoError(err, "product")
	}
	return p, nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, in UpdateProductInput) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, fromRepoError(err, "product")
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "name is required")
		}
		p.Name = name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
		}
		p.Price = *in.Price
	}
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if sku == "" {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "sku is required")
		}
		p.SKU = sku
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
		}
		p.Stock = *in.Stock
	}
	if in.CategoryID != nil {
		p.CategoryID = in.CategoryID
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		return model.Product{}, fromRepoError(err, "product")
	}
	return p, nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, id int64) error {
	if err := u.productRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "product")
	}
	return nil
}

// ---- 商品画像 ----

type CreateProductImageInput struct {
	ImageURL string
	AltText  string
}

type UpdateProductImageInput struct {
	ImageURL *string
	AltText  *string
}

func (u *ProductUsecase) AddImage(ctx context.Context, productID int64, in CreateProductImageInput) (model.ProductImage, error) {
	url := strings.TrimSpace(in.ImageURL)
	if url == "" {
		return model.ProductImage{}, NewHTTPError(http.StatusBadRequest, "image_url is required")
	}

	// 商品の存在確認（FK違反でも落ちるが、先に404を返す）
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		return model.ProductImage{}, fromRepoError(err, "product")
	}

	img, err := u.imageRepo.Create(ctx, model.ProductImage{
		ProductID: productID,
		ImageURL:  url,
		AltText:   in.AltText,
	})
	if err != nil {
		return model.ProductImage{}, fromRepoError(err, "product image")
	}
	return img, nil
}

func (u *ProductUsecase) ListImages(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		return []model.ProductImage{}, fromRepoError(err, "product")
	}
	images, err := u.imageRepo.ListByProductID(ctx, productID)
	if err != nil {
		return []model.ProductImage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return images, nil
}

func (u *ProductUsecase) UpdateImage(ctx context.Context, imageID int64, in UpdateProductImageInput) (model.ProductImage, error) {
	img, err := u.imageRepo.FindByID(ctx, imageID)
	if err != nil {
		return model.ProductImage{}, fromRepoError(err, "product image")
	}

	if in.ImageURL != nil {
		url := strings.TrimSpace(*in.ImageURL)
		if url == "" {
			return model.ProductImage{}, NewHTTPError(http.StatusBadRequest, "image_url is required")
		}
		img.ImageURL = url
	}
	if in.AltText != nil {
		img.AltText = *in.AltText
	}

	if err := u.imageRepo.Update(ctx, img); err != nil {
		return model.ProductImage{}, fromRepoError(err, "product image")
	}
	return img, nil
}

func (u *ProductUsecase) DeleteImage(ctx context.Context, imageID int64) error {
	if err := u.imageRepo.Delete(ctx, imageID); err != nil {
		return fromRepoError(err, "product image")
	}
	return nil
}
