package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

type CreateCategoryInput struct {
	CategoryName     string
	ParentCategoryID *int64
}

type UpdateCategoryInput struct {
	CategoryName     *string
	ParentCategoryID *int64
	// ParentCategoryID に明示的に null を渡したいとき true
	ClearParent bool
}

func (u *CategoryUsecase) CreateCategory(ctx context.Context, in CreateCategoryInput) (model.Category, error) {
	name := strings.TrimSpace(in.CategoryName)
	if name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "category_name is required")
	}

	created, err := u.categoryRepo.Create(ctx, model.Category{
		CategoryName:     name,
		ParentCategoryID: in.ParentCategoryID,
	})
	if err != nil {
		return model.Category{}, fromRepoError(err, "category")
	}
	return created, nil
}

// 親と子を1段載せて返す
func (u *CategoryUsecase) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	c, err := u.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return model.Category{}, fromRepoError(err, "category")
	}
	return c, nil
}

func (u *CategoryUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

func (u *CategoryUsecase) UpdateCategory(ctx context.Context, id int64, in UpdateCategoryInput) (model.Category, error) {
	c, err := u.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return model.Category{}, fromRepoError(err, "category")
	}

	if in.CategoryName != nil {
		name := strings.TrimSpace(*in.CategoryName)
		if name == "" {
			return model.Category{}, NewHTTPError(http.StatusBadRequest, "category_name is required")
		}
		c.CategoryName = name
	}
	if in.ClearParent {
		c.ParentCategoryID = nil
	} else if in.ParentCategoryID != nil {
		if *in.ParentCategoryID == id {
			return model.Category{}, NewHTTPError(http.StatusBadRequest, "category cannot be its own parent")
		}
		c.ParentCategoryID = in.ParentCategoryID
	}

	if err := u.categoryRepo.Update(ctx, c); err != nil {
		return model.Category{}, fromRepoError(err, "category")
	}
	return c, nil
}

// 削除。子カテゴリと所属商品は参照が外れるだけで残る。
func (u *CategoryUsecase) DeleteCategory(ctx context.Context, id int64) error {
	if err := u.categoryRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "category")
	}
	return nil
}
