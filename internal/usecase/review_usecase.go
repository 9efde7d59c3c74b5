package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo  repo.ReviewRepository
	productRepo repo.ProductRepository
	userRepo    repo.UserRepository
}

// DI
func NewReviewUsecase(reviewRepo repo.ReviewRepository, productRepo repo.ProductRepository, userRepo repo.UserRepository) *ReviewUsecase {
	return &ReviewUsecase{reviewRepo: reviewRepo, productRepo: productRepo, userRepo: userRepo}
}

type CreateReviewInput struct {
	ProductID  int64
	UserID     int64
	Rating     *int
	ReviewText string
}

type UpdateReviewInput struct {
	Rating     *int
	ReviewText *string
}

func (u *ReviewUsecase) CreateReview(ctx context.Context, in CreateReviewInput) (model.Review, error) {
	if in.ProductID <= 0 || in.UserID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "product_id and user_id are required")
	}
	if in.Rating == nil || *in.Rating < 1 || *in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	if _, err := u.productRepo.FindByID(ctx, in.ProductID); err != nil {
		return model.Review{}, fromRepoError(err, "product")
	}
	if _, err := u.userRepo.FindByID(ctx, in.UserID); err != nil {
		return model.Review{}, fromRepoError(err, "user")
	}

	created, err := u.reviewRepo.Create(ctx, model.Review{
		ProductID:  in.ProductID,
		UserID:     in.UserID,
		Rating:     *in.Rating,
		ReviewText: in.ReviewText,
	})
	if err != nil {
		return model.Review{}, fromRepoError(err, "review")
	}
	return created, nil
}

func (u *ReviewUsecase) GetReview(ctx context.Context, id int64) (model.Review, error) {
	r, err := u.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return model.Review{}, fromRepoError(err, "review")
	}
	return r, nil
}

func (u *ReviewUsecase) ListReviews(ctx context.Context) ([]model.Review, error) {
	reviews, err := u.reviewRepo.List(ctx)
	if err != nil {
		return []model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return reviews, nil
}

func (u *ReviewUsecase) UpdateReview(ctx context.Context, id int64, in UpdateReviewInput) (model.Review, error) {
	r, err := u.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return model.Review{}, fromRepoError(err, "review")
	}

	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
		}
		r.Rating = *in.Rating
	}
	if in.ReviewText != nil {
		r.ReviewText = *in.ReviewText
	}

	if err := u.reviewRepo.Update(ctx, r); err != nil {
		return model.Review{}, fromRepoError(err, "review")
	}
	return r, nil
}

func (u *ReviewUsecase) DeleteReview(ctx context.Context, id int64) error {
	if err := u.reviewRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "review")
	}
	return nil
}
