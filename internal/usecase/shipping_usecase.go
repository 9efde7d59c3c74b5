package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ShippingUsecase struct {
	shippingRepo repo.ShippingRepository
	orderRepo    repo.OrderRepository
}

// DI
func NewShippingUsecase(shippingRepo repo.ShippingRepository, orderRepo repo.OrderRepository) *ShippingUsecase {
	return &ShippingUsecase{shippingRepo: shippingRepo, orderRepo: orderRepo}
}

func validShippingStatus(s model.ShippingStatus) bool {
	switch s {
	case model.ShippingStatusPreparing, model.ShippingStatusShipped, model.ShippingStatusInTransit, model.ShippingStatusDelivered:
		return true
	}
	return false
}

type CreateShippingInput struct {
	OrderID               int64
	Carrier               string
	TrackingNumber        string
	Status                *model.ShippingStatus
	ShippedDate           *time.Time
	EstimatedDeliveryDate *time.Time
}

type UpdateShippingInput struct {
	Carrier               *string
	TrackingNumber        *string
	Status                *model.ShippingStatus
	ShippedDate           *time.Time
	EstimatedDeliveryDate *time.Time
}

func (u *ShippingUsecase) CreateShipping(ctx context.Context, in CreateShippingInput) (model.Shipping, error) {
	if in.OrderID <= 0 {
		return model.Shipping{}, NewHTTPError(http.StatusBadRequest, "order_id is required")
	}
	carrier := strings.TrimSpace(in.Carrier)
	if carrier == "" {
		return model.Shipping{}, NewHTTPError(http.StatusBadRequest, "carrier is required")
	}

	if _, err := u.orderRepo.FindByID(ctx, in.OrderID); err != nil {
		return model.Shipping{}, fromRepoError(err, "order")
	}

	s := model.Shipping{
		OrderID:               in.OrderID,
		Carrier:               carrier,
		TrackingNumber:        in.TrackingNumber,
		Status:                model.ShippingStatusPreparing,
		ShippedDate:           in.ShippedDate,
		EstimatedDeliveryDate: in.EstimatedDeliveryDate,
	}
	if in.Status != nil {
		if !validShippingStatus(*in.Status) {
			return model.Shipping{}, NewHTTPError(http.StatusBadRequest, "invalid shipping status")
		}
		s.Status = *in.Status
	}

	created, err := u.shippingRepo.Create(ctx, s)
	if err != nil {
		return model.Shipping{}, fromRepoError(err, "shipping")
	}
	return created, nil
}

func (u *ShippingUsecase) GetShipping(ctx context.Context, id int64) (model.Shipping, error) {
	s, err := u.shippingRepo.FindByID(ctx, id)
	if err != nil {
		return model.Shipping{}, fromRepoError(err, "shipping")
	}
	return s, nil
}

func (u *ShippingUsecase) ListShippings(ctx context.Context) ([]model.Shipping, error) {
	shippings, err := u.shippingRepo.List(ctx)
	if err != nil {
		return []model.Shipping{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shippings, nil
}

func (u *ShippingUsecase) UpdateShipping(ctx context.Context, id int64, in UpdateShippingInput) (model.Shipping, error) {
	s, err := u.shippingRepo.FindByID(ctx, id)
	if err != nil {
		return model.Shipping{}, fromRepoError(err, "shipping")
	}

	if in.Carrier != nil {
		carrier := strings.TrimSpace(*in.Carrier)
		if carrier == "" {
			return model.Shipping{}, NewHTTPError(http.StatusBadRequest, "carrier is required")
		}
		s.Carrier = carrier
	}
	if in.TrackingNumber != nil {
		s.TrackingNumber = *in.TrackingNumber
	}
	if in.Status != nil {
		if !validShippingStatus(*in.Status) {
			return model.Shipping{}, NewHTTPError(http.StatusBadRequest, "invalid shipping status")
		}
		s.Status = *in.Status
	}
	if in.ShippedDate != nil {
		s.ShippedDate = in.ShippedDate
	}
	if in.EstimatedDeliveryDate != nil {
		s.EstimatedDeliveryDate = in.EstimatedDeliveryDate
	}

	if err := u.shippingRepo.Update(ctx, s); err != nil {
		return model.Shipping{}, fromRepoError(err, "shipping")
	}
	return s, nil
}

func (u *ShippingUsecase) DeleteShipping(ctx context.Context, id int64) error {
	if err := u.shippingRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "shipping")
	}
	return nil
}
