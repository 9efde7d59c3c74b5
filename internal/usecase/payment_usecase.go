package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type PaymentUsecase struct {
	paymentRepo repo.PaymentRepository
	orderRepo   repo.OrderRepository
}

// DI
func NewPaymentUsecase(paymentRepo repo.PaymentRepository, orderRepo repo.OrderRepository) *PaymentUsecase {
	return &PaymentUsecase{paymentRepo: paymentRepo, orderRepo: orderRepo}
}

func validPaymentMethod(m model.PaymentMethod) bool {
	switch m {
	case model.PaymentMethodCreditCard, model.PaymentMethodUPI, model.PaymentMethodBankTransfer:
		return true
	}
	return false
}

func validPaymentStatus(s model.PaymentStatus) bool {
	switch s {
	case model.PaymentStatusPending, model.PaymentStatusCompleted, model.PaymentStatusFailed:
		return true
	}
	return false
}

type CreatePaymentInput struct {
	OrderID       int64
	PaymentMethod model.PaymentMethod
	Amount        *float64
	Status        *model.PaymentStatus
}

type UpdatePaymentInput struct {
	PaymentMethod *model.PaymentMethod
	Amount        *float64
	Status        *model.PaymentStatus
}

func (u *PaymentUsecase) CreatePayment(ctx context.Context, in CreatePaymentInput) (model.Payment, error) {
	if in.OrderID <= 0 {
		return model.Payment{}, NewHTTPError(http.StatusBadRequest, "order_id is required")
	}
	if !validPaymentMethod(in.PaymentMethod) {
		return model.Payment{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
	}
	if in.Amount == nil || *in.Amount < 0 {
		return model.Payment{}, NewHTTPError(http.StatusBadRequest, "amount must be >= 0")
	}

	if _, err := u.orderRepo.FindByID(ctx, in.OrderID); err != nil {
		return model.Payment{}, fromRepoError(err, "order")
	}

	p := model.Payment{
		OrderID:       in.OrderID,
		PaymentMethod: in.PaymentMethod,
		Amount:        *in.Amount,
		Status:        model.PaymentStatusPending,
	}
	if in.Status != nil {
		if !validPaymentStatus(*in.Status) {
			return model.Payment{}, NewHTTPError(http.StatusBadRequest, "invalid payment status")
		}
		p.Status = *in.Status
	}

	created, err := u.paymentRepo.Create(ctx, p)
	if err != nil {
		return model.Payment{}, fromRepoError(err, "payment")
	}
	return created, nil
}

func (u *PaymentUsecase) GetPayment(ctx context.Context, id int64) (model.Payment, error) {
	p, err := u.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return model.Payment{}, fromRepoError(err, "payment")
	}
	return p, nil
}

func (u *PaymentUsecase) ListPayments(ctx context.Context) ([]model.Payment, error) {
	payments, err := u.paymentRepo.List(ctx)
	if err != nil {
		return []model.Payment{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return payments, nil
}

func (u *PaymentUsecase) UpdatePayment(ctx context.Context, id int64, in UpdatePaymentInput) (model.Payment, error) {
	p, err := u.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return model.Payment{}, fromRepoError(err, "payment")
	}

	if in.PaymentMethod != nil {
		if !validPaymentMethod(*in.PaymentMethod) {
			return model.Payment{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
		}
		p.PaymentMethod = *in.PaymentMethod
	}
	if in.Amount != nil {
		if *in.Amount < 0 {
			return model.Payment{}, NewHTTPError(http.StatusBadRequest, "amount must be >= 0")
		}
		p.Amount = *in.Amount
	}
	if in.Status != nil {
		if !validPaymentStatus(*in.Status) {
			return model.Payment{}, NewHTTPError(http.StatusBadRequest, "invalid payment status")
		}
		p.Status = *in.Status
	}

	if err := u.paymentRepo.Update(ctx, p); err != nil {
		return model.Payment{}, fromRepoError(err, "payment")
	}
	return p, nil
}

func (u *PaymentUsecase) DeletePayment(ctx context.Context, id int64) error {
	if err := u.paymentRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "payment")
	}
	return nil
}
