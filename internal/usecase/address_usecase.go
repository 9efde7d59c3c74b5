package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AddressUsecase struct {
	addressRepo repo.AddressRepository
	userRepo    repo.UserRepository
}

// DI
func NewAddressUsecase(addressRepo repo.AddressRepository, userRepo repo.UserRepository) *AddressUsecase {
	return &AddressUsecase{addressRepo: addressRepo, userRepo: userRepo}
}

func validAddressType(t model.AddressType) bool {
	return t == model.AddressTypeBilling || t == model.AddressTypeShipping
}

type CreateAddressInput struct {
	UserID      int64
	AddressType model.AddressType
	Street      string
	City        string
	State       string
	PostalCode  string
	Country     string
}

type UpdateAddressInput struct {
	AddressType *model.AddressType
	Street      *string
	City        *string
	State       *string
	PostalCode  *string
	Country     *string
}

func (u *AddressUsecase) CreateAddress(ctx context.Context, in CreateAddressInput) (model.Address, error) {
	if in.UserID <= 0 {
		return model.Address{}, NewHTTPError(http.StatusBadRequest, "user_id is required")
	}
	if !validAddressType(in.AddressType) {
		return model.Address{}, NewHTTPError(http.StatusBadRequest, "invalid address type")
	}
	street := strings.TrimSpace(in.Street)
	city := strings.TrimSpace(in.City)
	country := strings.TrimSpace(in.Country)
	if street == "" || city == "" || country == "" {
		return model.Address{}, NewHTTPError(http.StatusBadRequest, "street, city and country are required")
	}

	if _, err := u.userRepo.FindByID(ctx, in.UserID); err != nil {
		return model.Address{}, fromRepoError(err, "user")
	}

	created, err := u.addressRepo.Create(ctx, model.Address{
		UserID:      in.UserID,
		AddressType: in.AddressType,
		Street:      street,
		City:        city,
		State:       in.State,
		PostalCode:  in.PostalCode,
		Country:     country,
	})
	if err != nil {
		return model.Address{}, fromRepoError(err, "address")
	}
	return created, nil
}

func (u *AddressUsecase) GetAddress(ctx context.Context, id int64) (model.Address, error) {
	a, err := u.addressRepo.FindByID(ctx, id)
	if err != nil {
		return model.Address{}, fromRepoError(err, "address")
	}
	return a, nil
}

func (u *AddressUsecase) ListAddresses(ctx context.Context) ([]model.Address, error) {
	addresses, err := u.addressRepo.List(ctx)
	if err != nil {
		return []model.Address{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return addresses, nil
}

func (u *AddressUsecase) UpdateAddress(ctx context.Context, id int64, in UpdateAddressInput) (model.Address, error) {
	a, err := u.addressRepo.FindByID(ctx, id)
	if err != nil {
		return model.Address{}, fromRepoError(err, "address")
	}

	if in.AddressType != nil {
		if !validAddressType(*in.AddressType) {
			return model.Address{}, NewHTTPError(http.StatusBadRequest, "invalid address type")
		}
		a.AddressType = *in.AddressType
	}
	if in.Street != nil {
		street := strings.TrimSpace(*in.Street)
		if street == "" {
			return model.Address{}, NewHTTPError(http.StatusBadRequest, "street is required")
		}
		a.Street = street
	}
	if in.City != nil {
		city := strings.TrimSpace(*in.City)
		if city == "" {
			return model.Address{}, NewHTTPError(http.StatusBadRequest, "city is required")
		}
		a.City = city
	}
	if in.State != nil {
		a.State = *in.State
	}
	if in.PostalCode != nil {
		a.PostalCode = *in.PostalCode
	}
	if in.Country != nil {
		country := strings.TrimSpace(*in.Country)
		if country == "" {
			return model.Address{}, NewHTTPError(http.StatusBadRequest, "country is required")
		}
		a.Country = country
	}

	if err := u.addressRepo.Update(ctx, a); err != nil {
		return model.Address{}, fromRepoError(err, "address")
	}
	return a, nil
}

func (u *AddressUsecase) DeleteAddress(ctx context.Context, id int64) error {
	if err := u.addressRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "address")
	}
	return nil
}
