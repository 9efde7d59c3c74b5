package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	userRepo repo.UserRepository
}

// DI
func NewUserUsecase(userRepo repo.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

type UpdateUserInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Phone     *string
}

func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (model.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(in.Password) < 8 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "failed to hash password")
	}

	created, err := u.userRepo.Create(ctx, model.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
	})
	if err != nil {
		return model.User{}, fromRepoError(err, "user")
	}
	return created, nil
}

func (u *UserUsecase) GetUser(ctx context.Context, id int64) (model.User, error) {
	if id <= 0 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return model.User{}, fromRepoError(err, "user")
	}
	return user, nil
}

func (u *UserUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return []model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}

// 渡されたフィールドだけ上書きし、無いものは元の値のまま
func (u *UserUsecase) UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (model.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return model.User{}, fromRepoError(err, "user")
	}

	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" || !strings.Contains(email, "@") {
			return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid email")
		}
		user.Email = email
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return model.User{}, NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.User{}, NewHTTPError(http.StatusInternalServerError, "failed to hash password")
		}
		user.PasswordHash = string(hash)
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return model.User{}, fromRepoError(err, "user")
	}
	return user, nil
}

func (u *UserUsecase) DeleteUser(ctx context.Context, id int64) error {
	if err := u.userRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "user")
	}
	return nil
}
