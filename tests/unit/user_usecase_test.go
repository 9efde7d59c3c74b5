package unit

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Test: 登録成功。パスワードは平文で保存されない
func TestUser_Create_HashesPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(UserRepoMock)

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		if u.Email != "taro@example.com" {
			return false
		}
		if u.PasswordHash == "password123" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
	})).Return(model.User{ID: 1, Email: "taro@example.com"}, nil)

	uc := usecase.NewUserUsecase(userRepo)

	out, err := uc.CreateUser(ctx, usecase.CreateUserInput{
		Email:    "taro@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)

	userRepo.AssertExpectations(t)
}

func TestUser_Create_RejectsInvalidEmail(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := usecase.NewUserUsecase(userRepo)

	_, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "not-an-email",
		Password: "password123",
	})
	assertErrContains(t, err, "invalid email")

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUser_Create_RejectsShortPassword(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := usecase.NewUserUsecase(userRepo)

	_, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "taro@example.com",
		Password: "short",
	})
	assertErrContains(t, err, "at least 8")
}

// Test: メール重複は400
func TestUser_Create_DuplicateEmail(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(model.User{}, repo.ErrConflict)

	uc := usecase.NewUserUsecase(userRepo)

	_, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "taro@example.com",
		Password: "password123",
	})
	assertErrContains(t, err, "duplicate")
}

// Test: 部分更新。渡さなかったフィールドは元の値のまま
func TestUser_Update_KeepsUnsetFields(t *testing.T) {
	ctx := context.Background()
	userRepo := new(UserRepoMock)

	userRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{
		ID:        1,
		Email:     "taro@example.com",
		FirstName: "Taro",
		LastName:  "Yamada",
		Phone:     "090-0000-0000",
	}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.FirstName == "Jiro" &&
			u.Email == "taro@example.com" &&
			u.LastName == "Yamada" &&
			u.Phone == "090-0000-0000"
	})).Return(nil)

	uc := usecase.NewUserUsecase(userRepo)

	out, err := uc.UpdateUser(ctx, 1, usecase.UpdateUserInput{FirstName: ptrString("Jiro")})
	assert.NoError(t, err)
	assert.Equal(t, "Jiro", out.FirstName)
	assert.Equal(t, "Yamada", out.LastName)

	userRepo.AssertExpectations(t)
}

func TestUser_Update_NotFound(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("FindByID", mock.Anything, int64(99)).Return(model.User{}, repo.ErrNotFound)

	uc := usecase.NewUserUsecase(userRepo)

	_, err := uc.UpdateUser(context.Background(), 99, usecase.UpdateUserInput{FirstName: ptrString("X")})
	assertErrContains(t, err, "user not found")

	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUser_Delete_NotFound(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("Delete", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	uc := usecase.NewUserUsecase(userRepo)

	err := uc.DeleteUser(context.Background(), 99)
	assertErrContains(t, err, "user not found")
}
