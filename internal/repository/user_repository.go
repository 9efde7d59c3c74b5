package repository

import (
	"context"

	"app/internal/domain/model"
)

// 会員の永続化だけを約束。
type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id int64) error
}

type RoleRepository interface {
	Create(ctx context.Context, r model.Role) (model.Role, error)
	FindByID(ctx context.Context, id int64) (model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	Update(ctx context.Context, r model.Role) error
	Delete(ctx context.Context, id int64) error
}

// user_roles の割当/解除
type UserRoleRepository interface {
	Assign(ctx context.Context, userID, roleID int64) error
	Remove(ctx context.Context, userID, roleID int64) error
	ListRolesByUser(ctx context.Context, userID int64) ([]model.Role, error)
	ListUsersByRole(ctx context.Context, roleID int64) ([]model.User, error)
}
