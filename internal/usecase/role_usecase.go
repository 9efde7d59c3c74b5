package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type RoleUsecase struct {
	roleRepo     repo.RoleRepository
	userRoleRepo repo.UserRoleRepository
}

// DI
func NewRoleUsecase(roleRepo repo.RoleRepository, userRoleRepo repo.UserRoleRepository) *RoleUsecase {
	return &RoleUsecase{roleRepo: roleRepo, userRoleRepo: userRoleRepo}
}

func (u *RoleUsecase) CreateRole(ctx context.Context, name string) (model.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Role{}, NewHTTPError(http.StatusBadRequest, "role_name is required")
	}
	created, err := u.roleRepo.Create(ctx, model.Role{RoleName: name})
	if err != nil {
		return model.Role{}, fromRepoError(err, "role")
	}
	return created, nil
}

func (u *RoleUsecase) GetRole(ctx context.Context, id int64) (model.Role, error) {
	role, err := u.roleRepo.FindByID(ctx, id)
	if err != nil {
		return model.Role{}, fromRepoError(err, "role")
	}
	return role, nil
}

func (u *RoleUsecase) ListRoles(ctx context.Context) ([]model.Role, error) {
	roles, err := u.roleRepo.List(ctx)
	if err != nil {
		return []model.Role{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return roles, nil
}

func (u *RoleUsecase) UpdateRole(ctx context.Context, id int64, name *string) (model.Role, error) {
	role, err := u.roleRepo.FindByID(ctx, id)
	if err != nil {
		return model.Role{}, fromRepoError(err, "role")
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return model.Role{}, NewHTTPError(http.StatusBadRequest, "role_name is required")
		}
		role.RoleName = trimmed
	}
	if err := u.roleRepo.Update(ctx, role); err != nil {
		return model.Role{}, fromRepoError(err, "role")
	}
	return role, nil
}

func (u *RoleUsecase) DeleteRole(ctx context.Context, id int64) error {
	if err := u.roleRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "role")
	}
	return nil
}

func (u *RoleUsecase) AssignRole(ctx context.Context, userID, roleID int64) error {
	if userID <= 0 || roleID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "user_id and role_id are required")
	}
	if err := u.userRoleRepo.Assign(ctx, userID, roleID); err != nil {
		return fromRepoError(err, "user role")
	}
	return nil
}

func (u *RoleUsecase) RemoveRole(ctx context.Context, userID, roleID int64) error {
	if userID <= 0 || roleID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "user_id and role_id are required")
	}
	if err := u.userRoleRepo.Remove(ctx, userID, roleID); err != nil {
		return fromRepoError(err, "user role")
	}
	return nil
}

func (u *RoleUsecase) ListRolesByUser(ctx context.Context, userID int64) ([]model.Role, error) {
	roles, err := u.userRoleRepo.ListRolesByUser(ctx, userID)
	if err != nil {
		return []model.Role{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return roles, nil
}

func (u *RoleUsecase) ListUsersByRole(ctx context.Context, roleID int64) ([]model.User, error) {
	users, err := u.userRoleRepo.ListUsersByRole(ctx, roleID)
	if err != nil {
		return []model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}
