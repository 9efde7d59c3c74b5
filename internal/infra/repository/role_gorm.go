package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type RoleGormRepository struct {
	db *gorm.DB
}

// DI
func NewRoleGormRepository(db *gorm.DB) *RoleGormRepository {
	return &RoleGormRepository{db: db}
}

func (r *RoleGormRepository) Create(ctx context.Context, role model.Role) (model.Role, error) {
	if err := r.db.WithContext(ctx).Create(&role).Error; err != nil {
		return model.Role{}, translate(err)
	}
	return role, nil
}

func (r *RoleGormRepository) FindByID(ctx context.Context, id int64) (model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return model.Role{}, translate(err)
	}
	return role, nil
}

func (r *RoleGormRepository) List(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Order("id asc").Find(&roles).Error; err != nil {
		return []model.Role{}, err
	}
	return roles, nil
}

func (r *RoleGormRepository) Update(ctx context.Context, role model.Role) error {
	res := r.db.WithContext(ctx).Model(&model.Role{}).Where("id = ?", role.ID).
		Update("role_name", role.RoleName)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *RoleGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Role{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// user_roles の割当/解除
type UserRoleGormRepository struct {
	db *gorm.DB
}

// DI
func NewUserRoleGormRepository(db *gorm.DB) *UserRoleGormRepository {
	return &UserRoleGormRepository{db: db}
}

func (r *UserRoleGormRepository) Assign(ctx context.Context, userID, roleID int64) error {
	ur := model.UserRole{UserID: userID, RoleID: roleID}
	if err := r.db.WithContext(ctx).Create(&ur).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *UserRoleGormRepository) Remove(ctx context.Context, userID, roleID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&model.UserRole{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *UserRoleGormRepository) ListRolesByUser(ctx context.Context, userID int64) ([]model.Role, error) {
	var roles []model.Role
	err := r.db.WithContext(ctx).Model(&model.Role{}).
		Joins("JOIN user_roles ur ON ur.role_id = roles.id").
		Where("ur.user_id = ?", userID).
		Order("roles.id asc").
		Find(&roles).Error
	if err != nil {
		return []model.Role{}, err
	}
	return roles, nil
}

func (r *UserRoleGormRepository) ListUsersByRole(ctx context.Context, roleID int64) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN user_roles ur ON ur.user_id = users.id").
		Where("ur.role_id = ?", roleID).
		Order("users.id asc").
		Find(&users).Error
	if err != nil {
		return []model.User{}, err
	}
	return users, nil
}
