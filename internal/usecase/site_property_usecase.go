package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type SitePropertyUsecase struct {
	propRepo  repo.SitePropertyRepository
	auditRepo repo.AuditLogRepository
}

// DI
func NewSitePropertyUsecase(propRepo repo.SitePropertyRepository, auditRepo repo.AuditLogRepository) *SitePropertyUsecase {
	return &SitePropertyUsecase{propRepo: propRepo, auditRepo: auditRepo}
}

type SetSitePropertyInput struct {
	PropertyKey   string
	PropertyValue string
	Description   string
	ChangedBy     string
}

// key があれば更新＋監査ログ、無ければ新規作成（ログ無し）。
// 2番目の戻り値は作成したかどうか。
func (u *SitePropertyUsecase) SetProperty(ctx context.Context, in SetSitePropertyInput) (model.SiteProperty, bool, error) {
	key := strings.TrimSpace(in.PropertyKey)
	if key == "" {
		return model.SiteProperty{}, false, NewHTTPError(http.StatusBadRequest, "property_key is required")
	}

	prop, created, err := u.propRepo.Set(ctx, key, in.PropertyValue, in.Description, in.ChangedBy)
	if err != nil {
		return model.SiteProperty{}, false, fromRepoError(err, "site property")
	}
	return prop, created, nil
}

func (u *SitePropertyUsecase) GetProperty(ctx context.Context, key string) (model.SiteProperty, error) {
	prop, err := u.propRepo.FindByKey(ctx, key)
	if err != nil {
		return model.SiteProperty{}, fromRepoError(err, "site property")
	}
	return prop, nil
}

func (u *SitePropertyUsecase) ListProperties(ctx context.Context) ([]model.SiteProperty, error) {
	props, err := u.propRepo.List(ctx)
	if err != nil {
		return []model.SiteProperty{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return props, nil
}

// ---- 監査ログ（参照のみ）----

func (u *SitePropertyUsecase) ListAuditLogs(ctx context.Context) ([]model.AuditLog, error) {
	logs, err := u.auditRepo.List(ctx)
	if err != nil {
		return []model.AuditLog{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return logs, nil
}

func (u *SitePropertyUsecase) ListAuditLogsByKey(ctx context.Context, key string) ([]model.AuditLog, error) {
	logs, err := u.auditRepo.ListByPropertyKey(ctx, key)
	if err != nil {
		return []model.AuditLog{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return logs, nil
}

func (u *SitePropertyUsecase) ListAuditLogsByChangedBy(ctx context.Context, changedBy string) ([]model.AuditLog, error) {
	logs, err := u.auditRepo.ListByChangedBy(ctx, changedBy)
	if err != nil {
		return []model.AuditLog{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return logs, nil
}
