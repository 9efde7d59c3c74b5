package repository

import (
	"context"

	"app/internal/domain/model"
)

type SitePropertyRepository interface {
	List(ctx context.Context) ([]model.SiteProperty, error)
	FindByKey(ctx context.Context, key string) (model.SiteProperty, error)
	// key が既にあれば「監査ログ追記→更新」を1トランザクションで行い、
	// 無ければ監査ログ無しで新規作成する。2番目の戻り値は作成したかどうか。
	Set(ctx context.Context, key, value, description, changedBy string) (model.SiteProperty, bool, error)
}

// 監査ログは参照のみ。追記はSitePropertyRepository.Setのトランザクション内で行う。
type AuditLogRepository interface {
	List(ctx context.Context) ([]model.AuditLog, error)
	ListByPropertyKey(ctx context.Context, key string) ([]model.AuditLog, error)
	ListByChangedBy(ctx context.Context, changedBy string) ([]model.AuditLog, error)
}
