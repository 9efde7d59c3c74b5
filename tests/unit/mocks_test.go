package unit

import (
	"context"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	out, _ := args.Get(0).(model.User)
	return out, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(model.User)
	return out, args.Error(1)
}

func (m *UserRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.User)
	return out, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, u model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(model.Product)
	return out, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(model.Product)
	return out, args.Error(1)
}

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Product)
	return out, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, bool, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).(model.Cart)
	return out, args.Bool(1), args.Error(2)
}

func (m *CartRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).(model.Cart)
	return out, args.Error(1)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) AddItem(ctx context.Context, cartID, productID, quantity int64) (model.CartItem, error) {
	args := m.Called(ctx, cartID, productID, quantity)
	out, _ := args.Get(0).(model.CartItem)
	return out, args.Error(1)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartID, itemID, quantity int64) (model.CartItem, error) {
	args := m.Called(ctx, cartID, itemID, quantity)
	out, _ := args.Get(0).(model.CartItem)
	return out, args.Error(1)
}

func (m *CartItemRepoMock) Delete(ctx context.Context, cartID, itemID int64) error {
	args := m.Called(ctx, cartID, itemID)
	return args.Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) Upsert(ctx context.Context, productID int64, quantity int64, location string) (model.Inventory, bool, error) {
	args := m.Called(ctx, productID, quantity, location)
	out, _ := args.Get(0).(model.Inventory)
	return out, args.Bool(1), args.Error(2)
}

func (m *InventoryRepoMock) FindByID(ctx context.Context, id int64) (model.Inventory, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(model.Inventory)
	return out, args.Error(1)
}

func (m *InventoryRepoMock) FindByProductID(ctx context.Context, productID int64) (model.Inventory, error) {
	args := m.Called(ctx, productID)
	out, _ := args.Get(0).(model.Inventory)
	return out, args.Error(1)
}

func (m *InventoryRepoMock) Update(ctx context.Context, inv model.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *InventoryRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, o model.Order) (model.Order, error) {
	args := m.Called(ctx, o)
	out, _ := args.Get(0).(model.Order)
	return out, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id int64) (model.Order, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(model.Order)
	return out, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]model.Order)
	return out, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID, items)
	out, _ := args.Get(0).([]model.OrderItem)
	return out, args.Error(1)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	out, _ := args.Get(0).([]model.OrderItem)
	return out, args.Error(1)
}

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) Create(ctx context.Context, r model.Review) (model.Review, error) {
	args := m.Called(ctx, r)
	out, _ := args.Get(0).(model.Review)
	return out, args.Error(1)
}

func (m *ReviewRepoMock) FindByID(ctx context.Context, id int64) (model.Review, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(model.Review)
	return out, args.Error(1)
}

func (m *ReviewRepoMock) List(ctx context.Context) ([]model.Review, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Review)
	return out, args.Error(1)
}

func (m *ReviewRepoMock) Update(ctx context.Context, r model.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ReviewRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type SitePropertyRepoMock struct{ mock.Mock }

func (m *SitePropertyRepoMock) List(ctx context.Context) ([]model.SiteProperty, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.SiteProperty)
	return out, args.Error(1)
}

func (m *SitePropertyRepoMock) FindByKey(ctx context.Context, key string) (model.SiteProperty, error) {
	args := m.Called(ctx, key)
	out, _ := args.Get(0).(model.SiteProperty)
	return out, args.Error(1)
}

func (m *SitePropertyRepoMock) Set(ctx context.Context, key, value, description, changedBy string) (model.SiteProperty, bool, error) {
	args := m.Called(ctx, key, value, description, changedBy)
	out, _ := args.Get(0).(model.SiteProperty)
	return out, args.Bool(1), args.Error(2)
}

type AuditLogRepoMock struct{ mock.Mock }

func (m *AuditLogRepoMock) List(ctx context.Context) ([]model.AuditLog, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.AuditLog)
	return out, args.Error(1)
}

func (m *AuditLogRepoMock) ListByPropertyKey(ctx context.Context, key string) ([]model.AuditLog, error) {
	args := m.Called(ctx, key)
	out, _ := args.Get(0).([]model.AuditLog)
	return out, args.Error(1)
}

func (m *AuditLogRepoMock) ListByChangedBy(ctx context.Context, changedBy string) ([]model.AuditLog, error) {
	args := m.Called(ctx, changedBy)
	out, _ := args.Get(0).([]model.AuditLog)
	return out, args.Error(1)
}

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	users      repo.UserRepository
	products   repo.ProductRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *TxReposMock) Users() repo.UserRepository           { return r.users }
func (r *TxReposMock) Products() repo.ProductRepository     { return r.products }

// =====================
// Helper: error contains（HTTPErrorの実装詳細に依存しない）
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func ptrInt64(v int64) *int64       { return &v }
func ptrInt(v int) *int             { return &v }
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
