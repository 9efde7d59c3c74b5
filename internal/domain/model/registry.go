package model

// AllModels は AutoMigrate に渡す全エンティティ。
// FK の依存先が先に来るよう並べてある。
func AllModels() []any {
	return []any{
		&User{},
		&Role{},
		&Category{},
		&Product{},
		&ProductImage{},
		&Inventory{},
		&Size{},
		&ProductVariant{},
		&UnitType{},
		&Unit{},
		&ProductUnit{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&Payment{},
		&Address{},
		&Shipping{},
		&Review{},
		&SiteProperty{},
		&AuditLog{},
	}
}
