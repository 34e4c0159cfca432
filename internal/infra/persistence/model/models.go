package model

// All lists the tables in dependency order for schema migration.
func All() []any {
	return []any{
		&CategoryModel{},
		&ProductModel{},
		&CartModel{},
		&CustomerModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}
