package model

// All lists every model to migrate, parents first.
func All() []any {
	return []any{
		&User{},
		&Setting{},
		&Image{},
		&Tag{},
		&ImageTag{},
		&Comment{},
		&Rating{},
	}
}
