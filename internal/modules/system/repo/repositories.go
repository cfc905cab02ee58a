package repo

import (
	"context"

	"gorm.io/gorm"
)

// Counts holds the row totals shown on the admin dashboard.
type Counts struct {
	Users    int64
	Images   int64
	Tags     int64
	Comments int64
	Ratings  int64
}

type SystemStore interface {
	Ping(ctx context.Context) error
	Counts() (Counts, error)
}

func NewSystemRepository(db *gorm.DB) SystemStore {
	return &SystemRepository{db: db}
}
