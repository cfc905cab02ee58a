package repo

import (
	"context"
	"fmt"

	"github.com/Dishalex/PhotoShare/internal/model"

	"gorm.io/gorm"
)

type SystemRepository struct {
	db *gorm.DB
}

// Ping runs SELECT 1 against the configured database.
func (r *SystemRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return err
	}
	if one != 1 {
		return fmt.Errorf("unexpected SELECT 1 result: %d", one)
	}
	return nil
}

func (r *SystemRepository) Counts() (Counts, error) {
	var c Counts
	targets := []struct {
		model any
		dst   *int64
	}{
		{&model.User{}, &c.Users},
		{&model.Image{}, &c.Images},
		{&model.Tag{}, &c.Tags},
		{&model.Comment{}, &c.Comments},
		{&model.Rating{}, &c.Ratings},
	}
	for _, t := range targets {
		if err := r.db.Model(t.model).Count(t.dst).Error; err != nil {
			return Counts{}, err
		}
	}
	return c, nil
}
