package repo

import (
	"errors"
	"testing"

	"github.com/Dishalex/PhotoShare/internal/model"
	"github.com/Dishalex/PhotoShare/internal/testutils"

	"gorm.io/gorm"
)

func TestAttachTag_ReusesExistingTag(t *testing.T) {
	gdb := testutils.SetupDB(t)
	owner := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	first := testutils.CreateImage(t, gdb, owner.ID, "one")
	second := testutils.CreateImage(t, gdb, owner.ID, "two")
	store := NewImageRepository(gdb)

	for _, id := range []uint{first.ID, second.ID} {
		if added, err := store.AttachTag(id, "sea", 5); err != nil || !added {
			t.Fatalf("attach to %d: added=%v err=%v", id, added, err)
		}
	}

	var tags int64
	gdb.Model(&model.Tag{}).Where("name = ?", "sea").Count(&tags)
	if tags != 1 {
		t.Fatalf("expected one tag row, got %d", tags)
	}
}

func TestAttachTag_TagCreatedConcurrently(t *testing.T) {
	gdb := testutils.SetupDB(t)
	owner := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	img := testutils.CreateImage(t, gdb, owner.ID, "sunset")
	store := NewImageRepository(gdb)

	// Another writer inserts the tag right after our lookup missed it.
	fired := false
	err := gdb.Callback().Query().After("gorm:query").Register("test:concurrent_tag", func(d *gorm.DB) {
		if fired || d.Statement.Table != "tags" || !errors.Is(d.Error, gorm.ErrRecordNotFound) {
			return
		}
		fired = true
		if _, err := d.Statement.ConnPool.ExecContext(d.Statement.Context, "INSERT INTO tags (name) VALUES (?)", "sunset"); err != nil {
			t.Errorf("concurrent insert: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	added, err := store.AttachTag(img.ID, "sunset", 5)
	if err != nil || !added {
		t.Fatalf("expected the tag to be attached, added=%v err=%v", added, err)
	}
	if !fired {
		t.Fatalf("concurrent insert did not run")
	}

	var tags []model.Tag
	if err := gdb.Where("name = ?", "sunset").Find(&tags).Error; err != nil {
		t.Fatalf("load tags: %v", err)
	}
	if len(tags) != 1 {
		t.Fatalf("expected one tag row, got %d", len(tags))
	}
	var link model.ImageTag
	if err := gdb.Where("image_id = ?", img.ID).First(&link).Error; err != nil {
		t.Fatalf("load link: %v", err)
	}
	if link.TagID != tags[0].ID {
		t.Fatalf("linked tag %d, want %d", link.TagID, tags[0].ID)
	}
}
