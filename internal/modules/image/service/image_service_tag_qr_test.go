package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Dishalex/PhotoShare/internal/model"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"
)

func TestAddTag_SixthTagRejected(t *testing.T) {
	gdb := setupTestDB(t)
	owner := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	img := testutils.CreateImage(t, gdb, owner.ID, "mine")

	for i := 1; i <= 5; i++ {
		if _, err := testService.AddTag(actorOf(owner), img.ID, fmt.Sprintf("tag%d", i)); err != nil {
			t.Fatalf("tag %d: %v", i, err)
		}
	}
	_, err := testService.AddTag(actorOf(owner), img.ID, "tag6")
	assertCode(t, err, platformservice.ErrorCodeConflict)

	var count int64
	gdb.Model(&model.ImageTag{}).Where("image_id = ?", img.ID).Count(&count)
	if count != 5 {
		t.Fatalf("expected 5 links, got %d", count)
	}
}

func TestAddTag_ExistingLinkIsNoop(t *testing.T) {
	gdb := setupTestDB(t)
	owner := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	img := testutils.CreateImage(t, gdb, owner.ID, "mine")

	name, err := testService.AddTag(actorOf(owner), img.ID, "  Sea ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "sea" {
		t.Fatalf("expected lowercase name, got %q", name)
	}
	if _, err := testService.AddTag(actorOf(owner), img.ID, "SEA"); err != nil {
		t.Fatalf("re-adding should succeed: %v", err)
	}

	var links, tags int64
	gdb.Model(&model.ImageTag{}).Where("image_id = ?", img.ID).Count(&links)
	gdb.Model(&model.Tag{}).Count(&tags)
	if links != 1 || tags != 1 {
		t.Fatalf("expected one link and one tag, got %d/%d", links, tags)
	}
}

func TestAddTag_ReusesTagAcrossImages(t *testing.T) {
	gdb := setupTestDB(t)
	owner := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	a := testutils.CreateImage(t, gdb, owner.ID, "a")
	b := testutils.CreateImage(t, gdb, owner.ID, "b")

	_, _ = testService.AddTag(actorOf(owner), a.ID, "sea")
	_, _ = testService.AddTag(actorOf(owner), b.ID, "sea")

	var tags int64
	gdb.Model(&model.Tag{}).Count(&tags)
	if tags != 1 {
		t.Fatalf("expected tag reuse, got %d tags", tags)
	}
}

func TestAddTag_Guards(t *testing.T) {
	gdb := setupTestDB(t)
	owner := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	admin := testutils.CreateUser(t, gdb, "root", model.RoleAdmin)
	img := testutils.CreateImage(t, gdb, owner.ID, "mine")

	_, err := testService.AddTag(actorOf(admin), img.ID, "sea")
	assertCode(t, err, platformservice.ErrorCodeForbidden)

	_, err = testService.AddTag(actorOf(owner), 999, "sea")
	assertCode(t, err, platformservice.ErrorCodeNotFound)

	_, err = testService.AddTag(actorOf(owner), img.ID, strings.Repeat("x", 26))
	assertCode(t, err, platformservice.ErrorCodeValidation)
}

func TestCreateQR_Idempotent(t *testing.T) {
	gdb := setupTestDB(t)
	owner := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	viewer := testutils.CreateUser(t, gdb, "bob", model.RoleUser)
	img := testutils.CreateImage(t, gdb, owner.ID, "mine")

	first, err := testService.CreateQR(context.Background(), actorOf(viewer), img.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := testService.CreateQR(context.Background(), actorOf(owner), img.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.QRCodeURL == "" || first.QRCodeURL != second.QRCodeURL {
		t.Fatalf("expected same url, got %q and %q", first.QRCodeURL, second.QRCodeURL)
	}
	if testHost.UploadCount() != 1 || testQR.Calls != 1 {
		t.Fatalf("expected one render and upload, got %d/%d", testQR.Calls, testHost.UploadCount())
	}
	if got := string(testHost.Objects[testHost.Uploads[0]]); got != "qr:"+img.URL {
		t.Fatalf("qr must encode the image url, got %q", got)
	}

	var stored model.Image
	gdb.First(&stored, img.ID)
	if stored.QRURL != first.QRCodeURL {
		t.Fatalf("qr url not stored")
	}
}

func TestCreateQR_NotFound(t *testing.T) {
	gdb := setupTestDB(t)
	owner := testutils.CreateUser(t, gdb, "alice", model.RoleUser)

	_, err := testService.CreateQR(context.Background(), actorOf(owner), 42)
	assertCode(t, err, platformservice.ErrorCodeNotFound)
}
