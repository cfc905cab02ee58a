package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Dishalex/PhotoShare/internal/model"
	"github.com/Dishalex/PhotoShare/internal/platform/imagehost"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"
)

func TestChangeSize_CreatesNewRowKeepsSource(t *testing.T) {
	gdb := setupTestDB(t)
	owner := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	src := testutils.CreateImage(t, gdb, owner.ID, "original")

	resp, err := testService.ChangeSize(context.Background(), actorOf(owner), src.ID, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Image.ID == src.ID || resp.Image.Description != "original" {
		t.Fatalf("unexpected derived image: %+v", resp.Image)
	}
	if len(testHost.Transforms) != 1 || testHost.Transforms[0].Width != 200 {
		t.Fatalf("expected default width 200, got %+v", testHost.Transforms)
	}

	var count int64
	gdb.Model(&model.Image{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected source and derived rows, got %d", count)
	}
}

func TestTransforms_OperationKinds(t *testing.T) {
	gdb := setupTestDB(t)
	owner := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	src := testutils.CreateImage(t, gdb, owner.ID, "original")

	if _, err := testService.FadeEdges(context.Background(), actorOf(owner), src.ID); err != nil {
		t.Fatalf("fade: %v", err)
	}
	if _, err := testService.BlackWhite(context.Background(), actorOf(owner), src.ID); err != nil {
		t.Fatalf("black white: %v", err)
	}
	if testHost.Transforms[0].Kind != imagehost.OpFadeEdges || testHost.Transforms[1].Kind != imagehost.OpBlackWhite {
		t.Fatalf("unexpected ops: %+v", testHost.Transforms)
	}
}

func TestTransforms_Guards(t *testing.T) {
	gdb := setupTestDB(t)
	owner := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	admin := testutils.CreateUser(t, gdb, "root", model.RoleAdmin)
	src := testutils.CreateImage(t, gdb, owner.ID, "original")

	_, err := testService.BlackWhite(context.Background(), actorOf(admin), src.ID)
	assertCode(t, err, platformservice.ErrorCodeForbidden)

	_, err = testService.FadeEdges(context.Background(), actorOf(owner), 999)
	assertCode(t, err, platformservice.ErrorCodeNotFound)

	_, err = testService.ChangeSize(context.Background(), actorOf(owner), src.ID, 100000)
	assertCode(t, err, platformservice.ErrorCodeValidation)

	testHost.TransformErr = errors.New("down")
	_, err = testService.FadeEdges(context.Background(), actorOf(owner), src.ID)
	assertCode(t, err, platformservice.ErrorCodeUpstream)
}
