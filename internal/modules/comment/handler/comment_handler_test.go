package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/Dishalex/PhotoShare/internal/model"
	"github.com/Dishalex/PhotoShare/internal/testutils"

	"github.com/gin-gonic/gin"
)

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCommentHandlers(t *testing.T) {
	gdb := setupTestDB(t)
	owner := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	bob := testutils.CreateUser(t, gdb, "bob", model.RoleUser)
	img := testutils.CreateImage(t, gdb, owner.ID, "sunset")

	asBob := gin.New()
	asBob.POST("/comments/", as(bob), testHandler.CreateComment)
	asBob.PUT("/comments/:id/", as(bob), testHandler.UpdateComment)
	asBob.DELETE("/comments/:id/", as(bob), testHandler.DeleteComment)
	asBob.GET("/images/:id/comments", testHandler.ListImageComments)

	asOwner := gin.New()
	asOwner.PUT("/comments/:id/", as(owner), testHandler.UpdateComment)
	asOwner.DELETE("/comments/:id/", as(owner), testHandler.DeleteComment)

	rec := doJSON(asBob, http.MethodPost, "/comments/", map[string]any{"image_id": img.ID, "comment": "lovely"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var created model.Comment
	_ = json.Unmarshal(rec.Body.Bytes(), &created)
	path := "/comments/" + strconv.FormatUint(uint64(created.ID), 10) + "/"

	if rec := doJSON(asBob, http.MethodPost, "/comments/", map[string]any{"image_id": img.ID}); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing body expected 400, got %d", rec.Code)
	}
	if rec := doJSON(asBob, http.MethodPost, "/comments/", map[string]any{"image_id": 999, "comment": "x"}); rec.Code != http.StatusNotFound {
		t.Fatalf("missing image expected 404, got %d", rec.Code)
	}

	rec = doJSON(asOwner, http.MethodPut, path, map[string]string{"comment": "changed"})
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "permission denied") {
		t.Fatalf("non-author edit expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
	if rec := doJSON(asBob, http.MethodPut, path, map[string]string{"comment": "edited"}); rec.Code != http.StatusOK {
		t.Fatalf("author edit expected 200, got %d", rec.Code)
	}

	rec = doJSON(asBob, http.MethodGet, "/images/"+strconv.FormatUint(uint64(img.ID), 10)+"/comments", nil)
	var list []model.Comment
	_ = json.Unmarshal(rec.Body.Bytes(), &list)
	if rec.Code != http.StatusOK || len(list) != 1 || list[0].Comment != "edited" {
		t.Fatalf("unexpected list %d %s", rec.Code, rec.Body.String())
	}

	if rec := doJSON(asOwner, http.MethodDelete, path, nil); rec.Code != http.StatusForbidden {
		t.Fatalf("image owner delete expected 403, got %d", rec.Code)
	}
	if rec := doJSON(asBob, http.MethodDelete, path, nil); rec.Code != http.StatusOK {
		t.Fatalf("author delete expected 200, got %d", rec.Code)
	}
}
