package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/Dishalex/PhotoShare/internal/model"
	imagerepo "github.com/Dishalex/PhotoShare/internal/modules/image/repo"
	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	userrepo "github.com/Dishalex/PhotoShare/internal/modules/user/repo"
	"github.com/Dishalex/PhotoShare/internal/platform/policy"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService *Service
	testHost    *testutils.FakeHost
	testQR      *testutils.StaticQR
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb), nil, "")
	testHost = testutils.NewFakeHost()
	testQR = &testutils.StaticQR{}
	testService = New(appService, userrepo.NewUserRepository(gdb), imagerepo.NewImageRepository(gdb), testHost, testQR)
	testService.ClearCache()
	return gdb
}

func actorOf(u model.User) policy.Actor {
	return policy.Actor{ID: u.ID, Role: u.Role}
}

func assertCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("expected service error %s, got %v", code, err)
	}
	if serviceErr.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, serviceErr.Code, serviceErr.Message)
	}
}

func mustFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, _ := w.CreateFormFile("file", filename)
	_, _ = part.Write(content)
	_ = w.Close()
	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	_, fh, err := req.FormFile("file")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	return fh
}
