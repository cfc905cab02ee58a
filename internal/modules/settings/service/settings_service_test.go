package service

import (
	"testing"

	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/model"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/settings/dto"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

func assertSettingsServiceErrorCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if serviceErr.Code != code {
		t.Fatalf("expected code %q, got %q", code, serviceErr.Code)
	}
}

func TestAdminUpdateSettings_UpsertsAndClearsCache(t *testing.T) {
	gdb := setupTestDB(t)

	if got := testService.GetInt(consts.ConfigMaxUploadSize); got != 10 {
		t.Fatalf("expected default 10, got %d", got)
	}

	err := testService.AdminUpdateSettings([]moduledto.UpdateSettingRequest{
		{Key: consts.ConfigMaxUploadSize, Value: " 20 "},
		{Key: "custom", Value: "val"},
	})
	if err != nil {
		t.Fatalf("AdminUpdateSettings: %v", err)
	}

	if got := testService.GetInt(consts.ConfigMaxUploadSize); got != 20 {
		t.Fatalf("expected cache refresh to 20, got %d", got)
	}
	var custom model.Setting
	if err := gdb.Where("key = ?", "custom").First(&custom).Error; err != nil || custom.Value != "val" {
		t.Fatalf("expected custom=val inserted, got %+v err=%v", custom, err)
	}
}

func TestAdminUpdateSettings_RejectsInvalidValues(t *testing.T) {
	gdb := setupTestDB(t)
	_ = gdb.Create(&model.Setting{Key: consts.ConfigMaxUploadSize, Value: "10"}).Error

	cases := []moduledto.UpdateSettingRequest{
		{Key: consts.ConfigMaxUploadSize, Value: "-1"},
		{Key: consts.ConfigMaxUploadSize, Value: "abc"},
		{Key: consts.ConfigRateLimitAuthRPS, Value: "0"},
		{Key: consts.ConfigAllowRegister, Value: "maybe"},
		{Key: consts.ConfigAllowFileExtensions, Value: "jpg,png"},
		{Key: " ", Value: "x"},
	}
	for _, item := range cases {
		err := testService.AdminUpdateSettings([]moduledto.UpdateSettingRequest{item})
		assertSettingsServiceErrorCode(t, err, platformservice.ErrorCodeValidation)
	}

	var setting model.Setting
	_ = gdb.Where("key = ?", consts.ConfigMaxUploadSize).First(&setting).Error
	if setting.Value != "10" {
		t.Fatalf("invalid value must not be written, got %q", setting.Value)
	}
}

func TestAdminListSettings_SortedByKey(t *testing.T) {
	gdb := setupTestDB(t)
	_ = gdb.Create(&model.Setting{Key: "b", Value: "2"}).Error
	_ = gdb.Create(&model.Setting{Key: "a", Value: "1"}).Error

	settings, err := testService.AdminListSettings()
	if err != nil {
		t.Fatalf("AdminListSettings: %v", err)
	}
	if len(settings) != 2 || settings[0].Key != "a" {
		t.Fatalf("unexpected order: %+v", settings)
	}
}
