package service

import (
	"strconv"
	"strings"

	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/model"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/settings/dto"
	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

// AdminListSettings returns every runtime setting, ordered by key.
func (s *Service) AdminListSettings() ([]model.Setting, error) {
	settings, err := s.settingStore.FindAll()
	if err != nil {
		return nil, platformservice.WrapInternalError("failed to load settings", err)
	}
	return settings, nil
}

// AdminUpdateSettings validates and writes the batch, then drops the settings cache.
func (s *Service) AdminUpdateSettings(items []moduledto.UpdateSettingRequest) error {
	for _, item := range items {
		if err := validateSettingUpdate(item); err != nil {
			return err
		}
	}

	repoItems := make([]settingsrepo.UpdateSettingItem, 0, len(items))
	for _, item := range items {
		repoItems = append(repoItems, settingsrepo.UpdateSettingItem{
			Key:   item.Key,
			Value: strings.TrimSpace(item.Value),
		})
	}

	if err := s.settingStore.UpdateSettings(repoItems); err != nil {
		return platformservice.WrapInternalError("failed to update settings", err)
	}

	s.ClearCache()
	return nil
}

func validateSettingUpdate(item moduledto.UpdateSettingRequest) error {
	if strings.TrimSpace(item.Key) == "" {
		return platformservice.NewValidationError("setting key must not be empty")
	}

	value := strings.TrimSpace(item.Value)
	switch item.Key {
	case consts.ConfigMaxUploadSize, consts.ConfigMaxRequestBodySize,
		consts.ConfigRateLimitAuthBurst, consts.ConfigRateLimitUploadBurst:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return platformservice.NewValidationError(item.Key + " must be a positive integer")
		}
	case consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitUploadRPS:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return platformservice.NewValidationError(item.Key + " must be a positive number")
		}
	case consts.ConfigAllowRegister, consts.ConfigRateLimitEnabled:
		if _, err := strconv.ParseBool(value); err != nil {
			return platformservice.NewValidationError(item.Key + " must be true or false")
		}
	case consts.ConfigAllowFileExtensions:
		for _, ext := range strings.Split(value, ",") {
			if !strings.HasPrefix(strings.TrimSpace(ext), ".") {
				return platformservice.NewValidationError("extensions must look like .jpg,.png")
			}
		}
	}

	return nil
}
