package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/logging"
	"github.com/Dishalex/PhotoShare/internal/model"

	"gorm.io/gorm"
)

const valueNotFound = "||__NOT_FOUND__||"

var DefaultSettings = []model.Setting{
	{Key: consts.ConfigSiteName, Value: "PhotoShare", Desc: "Site name"},
	{Key: consts.ConfigAllowRegister, Value: "true", Desc: "Whether signup is open (true/false)"},
	{Key: consts.ConfigMaxUploadSize, Value: "10", Desc: "Max image size (MB)"},
	{Key: consts.ConfigAllowFileExtensions, Value: ".jpg,.jpeg,.png,.gif,.webp", Desc: "Allowed upload extensions"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "Per-IP rate limiting"},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "0.5", Desc: "Auth endpoints requests per second"},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "5", Desc: "Auth endpoints burst"},
	{Key: consts.ConfigRateLimitUploadRPS, Value: "1.0", Desc: "Upload and transform endpoints requests per second"},
	{Key: consts.ConfigRateLimitUploadBurst, Value: "5", Desc: "Upload and transform endpoints burst"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "Max non-upload request body (MB)"},
}

// InitializeSettings writes missing defaults and drops keys the application no longer knows.
func (s *AppService) InitializeSettings() error {
	if err := s.settingStore.InitializeDefaults(DefaultSettings); err != nil {
		return fmt.Errorf("initialize settings: %w", err)
	}
	keys := make([]string, 0, len(DefaultSettings))
	for _, def := range DefaultSettings {
		keys = append(keys, def.Key)
	}
	if err := s.settingStore.DeleteNotInKeys(keys); err != nil {
		return fmt.Errorf("prune settings: %w", err)
	}
	s.ClearCache()
	return nil
}

func (s *AppService) ClearCache() {
	s.settingsCache.Range(func(key, _ any) bool {
		s.settingsCache.Delete(key)
		return true
	})
}

// GetString returns the setting value, inserting the default row on first use. Unknown keys
// yield "" and are remembered as missing until the cache is cleared.
func (s *AppService) GetString(key string) string {
	if val, ok := s.settingsCache.Load(key); ok {
		if strVal, ok := val.(string); ok {
			if strVal == valueNotFound {
				return ""
			}
			return strVal
		}
		s.settingsCache.Delete(key)
	}

	setting, err := s.settingStore.FindByKey(key)
	if err == nil {
		s.settingsCache.Store(key, setting.Value)
		return setting.Value
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Warn().Err(err).Str("key", key).Msg("read setting failed, using default")
	}

	for _, def := range DefaultSettings {
		if def.Key != key {
			continue
		}
		row := def
		// a concurrent insert of the same key is harmless
		if cerr := s.settingStore.Create(&row); cerr != nil {
			logging.Debug().Err(cerr).Str("key", key).Msg("default setting not persisted")
		}
		s.settingsCache.Store(key, row.Value)
		return row.Value
	}

	s.settingsCache.Store(key, valueNotFound)
	return ""
}

func (s *AppService) GetInt(key string) int {
	val, err := strconv.Atoi(s.GetString(key))
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetInt64(key string) int64 {
	val, err := strconv.ParseInt(s.GetString(key), 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetFloat64(key string) float64 {
	val, err := strconv.ParseFloat(s.GetString(key), 64)
	if err != nil {
		return 0
	}
	return val
}

// GetBool accepts anything strconv.ParseBool does; other values read as false.
func (s *AppService) GetBool(key string) bool {
	val, err := strconv.ParseBool(s.GetString(key))
	if err != nil {
		return false
	}
	return val
}
