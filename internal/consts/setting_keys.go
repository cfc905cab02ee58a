package consts

const (

	// ConfigSiteName site display name
	ConfigSiteName = "site_name"

	// ConfigAllowRegister whether signup is open (true/false)
	ConfigAllowRegister = "allow_register"

	// ConfigMaxUploadSize max image upload size (MB)
	ConfigMaxUploadSize = "max_upload_size"

	// ConfigAllowFileExtensions allowed upload extensions (comma separated)
	ConfigAllowFileExtensions = "allow_file_extensions"

	// ConfigRateLimitEnabled toggles the per-IP limiter
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitAuthRPS auth endpoints RPS
	ConfigRateLimitAuthRPS = "rate_limit_auth_rps"

	// ConfigRateLimitAuthBurst auth endpoints burst
	ConfigRateLimitAuthBurst = "rate_limit_auth_burst"

	// ConfigRateLimitUploadRPS upload and transform endpoints RPS
	ConfigRateLimitUploadRPS = "rate_limit_upload_rps"

	// ConfigRateLimitUploadBurst upload and transform endpoints burst
	ConfigRateLimitUploadBurst = "rate_limit_upload_burst"

	// ConfigMaxRequestBodySize max non-upload request body (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"
)
