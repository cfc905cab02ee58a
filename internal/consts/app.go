package consts

const (
	ApplicationName    = "PhotoShare"
	ApplicationVersion = "1.0.0"

	// TokenIssuer is written into the iss claim of every JWT we sign.
	TokenIssuer = "photoshare"
)
