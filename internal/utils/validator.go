package utils

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/Dishalex/PhotoShare/internal/consts"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	digitsPattern   = regexp.MustCompile(`^[0-9]+$`)
	passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9[:punct:]]+$`)
	letterPattern   = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
	tagPattern      = regexp.MustCompile(`^[\p{L}\p{N}_-]+$`)
)

// ValidateUsername checks if the username meets the requirements.
func ValidateUsername(username string) (bool, string) {
	if len(username) < 3 || len(username) > 50 {
		return false, "username must be 3 to 50 characters"
	}
	if !usernamePattern.MatchString(username) {
		return false, "username may only contain letters, digits and underscores"
	}
	if digitsPattern.MatchString(username) {
		return false, "username must not be all digits"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements.
// Returns true if valid, otherwise false and an error message.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 || len(password) > 64 {
		return false, "password must be 8 to 64 characters"
	}
	if !passwordPattern.MatchString(password) {
		return false, "password may only contain letters, digits and symbols"
	}
	if !letterPattern.MatchString(password) || !digitPattern.MatchString(password) {
		return false, "password must contain at least one letter and one digit"
	}
	return true, ""
}

// NormalizeTagName lowercases and trims a tag.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidTagName reports whether an already normalized name may be stored.
func ValidTagName(name string) bool {
	return name != "" && len([]rune(name)) <= consts.MaxTagNameLength && tagPattern.MatchString(name)
}

// ParseTagList splits a comma or whitespace separated list into unique normalized names,
// keeping first-seen order. A leading '#' is dropped.
func ParseTagList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	seen := make(map[string]struct{}, len(fields))
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		name := NormalizeTagName(strings.TrimPrefix(f, "#"))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		tags = append(tags, name)
	}
	return tags
}

var allowedImageTypes = map[string]map[string]bool{
	"image/jpeg": {".jpg": true, ".jpeg": true},
	"image/png":  {".png": true},
	"image/gif":  {".gif": true},
	"image/webp": {".webp": true},
}

// ValidateImageContent checks that the sniffed content type matches the extension.
func ValidateImageContent(data []byte, ext string) (bool, string) {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	contentType := http.DetectContentType(head)

	if exts, ok := allowedImageTypes[contentType]; ok && exts[strings.ToLower(ext)] {
		return true, ""
	}
	return false, "file content (" + contentType + ") does not match extension " + ext
}
