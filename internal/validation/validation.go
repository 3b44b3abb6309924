// Package validation checks user-supplied configuration values.
package validation

import (
	"net/url"
	"strings"
)

// ValidateURL checks that a URL is absolute and uses http or https.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidateOrigins checks a comma-separated CORS origin list. Each origin is a
// scheme and host with no path.
func ValidateOrigins(list string) (bool, string) {
	for _, origin := range strings.Split(list, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			return false, "wildcard origin cannot be combined with credentials"
		}
		if valid, msg := ValidateURL(origin); !valid {
			return false, origin + ": " + msg
		}
		u, _ := url.Parse(origin)
		if u.Path != "" && u.Path != "/" {
			return false, origin + ": origin must not contain a path"
		}
	}
	return true, ""
}

// ValidateRedisURL checks that a URL uses a scheme go-redis can dial.
func ValidateRedisURL(urlStr string) (bool, string) {
	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}
	switch strings.ToLower(u.Scheme) {
	case "redis", "rediss", "unix":
		return true, ""
	default:
		return false, "URL must use redis://, rediss:// or unix:// scheme"
	}
}
