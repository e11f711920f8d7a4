package config

import "os"

// getenv returns the value of key, or def when unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Port returns the HTTP listen port.
func Port() string {
	return getenv("PORT", "8080")
}

// TemplatesDir returns the root directory holding template assets, laid out
// as {category}/{stem}.{png|jpg|jpeg} with optional same-stem .svg overlays.
func TemplatesDir() string {
	return getenv("TEMPLATES_DIR", "public/templates")
}

// TemplatesPublicBase returns the URL prefix under which template assets are
// served to the browser.
func TemplatesPublicBase() string {
	return getenv("TEMPLATES_PUBLIC_BASE", "/templates")
}

// AdminEmail returns the email address granted access to the admin routes.
// When unset, admin routes reject every request.
func AdminEmail() string {
	return os.Getenv("ADMIN_EMAIL")
}

// ImageAPIURL returns the base URL of the external background-generation
// service.
func ImageAPIURL() string {
	return os.Getenv("IMAGE_API_URL")
}
