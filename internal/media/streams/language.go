package streams

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayLanguage returns a human-readable English name for a language code
// found in stream metadata or a configured tag (e.g. "eng" -> "English").
// Unrecognized values yield an empty string; this is presentation only and
// never feeds file names.
func DisplayLanguage(tag string) string {
	code := tag
	if i := strings.IndexByte(code, '-'); i > 0 {
		code = code[:i]
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	parsed, err := language.Parse(code)
	if err != nil {
		return ""
	}
	name := display.English.Languages().Name(parsed)
	if strings.EqualFold(name, code) {
		return ""
	}
	return name
}
