// Package locale derives text direction from a locale tag.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// rtlScripts are ISO 15924 codes of scripts written right to left.
var rtlScripts = map[string]bool{
	"Adlm": true,
	"Arab": true,
	"Hebr": true,
	"Mand": true,
	"Nkoo": true,
	"Rohg": true,
	"Samr": true,
	"Syrc": true,
	"Thaa": true,
}

// IsRightToLeft reports whether tag is written right to left. Tags may use
// BCP 47 ("ar-EG") or POSIX ("he_IL.UTF-8") form. Unparseable tags are
// treated as left to right.
func IsRightToLeft(tag string) bool {
	t, err := Parse(tag)
	if err != nil || t == language.Und {
		return false
	}
	script, conf := t.Script()
	if conf == language.No {
		return false
	}
	return rtlScripts[script.String()]
}

// Parse converts a BCP 47 or POSIX locale string into a language tag.
func Parse(tag string) (language.Tag, error) {
	tag = posixToBCP47(tag)
	if tag == "" {
		return language.Und, nil
	}
	return language.Parse(tag)
}

// FromEnv returns the locale from the standard environment variables, in
// POSIX precedence order.
func FromEnv() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// posixToBCP47 strips encoding and modifier suffixes and swaps underscores.
// "C" and "POSIX" carry no language.
func posixToBCP47(s string) string {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}
