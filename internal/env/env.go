// Package env reads configuration switches from environment variables.
//
// A variable that is unset, or set to only whitespace, is treated as not given, so the caller's default applies.
package env

import (
	"os"
	"slices"
	"strings"
)

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" by [Bool].
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" by [Bool].
)

// Val returns the trimmed value of the variable key, or defaultVal if it's unset or blank.
func Val(key string, defaultVal string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

// Given reports whether key is set to something other than whitespace.
func Given(key string) bool {
	return len(Val(key, "")) > 0
}

// BoolIf translates the variable key to a boolean, by finding its value in one of the slices in translation.
// Values are compared case-insensitively.
// The defaultVal is returned if the variable is unset, blank, or found in neither slice.
func BoolIf(key string, defaultVal bool, translation map[bool][]string) bool {
	val := Val(key, "")
	if len(val) == 0 {
		return defaultVal
	}
	matches := func(candidate string) bool {
		return strings.EqualFold(val, candidate)
	}
	switch {
	case slices.ContainsFunc(translation[true], matches):
		return true
	case slices.ContainsFunc(translation[false], matches):
		return false
	default:
		return defaultVal
	}
}

// Bool translates the variable key to a boolean using [DefaultTrue] and [DefaultFalse].
func Bool(key string, defaultVal bool) bool {
	return BoolIf(key, defaultVal, map[bool][]string{
		true:  DefaultTrue,
		false: DefaultFalse,
	})
}
