package rules

import (
	"fmt"
	"regexp"
	"strings"

	vouch "github.com/vouch-dev/vouch"
)

// NotEmpty fails for the empty string.
func NotEmpty() vouch.Rule[string] {
	return func(v, name string) string {
		if v != "" {
			return ""
		}
		return fmt.Sprintf("%s must not be empty", name)
	}
}

// Empty fails for anything but the empty string.
func Empty() vouch.Rule[string] {
	return func(v, name string) string {
		if v == "" {
			return ""
		}
		return fmt.Sprintf("%s must be empty", name)
	}
}

// NotBlank fails when the string is empty after trimming whitespace.
func NotBlank() vouch.Rule[string] {
	return func(v, name string) string {
		if strings.TrimSpace(v) != "" {
			return ""
		}
		return fmt.Sprintf("%s must not be blank", name)
	}
}

// MinLen fails when the string is shorter than min bytes.
func MinLen(min int) vouch.Rule[string] {
	return func(v, name string) string {
		if len(v) >= min {
			return ""
		}
		return fmt.Sprintf("%s must be at least %d characters long", name, min)
	}
}

// MaxLen fails when the string is longer than max bytes.
func MaxLen(max int) vouch.Rule[string] {
	return func(v, name string) string {
		if len(v) <= max {
			return ""
		}
		return fmt.Sprintf("%s must be at most %d characters long", name, max)
	}
}

// Length fails unless the string is exactly n bytes long.
func Length(n int) vouch.Rule[string] {
	return func(v, name string) string {
		if len(v) == n {
			return ""
		}
		return fmt.Sprintf("%s must be exactly %d characters long", name, n)
	}
}

// Matches fails when the string does not match the pattern. The pattern is
// compiled once at construction; an invalid pattern is a usage fault.
func Matches(pattern string) vouch.Rule[string] {
	re := regexp.MustCompile(pattern)
	return func(v, name string) string {
		if re.MatchString(v) {
			return ""
		}
		return fmt.Sprintf("%s must match pattern %q", name, pattern)
	}
}

// HasPrefix fails when the string does not start with prefix.
func HasPrefix(prefix string) vouch.Rule[string] {
	return func(v, name string) string {
		if strings.HasPrefix(v, prefix) {
			return ""
		}
		return fmt.Sprintf("%s must start with %q", name, prefix)
	}
}

// HasSuffix fails when the string does not end with suffix.
func HasSuffix(suffix string) vouch.Rule[string] {
	return func(v, name string) string {
		if strings.HasSuffix(v, suffix) {
			return ""
		}
		return fmt.Sprintf("%s must end with %q", name, suffix)
	}
}

// Contains fails when the string does not contain sub.
func Contains(sub string) vouch.Rule[string] {
	return func(v, name string) string {
		if strings.Contains(v, sub) {
			return ""
		}
		return fmt.Sprintf("%s must contain %q", name, sub)
	}
}

// Lowercase fails when the string differs from its lower-case form.
func Lowercase() vouch.Rule[string] {
	return func(v, name string) string {
		if v == strings.ToLower(v) {
			return ""
		}
		return fmt.Sprintf("%s must be lowercase", name)
	}
}

// Uppercase fails when the string differs from its upper-case form.
func Uppercase() vouch.Rule[string] {
	return func(v, name string) string {
		if v == strings.ToUpper(v) {
			return ""
		}
		return fmt.Sprintf("%s must be uppercase", name)
	}
}
