package utils

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Detect potentially dangerous characters - more focused on injection patterns
var dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

// ValidateYear parses a four digit year.
func ValidateYear(s string) (int, error) {
	if s == "" {
		return 0, errors.New("year cannot be empty")
	}

	if len(s) != 4 {
		return 0, errors.New("year must have four digits")
	}

	// Atoi alone would take a sign
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, errors.New("year must be a number")
		}
	}

	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("year must be a number")
	}

	return year, nil
}

// ValidateLimit parses a ranking size. Empty means def; zero means all.
func ValidateLimit(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("limit must be a number")
	}

	if n < 0 {
		return 0, errors.New("limit must be non-negative")
	}

	if n > 100 {
		return 0, errors.New("limit too large (max 100)")
	}

	return n, nil
}

// ValidateName validates a country or cause label taken from a request.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("name too long (max 100 characters)")
	}

	if dangerousPattern.MatchString(name) {
		return errors.New("name contains invalid characters")
	}

	return nil
}
