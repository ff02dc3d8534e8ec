// Package utils provides common utility functions.
package utils

import "net/url"

// IsAbsoluteURL reports whether s is a well-formed absolute http or
// https URL. Sentinel values and relative paths fail the check and are
// rendered as plain text.
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}
