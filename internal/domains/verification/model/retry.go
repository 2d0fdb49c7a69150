package model

import (
	"regexp"
	"strconv"
)

var retryAfterPattern = regexp.MustCompile(`(\d+)`)

// ParseRetryAfter extracts a retry-after duration, in seconds, from an
// upstream rate-limit message such as "too many requests, retry after 120
// seconds". The first integer found wins; messages without one fall back to
// the given default.
func ParseRetryAfter(message string, fallbackSeconds int) int {
	match := retryAfterPattern.FindString(message)
	if match == "" {
		return fallbackSeconds
	}

	seconds, err := strconv.Atoi(match)
	if err != nil || seconds <= 0 {
		return fallbackSeconds
	}

	return seconds
}
