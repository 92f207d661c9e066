package utils

import (
	"strconv"
	"strings"
	"time"
)

// Retry runs fn up to attempts times, sleeping delay between failures,
// and returns the last error when every attempt fails. It covers the
// startup race where data is requested before the backing store is ready;
// retries are bounded so a real outage still surfaces quickly.
func Retry(attempts int, delay time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i < attempts-1 {
			time.Sleep(delay)
		}
	}
	return err
}

// ParseIntDefault parses a non-negative integer, falling back to def.
func ParseIntDefault(s string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && v >= 0 {
		return v
	}
	return def
}
