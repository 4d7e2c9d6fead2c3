// Package util provides common utilities: logging helpers, path
// resolution, and small generic conveniences.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}
