package utils

import (
	"log"
	"strconv"
	"strings"
)

// GoSafe runs the given function in a new goroutine and recovers from any panic.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Panic Recovered] %v", r)
			}
		}()
		fn()
	}()
}

// NonEmptyLines splits text into lines and drops blank ones.
func NonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// FormatAmount renders a float without trailing zeros, matching how amounts
// are echoed back to the user.
func FormatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
