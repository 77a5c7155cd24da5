// Package device derives browser, OS and device class from a raw
// User-Agent string with fixed substring rules. Pure and total:
// anything unmatched falls back to Unknown/Desktop.
package device

import "strings"

const (
	Unknown = "Unknown"
	Desktop = "Desktop"
	Mobile  = "Mobile"
)

// Info is the classification of one User-Agent string.
type Info struct {
	Browser string
	OS      string
	Device  string
}

// Classify applies the detection rules. Browser precedence matters:
// Chromium-based Edge advertises both "Edg" and "Chrome", and every
// WebKit browser advertises "Safari".
func Classify(userAgent string) Info {
	info := Info{Browser: Unknown, OS: Unknown, Device: Desktop}

	switch {
	case strings.Contains(userAgent, "Edg"):
		info.Browser = "Microsoft Edge"
	case strings.Contains(userAgent, "Chrome"):
		info.Browser = "Google Chrome"
	case strings.Contains(userAgent, "Firefox"):
		info.Browser = "Firefox"
	case strings.Contains(userAgent, "Safari"):
		info.Browser = "Safari"
	}

	switch {
	case strings.Contains(userAgent, "Windows"):
		info.OS = "Windows"
	case strings.Contains(userAgent, "Mac"):
		info.OS = "MacOS"
	case strings.Contains(userAgent, "Android"):
		info.OS = "Android"
	case strings.Contains(userAgent, "iPhone"):
		info.OS = "iOS"
	}

	if strings.Contains(userAgent, "Android") || strings.Contains(userAgent, "iPhone") {
		info.Device = Mobile
	}

	return info
}
