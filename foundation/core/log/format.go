// File: format.go
// Title: Log Output Formats
// Description: Output format selection, mapped onto logrus formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-12
//
// Change History:
// - 2025-01-24 v0.1.0: JSON, text, console and logfmt formatters
// - 2025-02-12 v0.2.0: Formats delegate to logrus formatters

package log

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Format represents the output format for log entries
type Format int

const (
	// FormatJSON writes one JSON object per entry
	FormatJSON Format = iota

	// FormatText writes key=value text without colors
	FormatText

	// FormatConsole writes colored text for interactive terminals
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text", "logfmt":
		return FormatText, nil
	case "console", "color":
		return FormatConsole, nil
	default:
		return FormatJSON, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// formatter returns the logrus formatter for f
func (f Format) formatter() logrus.Formatter {
	switch f {
	case FormatText:
		return &logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		}
	case FormatConsole:
		return &logrus.TextFormatter{
			ForceColors:     true,
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		}
	default:
		return &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		}
	}
}
