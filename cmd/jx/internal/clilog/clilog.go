// Copyright 2025 easymvp
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package clilog selects a [slog.Handler] for the jx CLI.
package clilog

import (
	"errors"
	"io"
	"log/slog"
	"strings"
)

// Format is the log output format.
type Format string

const (
	// FormatText outputs human-readable key=value lines.
	FormatText Format = "text"
	// FormatJSON outputs one JSON object per line.
	FormatJSON Format = "json"
)

// ErrUnknownLogFormat indicates an unrecognized log format string.
var ErrUnknownLogFormat = errors.New("unknown log format")

// New creates a [slog.Handler] for the given writer, verbosity, and format
// string. Verbose selects [slog.LevelDebug]; otherwise [slog.LevelWarn].
func New(w io.Writer, verbose bool, format string) (slog.Handler, error) {
	lvl := slog.LevelWarn
	if verbose {
		lvl = slog.LevelDebug
	}

	logFmt, err := parseFormat(format)
	if err != nil {
		return nil, err
	}

	return createHandler(w, lvl, logFmt), nil
}

func createHandler(w io.Writer, lvl slog.Level, logFmt Format) slog.Handler {
	switch logFmt {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	case FormatText:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	}

	return nil
}

func parseFormat(format string) (Format, error) {
	if format == "" {
		return FormatText, nil
	}

	logFmt := Format(strings.ToLower(format))
	if logFmt == FormatJSON || logFmt == FormatText {
		return logFmt, nil
	}

	return "", ErrUnknownLogFormat
}
