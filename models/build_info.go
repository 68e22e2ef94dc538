// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package models

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const notAvailable = "N/A"

// BuildInfo names a binary and carries the release metadata injected with
// -ldflags. It is printed by --version, logged at start and shown in the
// chat window.
type BuildInfo struct {
	App     string
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo returns build info for app; blank metadata becomes "N/A".
func NewBuildInfo(app, version, date, commit string) BuildInfo {
	return BuildInfo{
		App:     app,
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// String renders the one-line --version output.
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", b.App, b.Version, b.Commit, b.Date)
}

// MarshalZerologObject adds the build fields to a log entry.
func (b BuildInfo) MarshalZerologObject(e *zerolog.Event) {
	e.Str("app", b.App).
		Str("version", b.Version).
		Str("build_date", b.Date).
		Str("build_commit", b.Commit)
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
