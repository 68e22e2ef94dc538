// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package models

import (
	"strings"
	"time"
)

// ReceivedAtLayout is the timestamp layout prefixed to every received chat
// line, e.g. "[15:04:05 02-01-2006]".
const ReceivedAtLayout = "15:04:05 02-01-2006"

// StampLine prefixes a raw chat line with its receive time. The line is kept
// as is, including any trailing newline.
func StampLine(line string, receivedAt time.Time) string {
	return "[" + receivedAt.Format(ReceivedAtLayout) + "] " + line
}

// DisplayForm returns the line without its trailing line break, ready to be
// shown to the user.
func DisplayForm(line string) string {
	return strings.TrimRight(line, "\r\n")
}

// SanitizeOutbound removes every embedded line break from user text.
// The wire protocol uses line breaks as message delimiters.
func SanitizeOutbound(text string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(text)
}
