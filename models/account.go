// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package models

// Account is the authenticated identity issued by the chat service for one
// write-channel connection.
//
// An Account is valid only for the lifetime of the connection whose
// handshake produced it. After a disconnect it is discarded and a fresh one
// is obtained by running the handshake again.
type Account struct {
	// Nickname is the display name the service assigned to the user.
	Nickname string `json:"nickname"`

	// AccountHash is the opaque credential. It is persisted as the token
	// and sent back on the next login.
	AccountHash string `json:"account_hash"`
}

// IsComplete reports whether both identity fields were provided.
func (a Account) IsComplete() bool {
	return a.Nickname != "" && a.AccountHash != ""
}
