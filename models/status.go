// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package models

import "fmt"

// ConnectionState is the lifecycle state of a single logical channel
// (read or send). Every channel starts at ConnectionInitiated.
type ConnectionState int

const (
	ConnectionInitiated ConnectionState = iota
	ConnectionEstablished
	ConnectionClosed
)

func (s ConnectionState) String() string {
	switch s {
	case ConnectionInitiated:
		return "устанавливаем соединение"
	case ConnectionEstablished:
		return "соединение установлено"
	case ConnectionClosed:
		return "соединение закрыто"
	default:
		return fmt.Sprintf("ConnectionState(%d)", int(s))
	}
}

// StatusKind tags the variant held by a [StatusEvent].
type StatusKind int

const (
	ReadStateChanged StatusKind = iota
	SendStateChanged
	NicknameReceived
)

func (k StatusKind) String() string {
	switch k {
	case ReadStateChanged:
		return "read_state_changed"
	case SendStateChanged:
		return "send_state_changed"
	case NicknameReceived:
		return "nickname_received"
	default:
		return fmt.Sprintf("StatusKind(%d)", int(k))
	}
}

// StatusEvent is a tagged variant observed by the presentation layer.
// State is meaningful for ReadStateChanged and SendStateChanged,
// Nickname for NicknameReceived.
type StatusEvent struct {
	Kind     StatusKind
	State    ConnectionState
	Nickname string
}

// NewReadStateChanged builds a ReadStateChanged event.
func NewReadStateChanged(state ConnectionState) StatusEvent {
	return StatusEvent{Kind: ReadStateChanged, State: state}
}

// NewSendStateChanged builds a SendStateChanged event.
func NewSendStateChanged(state ConnectionState) StatusEvent {
	return StatusEvent{Kind: SendStateChanged, State: state}
}

// NewNicknameReceived builds a NicknameReceived event.
func NewNicknameReceived(nickname string) StatusEvent {
	return StatusEvent{Kind: NicknameReceived, Nickname: nickname}
}
