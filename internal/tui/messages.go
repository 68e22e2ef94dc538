package tui

import "github.com/MarlyasDad/cheat-chat/models"

// displayLineMsg is a line taken from the display queue.
type displayLineMsg string

// statusEventMsg is an event taken from the status queue.
type statusEventMsg models.StatusEvent

// fatalErrorMsg carries the error that stopped the background workers.
type fatalErrorMsg struct {
	err error
}

// queueClosedMsg is produced when a queue wait ends because the
// application context is done.
type queueClosedMsg struct{}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
