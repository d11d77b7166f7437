package database

import (
	"time"
)

type OutcomeState int32

const (
	OutcomeUnknown           = OutcomeState(0)
	OutcomeLedgerWritten     = OutcomeState(1)
	OutcomeAttachmentWritten = OutcomeState(2)
	OutcomeSkipped           = OutcomeState(3)
)

func (s OutcomeState) String() string {
	switch s {
	case OutcomeLedgerWritten:
		return "ledger-written"
	case OutcomeAttachmentWritten:
		return "attachment-written"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

type SkipReason string

const (
	SkipReasonNone             = SkipReason("")
	SkipReasonUnknownAccount   = SkipReason("unknown-account")
	SkipReasonUnrecognized     = SkipReason("unrecognized")
	SkipReasonDownloadDisabled = SkipReason("download-disabled")
)

type Outcome struct {
	MessageID   int64
	MessageDate time.Time
	Raw         string
	State       OutcomeState
	Reason      SkipReason
	Destination string
	Record      *TransactionRecord
	// Staged is set for attachments that matched no rule.
	Staged bool
	DryRun bool
	Err    error
}

type JournalEntry struct {
	Seq         int64
	RunID       string
	MessageID   int64
	MessageDate time.Time
	State       string
	Reason      string
	Destination string
	Raw         string
	Error       string
	CreatedAt   time.Time
}
