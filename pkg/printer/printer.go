package printer

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/skynet2/beancount-telegram-importer/pkg/database"
)

type Printer struct {
}

func NewPrinter() *Printer {
	return &Printer{}
}

// Summary renders the statistics of a run followed by the list of written
// destinations for dry runs and the skipped messages.
func (p *Printer) Summary(
	ctx context.Context,
	result *database.RunResult,
) string {
	var sb strings.Builder

	sb.WriteString(p.Stat(ctx, result))

	if result.DryRun {
		sb.WriteString("\n\n")
		sb.WriteString(p.Dry(ctx, result))
	}

	if result.Count(database.OutcomeSkipped) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(p.Skipped(ctx, result))
	}

	return sb.String()
}

func (p *Printer) Stat(
	_ context.Context,
	result *database.RunResult,
) string {
	ledgerCount := result.Count(database.OutcomeLedgerWritten)
	attachmentCount := result.Count(database.OutcomeAttachmentWritten)
	skippedCount := result.Count(database.OutcomeSkipped)
	stagedCount := len(lo.Filter(result.Outcomes, func(o *database.Outcome, _ int) bool {
		return o.Staged
	}))

	var sb strings.Builder

	if result.DryRun {
		sb.WriteString("Dry run: nothing was written 🧪\n")
	}

	sb.WriteString(fmt.Sprintf("Watermark: %v", result.Watermark))
	sb.WriteString(fmt.Sprintf("\nTotal messages: %v", len(result.Outcomes)))
	sb.WriteString(fmt.Sprintf("\nLedger rows: %v 🔥", ledgerCount))
	sb.WriteString(fmt.Sprintf("\nAttachments: %v 📎", attachmentCount))
	sb.WriteString(fmt.Sprintf("\nStaged attachments: %v 📥", stagedCount))
	sb.WriteString(fmt.Sprintf("\nSkipped: %v 🚯", skippedCount))

	if len(result.Removed) > 0 {
		sb.WriteString(fmt.Sprintf("\nRemoved files: %v 🧹", len(result.Removed)))
	}

	if len(result.Outcomes) == 0 {
		sb.WriteString("\n\nNo new messages. 💤")
	} else if skippedCount == 0 {
		sb.WriteString("\n\nAll messages are ok! 🎉")
	}

	return sb.String()
}

func (p *Printer) Dry(
	_ context.Context,
	result *database.RunResult,
) string {
	var sb strings.Builder

	for _, path := range result.Removed {
		sb.WriteString(fmt.Sprintf("Remove: %s\n", path))
	}

	written := lo.Filter(result.Outcomes, func(o *database.Outcome, _ int) bool {
		return o.State != database.OutcomeSkipped
	})

	if len(written) == 0 {
		sb.WriteString("Nothing to write.")
		return sb.String()
	}

	for _, o := range written {
		p.FancyPrintOutcome(o, &sb)
	}

	return sb.String()
}

func (p *Printer) Skipped(
	_ context.Context,
	result *database.RunResult,
) string {
	var sb strings.Builder

	for _, o := range result.Outcomes {
		if o.State != database.OutcomeSkipped {
			continue
		}

		p.FancyPrintOutcome(o, &sb)
	}

	return sb.String()
}

func (p *Printer) Check(
	_ context.Context,
	result *database.CheckResult,
) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Chat: %s (%v) ✅", result.Chat.Title, result.Chat.ID))

	if result.Latest == nil {
		sb.WriteString("\nNo pending messages.")
		sb.WriteString("\nThe bot API only shows messages not yet acknowledged by a sync, use an export to see history.")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("\nLatest message: %v", result.Latest.ID))
	sb.WriteString(fmt.Sprintf("\nDate: %s", result.Latest.Date.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("\nSender: %s", result.Latest.Sender))
	sb.WriteString(fmt.Sprintf("\nText: %s", result.Latest.Text))

	if result.Latest.Attachment != nil {
		sb.WriteString(fmt.Sprintf("\nAttachment: %s", result.Latest.Attachment.FileName))
	}

	return sb.String()
}

func (p *Printer) Journal(
	_ context.Context,
	entries []*database.JournalEntry,
) string {
	if len(entries) == 0 {
		return "Journal is empty."
	}

	var sb strings.Builder

	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("Message: %v [%s]", e.MessageID, e.State))
		if e.Reason != "" {
			sb.WriteString(fmt.Sprintf(" %s", e.Reason))
		}

		sb.WriteString(fmt.Sprintf("\nRun: %s", e.RunID))
		sb.WriteString(fmt.Sprintf("\nDate: %s", e.MessageDate.Format("2006-01-02 15:04")))

		if e.Destination != "" {
			sb.WriteString(fmt.Sprintf("\nDestination: %s", e.Destination))
		}
		if e.Raw != "" {
			sb.WriteString(fmt.Sprintf("\nText: %s", e.Raw))
		}
		if e.Error != "" {
			sb.WriteString(fmt.Sprintf("\nERROR: %s", e.Error))
		}

		sb.WriteString("\n====================\n")
	}

	return sb.String()
}

func (p *Printer) FancyPrintOutcome(o *database.Outcome, sb *strings.Builder) {
	switch o.State {
	case database.OutcomeLedgerWritten:
		sb.WriteString("Ledger: ✅\n")
	case database.OutcomeAttachmentWritten:
		if o.Staged {
			sb.WriteString("Staged: 📥\n")
		} else {
			sb.WriteString("Attachment: 📎\n")
		}
	case database.OutcomeSkipped:
		sb.WriteString(fmt.Sprintf("Skipped (%s): ❌\n", o.Reason))
	}

	sb.WriteString(fmt.Sprintf("Message: %v", o.MessageID))
	sb.WriteString(fmt.Sprintf("\nDate: %s\n", o.MessageDate.Format("2006-01-02 15:04")))

	if o.Destination != "" {
		sb.WriteString(fmt.Sprintf("\nDestination: %s", o.Destination))
	}

	if o.Record != nil {
		sb.WriteString(fmt.Sprintf("\nAccount: %s", o.Record.Account))
		sb.WriteString(fmt.Sprintf("\nAmount: %s%s", database.FormatAmount(o.Record.Amount), o.Record.Currency))
		sb.WriteString(fmt.Sprintf("\nPayee: %s", o.Record.Payee))
		sb.WriteString(fmt.Sprintf("\nDescription: %s", o.Record.Description))
	} else if o.Raw != "" {
		sb.WriteString(fmt.Sprintf("\nText: %s", o.Raw))
	}

	if o.Err != nil {
		sb.WriteString(fmt.Sprintf("\nERROR: %s", o.Err))
	}

	sb.WriteString("\n====================\n")
}
