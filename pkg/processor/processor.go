package processor

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skynet2/beancount-telegram-importer/pkg/common"
	"github.com/skynet2/beancount-telegram-importer/pkg/database"
)

type Processor struct {
	cfg       *Config
	committer committer
}

func NewProcessor(
	cfg *Config,
) *Processor {
	p := &Processor{
		cfg: cfg,
	}

	if cfg.Options.DryRun {
		p.committer = &dryCommitter{router: cfg.Router}
	} else {
		p.committer = &diskCommitter{router: cfg.Router, transport: cfg.Transport}
	}

	return p
}

// Check verifies that the chat is reachable and returns its latest message.
func (p *Processor) Check(ctx context.Context, chatID int64) (*database.CheckResult, error) {
	chat, err := p.cfg.Transport.FetchEntity(ctx, chatID)
	if err != nil {
		return nil, err
	}

	latest, err := p.cfg.Transport.LatestMessage(ctx, chatID)
	if err != nil {
		return nil, err
	}

	return &database.CheckResult{
		Chat:   chat,
		Latest: latest,
	}, nil
}

// Run processes every message newer than the sync watermark, oldest first.
// Per-message problems end up as skipped outcomes; only transport and write
// failures stop the run. A stopped run is resumed by the next one.
func (p *Processor) Run(
	ctx context.Context,
	chatID int64,
) (*database.RunResult, error) {
	runID := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)

	result := &database.RunResult{
		RunID:     runID,
		ChatID:    chatID,
		DryRun:    p.cfg.Options.DryRun,
		StartedAt: time.Now().UTC(),
	}

	watermark, err := p.startWatermark(ctx, result)
	if err != nil {
		return nil, err
	}

	result.Watermark = watermark
	cursor := watermark

	logger.Info().Int64("watermark", watermark).Bool("dry_run", result.DryRun).
		Msgf("updating messages with ID > %d", watermark)

	err = p.cfg.Transport.IterateMessages(ctx, chatID, watermark, func(msg database.Message) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if msg.ID <= cursor {
			logger.Warn().Int64("message_id", msg.ID).Int64("cursor", cursor).
				Msg("ignoring out of order message")
			return nil
		}

		outcome, processErr := p.ProcessMessage(ctx, msg)
		if processErr != nil {
			return errors.Wrapf(processErr, "message %d", msg.ID)
		}

		cursor = msg.ID
		result.LastID = msg.ID
		result.Outcomes = append(result.Outcomes, outcome)

		p.afterMessage(ctx, runID, chatID, outcome)

		return nil
	})

	result.FinishedAt = time.Now().UTC()

	if err != nil {
		return result, err
	}

	p.notifySummary(ctx, chatID, result)

	return result, nil
}

func (p *Processor) startWatermark(ctx context.Context, result *database.RunResult) (int64, error) {
	if !p.cfg.Options.Force {
		return p.cfg.Watermark.Compute(ctx)
	}

	if p.cfg.Options.DryRun {
		zerolog.Ctx(ctx).Info().Msg("dry run: old files are kept")
		return 0, nil
	}

	zerolog.Ctx(ctx).Info().Msg("cleaning old files")

	removed, err := p.cfg.Router.Reset(ctx)
	result.Removed = removed

	return 0, err
}

// ProcessMessage takes a single message to its terminal state. The returned
// error is set only when committing the result failed.
func (p *Processor) ProcessMessage(
	ctx context.Context,
	msg database.Message,
) (*database.Outcome, error) {
	logger := zerolog.Ctx(ctx).With().Int64("message_id", msg.ID).Logger()

	outcome := &database.Outcome{
		MessageID:   msg.ID,
		MessageDate: msg.Date,
		Raw:         msg.Text,
		DryRun:      p.cfg.Options.DryRun,
	}

	record, err := p.cfg.Parser.Parse(ctx, msg)
	switch {
	case err == nil:
		destination, commitErr := p.committer.WriteRecord(ctx, record)
		if commitErr != nil {
			return nil, commitErr
		}

		outcome.State = database.OutcomeLedgerWritten
		outcome.Destination = destination
		outcome.Record = record

		logger.Debug().Str("file", destination).Msg("ledger row written")

		return outcome, nil
	case errors.Is(err, common.ErrUnknownAccount):
		logger.Warn().Err(err).Str("text", msg.Text).Time("date", msg.Date).Msg("invalid account")

		return skip(outcome, database.SkipReasonUnknownAccount, err), nil
	}

	if msg.Attachment == nil {
		logger.Warn().Err(err).Str("text", msg.Text).Time("date", msg.Date).Msg("invalid message")

		return skip(outcome, database.SkipReasonUnrecognized, err), nil
	}

	if p.cfg.Options.NoDownload {
		logger.Debug().Str("file", msg.Attachment.FileName).Msg("downloads disabled")

		return skip(outcome, database.SkipReasonDownloadDisabled, nil), nil
	}

	destination, err := p.cfg.Classifier.Classify(ctx, msg.Attachment.FileName)
	if err != nil {
		logger.Warn().Err(err).Str("file", msg.Attachment.FileName).Str("text", msg.Text).
			Time("date", msg.Date).Msg("invalid attachment")

		return skip(outcome, database.SkipReasonUnrecognized, err), nil
	}

	actual, err := p.committer.SaveAttachment(ctx, msg, destination.Path)
	if err != nil {
		return nil, err
	}

	outcome.State = database.OutcomeAttachmentWritten
	outcome.Destination = actual
	outcome.Staged = destination.Staged

	logger.Info().Str("file", actual).Bool("staged", destination.Staged).Msg("file downloaded")

	return outcome, nil
}

func skip(outcome *database.Outcome, reason database.SkipReason, err error) *database.Outcome {
	outcome.State = database.OutcomeSkipped
	outcome.Reason = reason
	outcome.Err = err

	return outcome
}

func (p *Processor) afterMessage(
	ctx context.Context,
	runID string,
	chatID int64,
	outcome *database.Outcome,
) {
	if p.cfg.Options.DryRun {
		return
	}

	if p.cfg.Journal != nil {
		if err := p.cfg.Journal.Record(ctx, runID, outcome); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Int64("message_id", outcome.MessageID).
				Msg("failed to record outcome")
		}
	}

	if p.cfg.NotificationSvc == nil || p.cfg.Options.Reaction == "" || outcome.State == database.OutcomeSkipped {
		return
	}

	if err := p.cfg.NotificationSvc.React(ctx, chatID, outcome.MessageID, p.cfg.Options.Reaction); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to react to message")
	}
}

func (p *Processor) notifySummary(ctx context.Context, chatID int64, result *database.RunResult) {
	if p.cfg.Options.DryRun || !p.cfg.Options.NotifySummary ||
		p.cfg.NotificationSvc == nil || p.cfg.Printer == nil {
		return
	}

	if err := p.cfg.NotificationSvc.SendMessage(ctx, chatID, p.cfg.Printer.Summary(ctx, result)); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to send summary")
	}
}
