package processor

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skynet2/beancount-telegram-importer/pkg/database"
)

// committer performs the only step that differs between dry and live runs.
type committer interface {
	WriteRecord(ctx context.Context, record *database.TransactionRecord) (string, error)
	SaveAttachment(ctx context.Context, msg database.Message, destination string) (string, error)
}

type diskCommitter struct {
	router    LedgerRouter
	transport Transport
}

func (d *diskCommitter) WriteRecord(ctx context.Context, record *database.TransactionRecord) (string, error) {
	return d.router.Append(ctx, record)
}

func (d *diskCommitter) SaveAttachment(
	ctx context.Context,
	msg database.Message,
	destination string,
) (string, error) {
	return d.transport.DownloadAttachment(ctx, msg, destination)
}

type dryCommitter struct {
	router LedgerRouter
}

func (d *dryCommitter) WriteRecord(ctx context.Context, record *database.TransactionRecord) (string, error) {
	target, err := d.router.Path(record.Account, record.TransactionDate.Year)
	if err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Info().Str("file", target).Strs("row", record.Row()).Msg("dry run: ledger row")

	return target, nil
}

func (d *dryCommitter) SaveAttachment(
	ctx context.Context,
	msg database.Message,
	destination string,
) (string, error) {
	zerolog.Ctx(ctx).Info().Int64("message_id", msg.ID).Str("file", destination).
		Msg("dry run: attachment")

	return destination, nil
}
