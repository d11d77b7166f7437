package processor

import (
	"context"

	"github.com/skynet2/beancount-telegram-importer/pkg/attachment"
	"github.com/skynet2/beancount-telegram-importer/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package processor_test -source=interfaces.go

type Transport interface {
	FetchEntity(ctx context.Context, chatID int64) (*database.Chat, error)
	LatestMessage(ctx context.Context, chatID int64) (*database.Message, error)
	IterateMessages(
		ctx context.Context,
		chatID int64,
		minID int64,
		fn func(msg database.Message) error,
	) error
	DownloadAttachment(
		ctx context.Context,
		msg database.Message,
		destination string,
	) (string, error)
}

type RecordParser interface {
	Parse(ctx context.Context, msg database.Message) (*database.TransactionRecord, error)
}

type AttachmentClassifier interface {
	Classify(ctx context.Context, fileName string) (*attachment.Destination, error)
}

type LedgerRouter interface {
	Path(account string, year int) (string, error)
	Append(ctx context.Context, record *database.TransactionRecord) (string, error)
	Reset(ctx context.Context) ([]string, error)
}

type Watermark interface {
	Compute(ctx context.Context) (int64, error)
}

type Journal interface {
	Record(ctx context.Context, runID string, outcome *database.Outcome) error
}

type NotificationSvc interface {
	React(
		ctx context.Context,
		chatID int64,
		messageID int64,
		reaction string,
	) error

	SendMessage(
		ctx context.Context,
		chatID int64,
		text string,
	) error
}

type Printer interface {
	Summary(ctx context.Context, result *database.RunResult) string
}
