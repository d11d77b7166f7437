package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/skynet2/beancount-telegram-importer/pkg/common"
	"github.com/skynet2/beancount-telegram-importer/pkg/database"
)

const (
	resultFile      = "result.json"
	messageType     = "message"
	exportDateStamp = "2006-01-02T15:04:05"
)

// Export reads a chat exported by Telegram Desktop (a folder with result.json
// and the files it references).
type Export struct {
	dir string
}

func NewExport(dir string) *Export {
	return &Export{
		dir: dir,
	}
}

func (e *Export) load() (*chatExport, error) {
	f, err := os.Open(filepath.Join(e.dir, resultFile))
	if err != nil {
		return nil, errors.Mark(errors.WithStack(err), common.ErrTransport)
	}
	defer func() {
		_ = f.Close()
	}()

	var data chatExport
	if err = json.NewDecoder(f).Decode(&data); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "invalid %s", resultFile), common.ErrTransport)
	}

	return &data, nil
}

func (e *Export) FetchEntity(_ context.Context, _ int64) (*database.Chat, error) {
	data, err := e.load()
	if err != nil {
		return nil, err
	}

	return &database.Chat{
		ID:    data.ID,
		Title: data.Name,
	}, nil
}

func (e *Export) messages(ctx context.Context) ([]database.Message, error) {
	data, err := e.load()
	if err != nil {
		return nil, err
	}

	raw := lo.Filter(data.Messages, func(m exportMessage, _ int) bool {
		return m.Type == messageType
	})

	sort.SliceStable(raw, func(i, j int) bool {
		return raw[i].ID < raw[j].ID
	})

	messages := make([]database.Message, 0, len(raw))
	for _, m := range raw {
		msg, convErr := toMessage(m)
		if convErr != nil {
			zerolog.Ctx(ctx).Warn().Err(convErr).Int64("message_id", m.ID).Msg("skipping export message")
			continue
		}

		messages = append(messages, msg)
	}

	return messages, nil
}

func (e *Export) IterateMessages(
	ctx context.Context,
	_ int64,
	minID int64,
	fn func(msg database.Message) error,
) error {
	messages, err := e.messages(ctx)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		if msg.ID <= minID {
			continue
		}

		if err = ctx.Err(); err != nil {
			return err
		}

		if err = fn(msg); err != nil {
			return err
		}
	}

	return nil
}

func (e *Export) LatestMessage(ctx context.Context, _ int64) (*database.Message, error) {
	messages, err := e.messages(ctx)
	if err != nil {
		return nil, err
	}

	if len(messages) == 0 {
		return nil, nil
	}

	return &messages[len(messages)-1], nil
}

// DownloadAttachment copies the exported file to destination.
func (e *Export) DownloadAttachment(
	_ context.Context,
	msg database.Message,
	destination string,
) (string, error) {
	if msg.Attachment == nil {
		return "", errors.Newf("message %d has no attachment", msg.ID)
	}

	src, err := os.Open(filepath.Join(e.dir, filepath.FromSlash(msg.Attachment.FileID)))
	if err != nil {
		return "", errors.Mark(errors.WithStack(err), common.ErrTransport)
	}
	defer func() {
		_ = src.Close()
	}()

	if err = common.WriteFile(destination, src); err != nil {
		return "", err
	}

	return destination, nil
}

func toMessage(m exportMessage) (database.Message, error) {
	msg := database.Message{
		ID:     m.ID,
		Sender: m.From,
		Text:   string(m.Text),
	}

	if m.DateUnixTime != "" {
		unix, err := strconv.ParseInt(m.DateUnixTime, 10, 64)
		if err != nil {
			return msg, errors.Wrapf(err, "invalid date_unixtime %q", m.DateUnixTime)
		}

		msg.Date = time.Unix(unix, 0).UTC()
	} else {
		// date is the exporting machine's wall clock without a zone, read as
		// UTC it can be off by the zone offset
		parsed, err := time.Parse(exportDateStamp, m.Date)
		if err != nil {
			return msg, errors.Wrapf(err, "invalid date %q", m.Date)
		}

		msg.Date = parsed
	}

	// files skipped by the exporter are replaced by a "(File not included...)" note
	if m.File != "" && !strings.HasPrefix(m.File, "(") {
		name := m.FileName
		if name == "" {
			name = filepath.Base(filepath.FromSlash(m.File))
		}

		msg.Attachment = &database.Attachment{
			FileID:   m.File,
			FileName: name,
			MimeType: m.MimeType,
		}
	}

	return msg, nil
}
