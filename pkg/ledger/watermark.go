package ledger

import (
	"context"
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog"
)

const defaultPoolSize = 8

type Watermark struct {
	router   *Router
	poolSize int
}

func NewWatermark(router *Router) *Watermark {
	return &Watermark{
		router:   router,
		poolSize: defaultPoolSize,
	}
}

// Compute returns the highest message id stored in any ledger file, or 0
// when there are none. It returns only after every file was scanned.
func (w *Watermark) Compute(ctx context.Context) (int64, error) {
	var files []string

	for _, account := range w.router.Accounts() {
		accountFiles, err := w.router.Files(account)
		if err != nil {
			return 0, err
		}

		files = append(files, accountFiles...)
	}

	var (
		mut      sync.Mutex
		highest  int64
		finalErr error
	)

	pool := workerpool.New(w.poolSize)

	for _, f := range files {
		file := f

		pool.Submit(func() {
			id, err := ScanFile(ctx, file)

			mut.Lock()
			defer mut.Unlock()

			if err != nil {
				finalErr = errors.Join(finalErr, err)
				return
			}

			if id > highest {
				highest = id
			}
		})
	}

	pool.StopWait()

	if finalErr != nil {
		return 0, finalErr
	}

	zerolog.Ctx(ctx).Info().Int("files", len(files)).Int64("watermark", highest).
		Msg("computed sync watermark")

	return highest, nil
}

// ScanFile returns the highest id found in the data rows of a ledger file.
// A missing or empty file yields 0.
func ScanFile(ctx context.Context, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}

		return 0, errors.WithStack(err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	reader.Comma = fieldSeparator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	var highest int64
	line := 0

	for {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return 0, errors.Wrapf(readErr, "failed to read %s", path)
		}

		line++
		if line == 1 { // header
			continue
		}

		id, convErr := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
		if convErr != nil {
			zerolog.Ctx(ctx).Warn().Str("file", path).Int("line", line).
				Str("id", row[0]).Msg("ignoring row with invalid id")
			continue
		}

		if id > highest {
			highest = id
		}
	}

	return highest, nil
}
