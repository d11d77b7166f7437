package ledger

import (
	"bytes"
	"context"
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/skynet2/beancount-telegram-importer/pkg/common"
	"github.com/skynet2/beancount-telegram-importer/pkg/database"
)

const (
	fieldSeparator = ';'
	fileDateInfix  = "-12-31-"
	fileSuffix     = "_Transactions_TelegramBot.csv"
	yearDigits     = 4

	dirPerm  = 0o755
	filePerm = 0o644
)

type Router struct {
	accounts   common.AccountMapping
	rootFolder string
}

func NewRouter(
	accounts common.AccountMapping,
	rootFolder string,
) *Router {
	return &Router{
		accounts:   accounts,
		rootFolder: rootFolder,
	}
}

func (r *Router) Accounts() []string {
	return r.accounts.Accounts()
}

// Folder returns the directory holding every file of the account.
func (r *Router) Folder(account string) (string, error) {
	segments, ok := r.accounts.FolderSegments(account)
	if !ok {
		return "", errors.Wrapf(common.ErrAccountNotFound, "account %s", account)
	}

	return filepath.Join(append([]string{r.rootFolder}, segments...)...), nil
}

// Path returns <root>/<account folder>/<year>-12-31-<account>_Transactions_TelegramBot.csv.
func (r *Router) Path(account string, year int) (string, error) {
	folder, err := r.Folder(account)
	if err != nil {
		return "", err
	}

	return filepath.Join(folder, fileName(account, year)), nil
}

func fileName(account string, year int) string {
	return strconv.Itoa(year) + fileDateInfix + strings.ReplaceAll(account, " ", "") + fileSuffix
}

// Files lists the existing ledger files of the account, all years, sorted.
func (r *Router) Files(account string) ([]string, error) {
	folder, err := r.Folder(account)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	suffix := fileDateInfix + strings.ReplaceAll(account, " ", "") + fileSuffix

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}

		if _, convErr := strconv.Atoi(strings.TrimSuffix(name, suffix)); convErr != nil ||
			len(name)-len(suffix) != yearDigits {
			continue
		}

		files = append(files, filepath.Join(folder, name))
	}

	sort.Strings(files)

	return files, nil
}

// Append writes the record to the ledger file of its account and year. A new
// file gets the header first. The row is written with a single call so an
// interrupted run never leaves half a row behind.
func (r *Router) Append(
	ctx context.Context,
	record *database.TransactionRecord,
) (string, error) {
	target, err := r.Path(record.Account, record.TransactionDate.Year)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return "", errors.WithStack(err)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	needHeader := err == nil

	switch {
	case needHeader:
		zerolog.Ctx(ctx).Info().Str("file", target).Msg("creating ledger file")
	case errors.Is(err, fs.ErrExist):
		f, err = os.OpenFile(target, os.O_WRONLY|os.O_APPEND, filePerm)
		if err != nil {
			return "", errors.WithStack(err)
		}

		// a run killed right after creating the file leaves it empty
		info, statErr := f.Stat()
		if statErr != nil {
			_ = f.Close()
			return "", errors.WithStack(statErr)
		}

		needHeader = info.Size() == 0
	default:
		return "", errors.WithStack(err)
	}

	rows := [][]string{record.Row()}
	if needHeader {
		rows = append([][]string{database.LedgerHeader}, rows...)
	}

	data, err := encodeRows(rows)
	if err != nil {
		_ = f.Close()
		return "", err
	}

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return "", errors.Wrapf(err, "failed to write %s", target)
	}

	if err = f.Close(); err != nil {
		return "", errors.WithStack(err)
	}

	return target, nil
}

// Reset removes every ledger file of every mapped account.
func (r *Router) Reset(ctx context.Context) ([]string, error) {
	var removed []string

	for _, account := range r.accounts.Accounts() {
		files, err := r.Files(account)
		if err != nil {
			return removed, err
		}

		for _, file := range files {
			zerolog.Ctx(ctx).Info().Str("file", file).Msg("deleting ledger file")

			if err = os.Remove(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return removed, errors.WithStack(err)
			}

			removed = append(removed, file)
		}
	}

	return removed, nil
}

func encodeRows(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)
	writer.Comma = fieldSeparator

	if err := writer.WriteAll(rows); err != nil {
		return nil, errors.WithStack(err)
	}

	return buf.Bytes(), nil
}
