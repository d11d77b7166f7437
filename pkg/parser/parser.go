package parser

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"

	"github.com/skynet2/beancount-telegram-importer/pkg/common"
	"github.com/skynet2/beancount-telegram-importer/pkg/database"
)

const (
	fieldSeparator = ";"
	minFieldsCount = 5
	amountParts    = 2
	tagFieldIndex  = 5
)

// Numeric layouts use unpadded fields, which accept padded input too.
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"20060102",
	"2.1.2006",
	"2006-1-2T15:04:05",
	"2006-1-2 15:04:05",
	time.RFC3339,
	"Jan 2 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"2 January 2006",
}

type Parser struct {
	accounts common.AccountMapping
}

func NewParser(accounts common.AccountMapping) *Parser {
	return &Parser{
		accounts: accounts,
	}
}

// Parse turns "date; account; payee; description; amount currency[; tag]"
// into a record. Errors are marked with common.ErrStructural when the text
// is not a transaction and common.ErrUnknownAccount when the account is not
// mapped.
func (p *Parser) Parse(
	_ context.Context,
	msg database.Message,
) (*database.TransactionRecord, error) {
	fields := strings.Split(msg.Text, fieldSeparator)
	if len(fields) < minFieldsCount {
		return nil, errors.Wrapf(common.ErrStructural, "expected at least %d fields, got %d",
			minFieldsCount, len(fields))
	}

	txDate, err := ParseDate(fields[0])
	if err != nil {
		return nil, err
	}

	amountFields := strings.Fields(fields[4])
	if len(amountFields) != amountParts {
		return nil, errors.Wrapf(common.ErrStructural, "expected amount and currency, got %v",
			spew.Sdump(amountFields))
	}

	amount, err := decimal.NewFromString(amountFields[0])
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, common.ErrStructural), "invalid amount %q", amountFields[0])
	}

	record := &database.TransactionRecord{
		ID:              msg.ID,
		Sender:          strings.TrimSpace(msg.Sender),
		MessageDate:     civil.DateOf(msg.Date.UTC()),
		TransactionDate: txDate,
		Account:         strings.ReplaceAll(strings.TrimSpace(fields[1]), " ", ""),
		Payee:           strings.TrimSpace(fields[2]),
		Description:     strings.TrimSpace(fields[3]),
		Amount:          amount,
		Currency:        amountFields[1],
	}

	if len(fields) > tagFieldIndex {
		record.Tag = strings.TrimSpace(fields[tagFieldIndex])
	}

	if _, ok := p.accounts.Lookup(record.Account); !ok {
		return record, errors.Wrapf(common.ErrUnknownAccount, "invalid account <%s> in message <%s> from %s",
			record.Account, msg.Text, record.MessageDate)
	}

	return record, nil
}

// ParseDate accepts the date formats people usually type into a chat.
func ParseDate(raw string) (civil.Date, error) {
	raw = strings.TrimSpace(raw)

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return civil.DateOf(parsed), nil
		}
	}

	return civil.Date{}, errors.Wrapf(common.ErrStructural, "unsupported date %q", raw)
}
