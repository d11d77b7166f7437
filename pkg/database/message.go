package database

import (
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type Message struct {
	ID         int64
	Sender     string
	Date       time.Time
	Text       string
	Attachment *Attachment
}

type Attachment struct {
	FileID   string
	FileName string
	MimeType string
	Size     int64
}

var LedgerHeader = []string{
	"id",
	"sender",
	"message_date",
	"transaction_date",
	"account",
	"payee",
	"description",
	"amount",
	"currency",
	"tag",
}

type TransactionRecord struct {
	ID              int64
	Sender          string
	MessageDate     civil.Date
	TransactionDate civil.Date
	Account         string
	Payee           string
	Description     string
	Amount          decimal.Decimal
	Currency        string
	Tag             string
}

// Row renders the record in LedgerHeader order.
func (r TransactionRecord) Row() []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Sender,
		r.MessageDate.String(),
		r.TransactionDate.String(),
		r.Account,
		r.Payee,
		r.Description,
		FormatAmount(r.Amount),
		r.Currency,
		r.Tag,
	}
}

// FormatAmount keeps the number of decimal places the amount was written with.
func FormatAmount(amount decimal.Decimal) string {
	if exp := amount.Exponent(); exp < 0 {
		return amount.StringFixed(-exp)
	}

	return amount.String()
}

type Chat struct {
	ID    int64
	Title string
}
