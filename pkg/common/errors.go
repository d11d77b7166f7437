package common

import "github.com/cockroachdb/errors"

var (
	ErrStructural      = errors.New("message is not a transaction")
	ErrUnknownAccount  = errors.New("unknown account")
	ErrRuleMismatch    = errors.New("attachment matches no rule")
	ErrConfiguration   = errors.New("invalid configuration")
	ErrAccountNotFound = errors.New("account not found in account map")
	ErrTransport       = errors.New("transport failure")
)
