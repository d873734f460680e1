package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry groups the ledger lines posted together by one accounting
// operation.
type JournalEntry struct {
	ID        string
	Number    int64
	Date      time.Time
	CreatedAt time.Time
}

// LedgerLine is one debit/credit posting within a journal entry, tied to
// exactly one subaccount. Balance is the running balance of the subaccount
// as of this line, snapshotted at post time and patched by the subaccount
// roll-up worker when it drifts.
//
// The canonical posting order is (Date, EntryNumber, ID) ascending; running
// balances are only meaningful in that order.
type LedgerLine struct {
	ID           string
	EntryID      string
	EntryNumber  int64
	Date         time.Time
	SubaccountID string
	Concept      string
	Debit        decimal.Decimal
	Credit       decimal.Decimal
	Balance      decimal.Decimal
	CreatedAt    time.Time
}

// Amount returns the signed contribution of the line to a running balance.
func (l *LedgerLine) Amount() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}
