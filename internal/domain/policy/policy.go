// Package policy is the pure decision engine behind the lending ledger and
// reservation queue. It holds no store references, so every rule is testable
// without a transaction.
package policy

import (
	"time"

	"github.com/shopspring/decimal"
)

type Policy struct {
	MaxActiveBorrows int
	MaxRenewals      int
	DailyFineRate    decimal.Decimal
	DefaultLoanDays  int
	DefaultRenewDays int
	PickupWindow     time.Duration
	QueueWindow      time.Duration
}

func Default() Policy {
	return Policy{
		MaxActiveBorrows: 5,
		MaxRenewals:      2,
		DailyFineRate:    decimal.RequireFromString("0.50"),
		DefaultLoanDays:  14,
		DefaultRenewDays: 14,
		PickupWindow:     48 * time.Hour,
		QueueWindow:      720 * time.Hour,
	}
}

// CanBorrow decides on a counter value read under the patron row lock.
func (p Policy) CanBorrow(activeCount int) bool {
	return activeCount < p.MaxActiveBorrows
}

// CanRenew denies a renewal when anyone is waiting on the item or the
// renewal cap is reached.
func (p Policy) CanRenew(renewalCount int, hasWaitingReservation bool) bool {
	if hasWaitingReservation {
		return false
	}
	return renewalCount < p.MaxRenewals
}

// FineFor recomputes the fine from scratch: days overdue times the daily
// rate. Re-running for the same asOf yields the same amount.
func (p Policy) FineFor(dueDate, asOf time.Time) decimal.Decimal {
	days := DaysOverdue(dueDate, asOf)
	if days == 0 {
		return decimal.Zero
	}
	return p.DailyFineRate.Mul(decimal.NewFromInt(int64(days)))
}

// DaysOverdue counts started days past due: any fraction of a day charges
// the whole day.
func DaysOverdue(dueDate, asOf time.Time) int {
	if !asOf.After(dueDate) {
		return 0
	}
	elapsed := asOf.Sub(dueDate)
	days := int(elapsed / (24 * time.Hour))
	if elapsed%(24*time.Hour) > 0 {
		days++
	}
	return days
}
