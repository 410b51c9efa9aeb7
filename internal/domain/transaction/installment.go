package transaction

import (
	"errors"

	"github.com/google/uuid"

	"centavo/internal/domain/period"
)

// ErrInvalidInstallments is returned for a zero or negative installment count.
var ErrInvalidInstallments = errors.New("installment count must be 1 or greater")

// ExpandInstallments splits a card-funded purchase into count individual
// records, one per installment. Each record carries net/count as its
// amount, a date and invoice month advanced by its position, and a shared
// group id linking the siblings.
//
// A count of 1, or a purchase with no card, returns the draft unchanged as
// a single record: installments are a card-only feature. The deduction is
// applied once up front — it is subtracted from the total before the split
// and zeroed on every produced record.
//
// The per-installment amount is plain floating-point division of the net
// amount. A residual cent (100/3 = 33.333...) is not redistributed.
func ExpandInstallments(draft CreateParams, count int) ([]CreateParams, error) {
	if count <= 0 {
		return nil, ErrInvalidInstallments
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if count == 1 || draft.CardID == "" {
		return []CreateParams{draft}, nil
	}
	if draft.Type != TypeExpense {
		return nil, errors.New("only expenses can be split into installments")
	}

	date, err := period.ParseDate(draft.Date)
	if err != nil {
		return nil, err
	}
	invoiceMonth, err := period.ParseMonth(draft.InvoiceMonth)
	if err != nil {
		return nil, err
	}

	net := draft.Amount - draft.Deduction
	perInstallment := net / float64(count)
	groupID := uuid.New().String()

	records := make([]CreateParams, 0, count)
	for i := 0; i < count; i++ {
		rec := draft
		rec.Amount = perInstallment
		rec.Deduction = 0
		rec.Date = date.AddMonths(i).String()
		rec.InvoiceMonth = invoiceMonth.AddMonths(i).String()
		rec.Installments = count
		rec.CurrentInstallment = i + 1
		rec.GroupID = groupID
		records = append(records, rec)
	}

	return records, nil
}
