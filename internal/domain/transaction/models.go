package transaction

import (
	"errors"
	"math"
	"time"

	"centavo/internal/domain/period"
)

// Transaction types
const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

// Domain errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrGroupNotFound       = errors.New("installment group not found")
	ErrInvalidInput        = errors.New("invalid input")
)

// Transaction is a single financial record. Dates are calendar days
// (YYYY-MM-DD) and InvoiceMonth is the billing period (YYYY-MM) a
// card-funded expense is attributed to — independent of Date, since a
// purchase made in one month can bill in a later one.
type Transaction struct {
	ID                 string    `json:"id" firestore:"-"`
	Type               string    `json:"type" firestore:"type"`
	Amount             float64   `json:"amount" firestore:"amount"`
	Deduction          float64   `json:"deduction,omitempty" firestore:"deduction"`
	Description        string    `json:"description" firestore:"description"`
	Category           string    `json:"category,omitempty" firestore:"category"`
	Tags               []string  `json:"tags,omitempty" firestore:"tags"`
	Date               string    `json:"date" firestore:"date"`
	CardID             string    `json:"cardId,omitempty" firestore:"cardId"`
	InvoiceMonth       string    `json:"invoiceMonth,omitempty" firestore:"invoiceMonth"`
	Installments       int       `json:"installments,omitempty" firestore:"installments"`
	CurrentInstallment int       `json:"currentInstallment,omitempty" firestore:"currentInstallment"`
	GroupID            string    `json:"groupId,omitempty" firestore:"groupId"`
	CreatedAt          time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Net returns the economic effect of the record: amount minus deduction
// for expenses, plain amount for income.
func (t *Transaction) Net() float64 {
	if t.Type != TypeExpense {
		return t.Amount
	}
	return t.Amount - t.Deduction
}

// CreateParams contains parameters for creating a new transaction.
// GroupID and CurrentInstallment are only ever set by the installment
// expander, never by callers.
type CreateParams struct {
	Type               string
	Amount             float64
	Deduction          float64
	Description        string
	Category           string
	Tags               []string
	Date               string
	CardID             string
	InvoiceMonth       string
	Installments       int
	CurrentInstallment int
	GroupID            string
}

func (p *CreateParams) Validate() error {
	if p.Type != TypeExpense && p.Type != TypeIncome {
		return errors.New("type must be expense or income")
	}
	if math.IsNaN(p.Amount) || math.IsInf(p.Amount, 0) || p.Amount <= 0 {
		return errors.New("amount must be a positive number")
	}
	if math.IsNaN(p.Deduction) || math.IsInf(p.Deduction, 0) || p.Deduction < 0 {
		return errors.New("deduction must be zero or positive")
	}
	if p.Type == TypeIncome && p.Deduction != 0 {
		return errors.New("deduction only applies to expenses")
	}
	if p.Deduction > p.Amount {
		return errors.New("deduction cannot exceed amount")
	}
	if p.Description == "" {
		return errors.New("description is required")
	}
	if _, err := period.ParseDate(p.Date); err != nil {
		return err
	}
	if p.Type == TypeIncome && p.CardID != "" {
		return errors.New("income cannot be card-funded")
	}
	if p.CardID != "" {
		if p.InvoiceMonth == "" {
			return errors.New("invoiceMonth is required for card-funded expenses")
		}
		if _, err := period.ParseMonth(p.InvoiceMonth); err != nil {
			return err
		}
	}
	if p.Installments < 0 {
		return errors.New("installments must be 1 or greater")
	}
	return nil
}

// UpdateParams contains parameters for a single-record edit. Edits never
// propagate to installment siblings: description or amount changes on one
// record leave the rest of the group untouched.
type UpdateParams struct {
	Type         *string
	Amount       *float64
	Deduction    *float64
	Description  *string
	Category     *string
	Tags         *[]string
	Date         *string
	CardID       *string
	InvoiceMonth *string
}

func (p *UpdateParams) Validate() error {
	if p.Type != nil && *p.Type != TypeExpense && *p.Type != TypeIncome {
		return errors.New("type must be expense or income")
	}
	if p.Amount != nil && (math.IsNaN(*p.Amount) || math.IsInf(*p.Amount, 0) || *p.Amount <= 0) {
		return errors.New("amount must be a positive number")
	}
	if p.Deduction != nil && (math.IsNaN(*p.Deduction) || math.IsInf(*p.Deduction, 0) || *p.Deduction < 0) {
		return errors.New("deduction must be zero or positive")
	}
	if p.Description != nil && *p.Description == "" {
		return errors.New("description cannot be empty")
	}
	if p.Date != nil {
		if _, err := period.ParseDate(*p.Date); err != nil {
			return err
		}
	}
	if p.InvoiceMonth != nil && *p.InvoiceMonth != "" {
		if _, err := period.ParseMonth(*p.InvoiceMonth); err != nil {
			return err
		}
	}
	return nil
}
