// Package report derives the monthly dashboard numbers from a month's
// snapshot of transactions. Everything here is a pure function of its
// inputs: no storage access, no mutation, deterministic output regardless
// of input order.
package report

import (
	"math"
	"sort"

	"centavo/internal/domain/card"
	"centavo/internal/domain/category"
	"centavo/internal/domain/period"
	"centavo/internal/domain/transaction"
)

// Placeholder labels for dangling references. Reference-integrity gaps are
// never errors here: a deleted category or card degrades to a placeholder
// rather than dropping the money from the totals.
const (
	UncategorizedLabel = "Uncategorized"
	UnknownCardLabel   = "Unknown Card"
)

// Summary is the aggregate view of one calendar month.
type Summary struct {
	Month             string          `json:"month"`
	TotalIncome       float64         `json:"totalIncome"`
	TotalExpenses     float64         `json:"totalExpenses"`
	Balance           float64         `json:"balance"`
	CategoryBreakdown []CategoryTotal `json:"categoryBreakdown"`
	DirectDebits      []DirectDebit   `json:"directDebits"`
	CardInvoices      []CardInvoice   `json:"cardInvoices"`
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	CategoryID string  `json:"categoryId,omitempty"`
	Name       string  `json:"name"`
	Total      float64 `json:"total"`
}

// DirectDebit is a cardless expense, passed through as its own line item.
type DirectDebit struct {
	TransactionID string  `json:"transactionId"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
}

// CardInvoice is the month's card expenses grouped into one bill per card.
// DueDate is the card's due day resolved within the viewed month;
// AvailableCredit is the card's limit net of this invoice, absent when the
// card record no longer exists.
type CardInvoice struct {
	CardID          string   `json:"cardId"`
	CardName        string   `json:"cardName"`
	DueDate         string   `json:"dueDate,omitempty"`
	Total           float64  `json:"total"`
	AvailableCredit *float64 `json:"availableCredit,omitempty"`
}

// Summarize computes the month's totals, category breakdown and the
// direct-debit / card-invoice partition. The caller supplies the month's
// transaction snapshot (date filtering is the storage layer's job) plus
// the user's full card and category sets for name resolution.
func Summarize(transactions []*transaction.Transaction, cards []*card.Card, categories []*category.Category, month period.Month) *Summary {
	cardsByID := make(map[string]*card.Card, len(cards))
	for _, c := range cards {
		cardsByID[c.ID] = c
	}
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	s := &Summary{
		Month:             month.String(),
		CategoryBreakdown: []CategoryTotal{},
		DirectDebits:      []DirectDebit{},
		CardInvoices:      []CardInvoice{},
	}

	byCategory := make(map[string]float64)
	invoiceTotals := make(map[string]float64)

	for _, t := range transactions {
		if t == nil {
			continue
		}
		if t.Type == transaction.TypeIncome {
			s.TotalIncome += sanitize(t.Amount)
			continue
		}
		if t.Type != transaction.TypeExpense {
			continue
		}

		net := sanitize(t.Net())
		s.TotalExpenses += net

		key := t.Category
		if _, ok := categoryNames[key]; !ok {
			key = ""
		}
		byCategory[key] += net

		if t.CardID == "" {
			s.DirectDebits = append(s.DirectDebits, DirectDebit{
				TransactionID: t.ID,
				Description:   t.Description,
				Date:          t.Date,
				Amount:        net,
			})
		} else {
			invoiceTotals[t.CardID] += net
		}
	}

	s.Balance = s.TotalIncome - s.TotalExpenses

	for id, total := range byCategory {
		name := UncategorizedLabel
		if id != "" {
			name = categoryNames[id]
		}
		s.CategoryBreakdown = append(s.CategoryBreakdown, CategoryTotal{
			CategoryID: id,
			Name:       name,
			Total:      total,
		})
	}
	sort.Slice(s.CategoryBreakdown, func(i, j int) bool {
		a, b := s.CategoryBreakdown[i], s.CategoryBreakdown[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Name < b.Name
	})

	for cardID, total := range invoiceTotals {
		inv := CardInvoice{CardID: cardID, CardName: UnknownCardLabel, Total: total}
		if c, ok := cardsByID[cardID]; ok {
			inv.CardName = c.CardName
			inv.DueDate = month.Date(c.DueDate).String()
			available := c.Limit - total
			inv.AvailableCredit = &available
		}
		s.CardInvoices = append(s.CardInvoices, inv)
	}
	sort.Slice(s.CardInvoices, func(i, j int) bool {
		a, b := s.CardInvoices[i], s.CardInvoices[j]
		if a.CardName != b.CardName {
			return a.CardName < b.CardName
		}
		return a.CardID < b.CardID
	})

	sort.Slice(s.DirectDebits, func(i, j int) bool {
		a, b := s.DirectDebits[i], s.DirectDebits[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.TransactionID < b.TransactionID
	})

	return s
}

// sanitize zeroes malformed amounts. This is display aggregation, not a
// ledger of record: a NaN slipping in must not poison every total on the
// dashboard.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
