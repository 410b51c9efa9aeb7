// Package reminder notifies users shortly before a card invoice falls
// due. It reuses the report aggregation over the current month, so the
// amounts pushed match what the dashboard shows.
package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"centavo/internal/domain/card"
	"centavo/internal/domain/period"
	"centavo/internal/domain/profile"
	"centavo/internal/domain/report"
	"centavo/internal/domain/transaction"
	"centavo/internal/shared/i18n"
)

// DefaultLeadDays is how far ahead of the due date reminders go out.
const DefaultLeadDays = 3

// Service computes upcoming card invoices per user and pushes reminders.
type Service struct {
	profiles     profile.Repository
	transactions transaction.Repository
	cards        card.Repository
	messenger    Messenger
	leadDays     int

	now func() time.Time
}

// NewService creates a reminder service. leadDays <= 0 falls back to the
// default window.
func NewService(profiles profile.Repository, transactions transaction.Repository, cards card.Repository, messenger Messenger, leadDays int) *Service {
	if leadDays <= 0 {
		leadDays = DefaultLeadDays
	}
	return &Service{
		profiles:     profiles,
		transactions: transactions,
		cards:        cards,
		messenger:    messenger,
		leadDays:     leadDays,
		now:          time.Now,
	}
}

// ListUserIDs returns the ids of every user with a profile, for the
// scheduler's job provider.
func (s *Service) ListUserIDs(ctx context.Context) ([]string, error) {
	profiles, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	return ids, nil
}

// RemindUser sends one push per card invoice due within the lead window
// for the current month. Users with no registered devices or no upcoming
// invoices produce no sends. Returns the number of reminders sent.
func (s *Service) RemindUser(ctx context.Context, userID string) (int, error) {
	prof, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load profile for user %s: %w", userID, err)
	}
	if len(prof.FCMTokens) == 0 {
		return 0, nil
	}

	today := s.now().UTC()
	month := period.MonthOf(today)

	txs, err := s.transactions.ListByMonth(ctx, userID, month)
	if err != nil {
		return 0, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	cards, err := s.cards.List(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to list cards for user %s: %w", userID, err)
	}

	summary := report.Summarize(txs, cards, nil, month)

	sent := 0
	for _, inv := range summary.CardInvoices {
		if inv.DueDate == "" || inv.Total <= 0 {
			continue
		}
		due, err := period.ParseDate(inv.DueDate)
		if err != nil {
			continue
		}
		if !s.withinWindow(today, due) {
			continue
		}

		title := i18n.InvoiceDueTitle(prof.Locale)
		body := i18n.InvoiceDueBody(prof.Locale, inv.CardName, inv.Total, inv.DueDate)
		data := map[string]string{
			"cardId":  inv.CardID,
			"dueDate": inv.DueDate,
		}

		if err := s.messenger.SendMulticast(ctx, prof.FCMTokens, title, body, data); err != nil {
			log.Printf("Failed to send invoice reminder to user %s for card %s: %v", userID, inv.CardID, err)
			continue
		}
		sent++
	}

	return sent, nil
}

// withinWindow reports whether due falls on or after today and within the
// lead window.
func (s *Service) withinWindow(today time.Time, due period.Date) bool {
	dueDay := time.Date(due.Year, due.Month, due.Day, 0, 0, 0, 0, time.UTC)
	todayDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	diff := int(dueDay.Sub(todayDay).Hours() / 24)
	return diff >= 0 && diff <= s.leadDays
}
