package http

import (
	"encoding/json"
	"log"
	"net/http"

	"centavo/internal/domain/card"
	"centavo/internal/domain/category"
	"centavo/internal/domain/period"
	"centavo/internal/domain/report"
	"centavo/internal/domain/transaction"
	"centavo/internal/shared/i18n"
	"centavo/internal/shared/middleware"
)

type SummaryHandler struct {
	transactionRepo transaction.Repository
	cardRepo        card.Repository
	categoryRepo    category.Repository
}

func NewSummaryHandler(transactionRepo transaction.Repository, cardRepo card.Repository, categoryRepo category.Repository) *SummaryHandler {
	return &SummaryHandler{
		transactionRepo: transactionRepo,
		cardRepo:        cardRepo,
		categoryRepo:    categoryRepo,
	}
}

// SummaryResponse wraps the aggregate with locale-formatted display
// strings. The numbers are locale-independent; only Formatted changes
// with ?locale=.
type SummaryResponse struct {
	*report.Summary
	Formatted FormattedTotals `json:"formatted"`
}

type FormattedTotals struct {
	Locale        string `json:"locale"`
	TotalIncome   string `json:"totalIncome"`
	TotalExpenses string `json:"totalExpenses"`
	Balance       string `json:"balance"`
}

// HandleSummary computes the monthly aggregate for ?month=YYYY-MM.
func (h *SummaryHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		http.Error(w, "month query parameter is required", http.StatusBadRequest)
		return
	}
	month, err := period.ParseMonth(monthStr)
	if err != nil {
		http.Error(w, "Invalid month, expected YYYY-MM", http.StatusBadRequest)
		return
	}

	locale := i18n.Normalize(r.URL.Query().Get("locale"))

	txs, err := h.transactionRepo.ListByMonth(r.Context(), userID, month)
	if err != nil {
		log.Printf("Error listing transactions for summary, user %s: %v", userID, err)
		http.Error(w, "Failed to compute summary", http.StatusInternalServerError)
		return
	}
	cards, err := h.cardRepo.List(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing cards for summary, user %s: %v", userID, err)
		http.Error(w, "Failed to compute summary", http.StatusInternalServerError)
		return
	}
	categories, err := h.categoryRepo.List(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing categories for summary, user %s: %v", userID, err)
		http.Error(w, "Failed to compute summary", http.StatusInternalServerError)
		return
	}

	summary := report.Summarize(txs, cards, categories, month)

	response := SummaryResponse{
		Summary: summary,
		Formatted: FormattedTotals{
			Locale:        locale,
			TotalIncome:   i18n.FormatAmount(locale, summary.TotalIncome),
			TotalExpenses: i18n.FormatAmount(locale, summary.TotalExpenses),
			Balance:       i18n.FormatAmount(locale, summary.Balance),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
