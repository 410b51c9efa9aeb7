package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"centavo/internal/domain/card"
	"centavo/internal/domain/period"
	"centavo/internal/domain/profile"
	"centavo/internal/domain/transaction"
)

type MockProfileRepo struct {
	GetFunc     func(ctx context.Context, userID string) (*profile.Profile, error)
	ListAllFunc func(ctx context.Context) ([]*profile.Profile, error)
}

func (m *MockProfileRepo) Get(ctx context.Context, userID string) (*profile.Profile, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return &profile.Profile{UserID: userID}, nil
}
func (m *MockProfileRepo) SetLocale(ctx context.Context, userID, locale string) error { return nil }
func (m *MockProfileRepo) AddDeviceToken(ctx context.Context, userID, token string) error {
	return nil
}
func (m *MockProfileRepo) ListAll(ctx context.Context) ([]*profile.Profile, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type MockTxRepo struct {
	ListByMonthFunc func(ctx context.Context, userID string, month period.Month) ([]*transaction.Transaction, error)
}

func (m *MockTxRepo) Create(ctx context.Context, userID string, params transaction.CreateParams) (*transaction.Transaction, error) {
	return nil, nil
}
func (m *MockTxRepo) CreateBatch(ctx context.Context, userID string, params []transaction.CreateParams) ([]*transaction.Transaction, error) {
	return nil, nil
}
func (m *MockTxRepo) GetByID(ctx context.Context, userID, id string) (*transaction.Transaction, error) {
	return nil, nil
}
func (m *MockTxRepo) ListByMonth(ctx context.Context, userID string, month period.Month) ([]*transaction.Transaction, error) {
	if m.ListByMonthFunc != nil {
		return m.ListByMonthFunc(ctx, userID, month)
	}
	return nil, nil
}
func (m *MockTxRepo) ListByCard(ctx context.Context, userID, cardID string) ([]*transaction.Transaction, error) {
	return nil, nil
}
func (m *MockTxRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*transaction.Transaction, error) {
	return nil, nil
}
func (m *MockTxRepo) Update(ctx context.Context, userID, id string, params transaction.UpdateParams) (*transaction.Transaction, error) {
	return nil, nil
}
func (m *MockTxRepo) Delete(ctx context.Context, userID, id string) error { return nil }
func (m *MockTxRepo) DeleteGroup(ctx context.Context, userID, groupID string) (int, error) {
	return 0, nil
}

type MockCardRepo struct {
	ListFunc func(ctx context.Context, userID string) ([]*card.Card, error)
}

func (m *MockCardRepo) Create(ctx context.Context, userID string, params card.CreateParams) (*card.Card, error) {
	return nil, nil
}
func (m *MockCardRepo) GetByID(ctx context.Context, userID, id string) (*card.Card, error) {
	return nil, nil
}
func (m *MockCardRepo) List(ctx context.Context, userID string) ([]*card.Card, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}
func (m *MockCardRepo) Update(ctx context.Context, userID, id string, params card.UpdateParams) (*card.Card, error) {
	return nil, nil
}
func (m *MockCardRepo) Delete(ctx context.Context, userID, id string) error { return nil }

type MockMessenger struct {
	SendMulticastFunc func(ctx context.Context, tokens []string, title, body string, data map[string]string) error
	calls             int
}

func (m *MockMessenger) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	m.calls++
	if m.SendMulticastFunc != nil {
		return m.SendMulticastFunc(ctx, tokens, title, body, data)
	}
	return nil
}

func fixedNow(t *testing.T, s string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return func() time.Time { return parsed }
}

func newTestService(profiles *MockProfileRepo, txs *MockTxRepo, cards *MockCardRepo, msgr *MockMessenger) *Service {
	return NewService(profiles, txs, cards, msgr, 3)
}

func TestRemindUser_SendsForUpcomingInvoice(t *testing.T) {
	profiles := &MockProfileRepo{
		GetFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
			return &profile.Profile{UserID: userID, Locale: "en", FCMTokens: []string{"tok-1"}}, nil
		},
	}
	txs := &MockTxRepo{
		ListByMonthFunc: func(ctx context.Context, userID string, month period.Month) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{ID: "t1", Type: transaction.TypeExpense, Amount: 65, CardID: "card-a", Date: "2024-07-01"},
			}, nil
		},
	}
	cards := &MockCardRepo{
		ListFunc: func(ctx context.Context, userID string) ([]*card.Card, error) {
			return []*card.Card{{ID: "card-a", CardName: "Sapphire", Limit: 1000, DueDate: 5}}, nil
		},
	}
	msgr := &MockMessenger{}

	svc := newTestService(profiles, txs, cards, msgr)
	svc.now = fixedNow(t, "2024-07-03") // two days before the due day

	sent, err := svc.RemindUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("RemindUser() failed: %v", err)
	}
	if sent != 1 {
		t.Errorf("sent = %d, want 1", sent)
	}
	if msgr.calls != 1 {
		t.Errorf("messenger calls = %d, want 1", msgr.calls)
	}
}

func TestRemindUser_OutsideWindow(t *testing.T) {
	profiles := &MockProfileRepo{
		GetFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
			return &profile.Profile{UserID: userID, FCMTokens: []string{"tok-1"}}, nil
		},
	}
	txs := &MockTxRepo{
		ListByMonthFunc: func(ctx context.Context, userID string, month period.Month) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{ID: "t1", Type: transaction.TypeExpense, Amount: 65, CardID: "card-a", Date: "2024-07-01"},
			}, nil
		},
	}
	cards := &MockCardRepo{
		ListFunc: func(ctx context.Context, userID string) ([]*card.Card, error) {
			return []*card.Card{{ID: "card-a", CardName: "Sapphire", Limit: 1000, DueDate: 25}}, nil
		},
	}
	msgr := &MockMessenger{}

	svc := newTestService(profiles, txs, cards, msgr)
	svc.now = fixedNow(t, "2024-07-03") // due day is three weeks out

	sent, err := svc.RemindUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("RemindUser() failed: %v", err)
	}
	if sent != 0 || msgr.calls != 0 {
		t.Errorf("sent = %d, calls = %d, want no sends outside window", sent, msgr.calls)
	}
}

func TestRemindUser_PastDueDayNotReminded(t *testing.T) {
	profiles := &MockProfileRepo{
		GetFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
			return &profile.Profile{UserID: userID, FCMTokens: []string{"tok-1"}}, nil
		},
	}
	txs := &MockTxRepo{
		ListByMonthFunc: func(ctx context.Context, userID string, month period.Month) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{ID: "t1", Type: transaction.TypeExpense, Amount: 10, CardID: "card-a", Date: "2024-07-01"},
			}, nil
		},
	}
	cards := &MockCardRepo{
		ListFunc: func(ctx context.Context, userID string) ([]*card.Card, error) {
			return []*card.Card{{ID: "card-a", CardName: "Sapphire", Limit: 1000, DueDate: 5}}, nil
		},
	}
	msgr := &MockMessenger{}

	svc := newTestService(profiles, txs, cards, msgr)
	svc.now = fixedNow(t, "2024-07-10")

	sent, err := svc.RemindUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("RemindUser() failed: %v", err)
	}
	if sent != 0 {
		t.Errorf("sent = %d, want 0 for already-due invoice", sent)
	}
}

func TestRemindUser_NoTokensNoWork(t *testing.T) {
	listCalled := false
	profiles := &MockProfileRepo{
		GetFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
			return &profile.Profile{UserID: userID}, nil
		},
	}
	txs := &MockTxRepo{
		ListByMonthFunc: func(ctx context.Context, userID string, month period.Month) ([]*transaction.Transaction, error) {
			listCalled = true
			return nil, nil
		},
	}
	msgr := &MockMessenger{}

	svc := newTestService(profiles, txs, &MockCardRepo{}, msgr)
	svc.now = fixedNow(t, "2024-07-03")

	sent, err := svc.RemindUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("RemindUser() failed: %v", err)
	}
	if sent != 0 || msgr.calls != 0 {
		t.Errorf("sent = %d, calls = %d, want nothing for tokenless user", sent, msgr.calls)
	}
	if listCalled {
		t.Error("transactions listed for a user with no devices")
	}
}

func TestRemindUser_MessengerFailureIsNotFatal(t *testing.T) {
	profiles := &MockProfileRepo{
		GetFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
			return &profile.Profile{UserID: userID, FCMTokens: []string{"tok-1"}}, nil
		},
	}
	txs := &MockTxRepo{
		ListByMonthFunc: func(ctx context.Context, userID string, month period.Month) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{ID: "t1", Type: transaction.TypeExpense, Amount: 30, CardID: "card-a", Date: "2024-07-01"},
				{ID: "t2", Type: transaction.TypeExpense, Amount: 40, CardID: "card-b", Date: "2024-07-02"},
			}, nil
		},
	}
	cards := &MockCardRepo{
		ListFunc: func(ctx context.Context, userID string) ([]*card.Card, error) {
			return []*card.Card{
				{ID: "card-a", CardName: "Amex", Limit: 1000, DueDate: 4},
				{ID: "card-b", CardName: "Sapphire", Limit: 1000, DueDate: 5},
			}, nil
		},
	}
	msgr := &MockMessenger{
		SendMulticastFunc: func(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
			if data["cardId"] == "card-a" {
				return errors.New("fcm unavailable")
			}
			return nil
		},
	}

	svc := newTestService(profiles, txs, cards, msgr)
	svc.now = fixedNow(t, "2024-07-03")

	sent, err := svc.RemindUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("RemindUser() failed: %v", err)
	}
	if sent != 1 {
		t.Errorf("sent = %d, want 1 (failure on one card skips only that card)", sent)
	}
	if msgr.calls != 2 {
		t.Errorf("messenger calls = %d, want 2", msgr.calls)
	}
}

func TestListUserIDs(t *testing.T) {
	profiles := &MockProfileRepo{
		ListAllFunc: func(ctx context.Context) ([]*profile.Profile, error) {
			return []*profile.Profile{{UserID: "u1"}, {UserID: "u2"}}, nil
		},
	}
	svc := newTestService(profiles, &MockTxRepo{}, &MockCardRepo{}, &MockMessenger{})

	ids, err := svc.ListUserIDs(context.Background())
	if err != nil {
		t.Fatalf("ListUserIDs() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "u1" || ids[1] != "u2" {
		t.Errorf("ids = %v, want [u1 u2]", ids)
	}
}
