package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/transfergate/internal/domain"
)

// MockAccountGateway is a mock implementation of AccountGateway. By
// default it serves accounts from an in-memory map and applies debits and
// credits to their balances; individual calls can be overridden through
// the *Func fields.
type MockAccountGateway struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	GetFunc             func(ctx context.Context, accountID string) (*domain.Account, error)
	ValidateBalanceFunc func(ctx context.Context, accountID string, amount decimal.Decimal) (bool, error)
	DebitFunc           func(ctx context.Context, accountID string, amount decimal.Decimal, description string) error
	CreditFunc          func(ctx context.Context, accountID string, amount decimal.Decimal, description string) error
}

func NewMockAccountGateway() *MockAccountGateway {
	return &MockAccountGateway{
		accounts: make(map[string]*domain.Account),
	}
}

// AddAccount seeds an account into the mock.
func (m *MockAccountGateway) AddAccount(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

// Balance returns the current balance of a seeded account.
func (m *MockAccountGateway) Balance(accountID string) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[accountID]; ok {
		return acc.Balance
	}
	return decimal.Zero
}

func (m *MockAccountGateway) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[accountID]; ok {
		snapshot := *acc
		return &snapshot, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountGateway) ValidateBalance(ctx context.Context, accountID string, amount decimal.Decimal) (bool, error) {
	if m.ValidateBalanceFunc != nil {
		return m.ValidateBalanceFunc(ctx, accountID, amount)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc, ok := m.accounts[accountID]
	if !ok {
		return false, domain.ErrAccountNotFound
	}
	return acc.Balance.GreaterThanOrEqual(amount), nil
}

func (m *MockAccountGateway) Debit(ctx context.Context, accountID string, amount decimal.Decimal, description string) error {
	if m.DebitFunc != nil {
		return m.DebitFunc(ctx, accountID, amount, description)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[accountID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if acc.Balance.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}
	acc.Balance = acc.Balance.Sub(amount)
	return nil
}

func (m *MockAccountGateway) Credit(ctx context.Context, accountID string, amount decimal.Decimal, description string) error {
	if m.CreditFunc != nil {
		return m.CreditFunc(ctx, accountID, amount, description)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[accountID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.Balance = acc.Balance.Add(amount)
	return nil
}

// MockRailGateway is a mock implementation of RailGateway.
type MockRailGateway struct {
	mu    sync.Mutex
	calls int

	SendFunc func(ctx context.Context, bankCode, externalAccountNumber string, amount decimal.Decimal, description string) error
}

func NewMockRailGateway() *MockRailGateway {
	return &MockRailGateway{}
}

func (m *MockRailGateway) Send(ctx context.Context, bankCode, externalAccountNumber string, amount decimal.Decimal, description string) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.SendFunc != nil {
		return m.SendFunc(ctx, bankCode, externalAccountNumber, amount, description)
	}
	return nil
}

// Calls returns how many times Send was invoked.
func (m *MockRailGateway) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockTransferLedger is a mock implementation of TransferLedger.
type MockTransferLedger struct {
	mu        sync.RWMutex
	transfers map[string]*domain.Transfer
	order     []string

	AppendFunc  func(ctx context.Context, transfer *domain.Transfer) (string, error)
	GetByIDFunc func(ctx context.Context, id string) (*domain.Transfer, error)
	ListFunc    func(ctx context.Context, filter domain.TransferFilter) ([]*domain.Transfer, error)
}

func NewMockTransferLedger() *MockTransferLedger {
	return &MockTransferLedger{
		transfers: make(map[string]*domain.Transfer),
	}
}

func (m *MockTransferLedger) Append(ctx context.Context, transfer *domain.Transfer) (string, error) {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, transfer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if transfer.ID == "" {
		transfer.ID = "ledger-" + strconv.Itoa(len(m.order)+1)
	}
	stored := *transfer
	m.transfers[transfer.ID] = &stored
	m.order = append(m.order, transfer.ID)
	return transfer.ID, nil
}

func (m *MockTransferLedger) GetByID(ctx context.Context, id string) (*domain.Transfer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.transfers[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTransferNotFound
}

func (m *MockTransferLedger) List(ctx context.Context, filter domain.TransferFilter) ([]*domain.Transfer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var transfers []*domain.Transfer
	for _, id := range m.order {
		t := m.transfers[id]
		if filter.AccountID != "" && t.SourceAccountID != filter.AccountID && t.DestinationAccountID != filter.AccountID {
			continue
		}
		if filter.Kind != "" && t.Kind != filter.Kind {
			continue
		}
		transfers = append(transfers, t)
	}
	return transfers, nil
}

// Count returns how many records the ledger holds.
func (m *MockTransferLedger) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.transfers)
}

// MockEventPublisher is a mock implementation of EventPublisher.
type MockEventPublisher struct {
	mu     sync.Mutex
	events []domain.TransferRecorded

	PublishFunc func(ctx context.Context, event domain.TransferRecorded) error
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.TransferRecorded) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

// Events returns the published events.
func (m *MockEventPublisher) Events() []domain.TransferRecorded {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.TransferRecorded(nil), m.events...)
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "mock-id-" + strconv.Itoa(m.counter)
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}
