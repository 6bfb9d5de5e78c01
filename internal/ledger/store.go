package ledger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnknownAccount     = errors.New("unknown account")
	ErrUnknownTransaction = errors.New("unknown transaction")
	ErrUnknownBudget      = errors.New("unknown budget")
	ErrDuplicateBudget    = errors.New("budget already exists for category")
	ErrInvalidInput       = errors.New("invalid input")
)

// Store holds the ledger state. It is not safe for concurrent use.
type Store struct {
	log          *zap.Logger
	now          func() time.Time
	accounts     []Account
	transactions []Transaction
	budgets      []Budget
	version      uint64
}

// NewStore returns an empty store. A nil logger is replaced with a no-op
// one.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{log: log, now: time.Now}
}

// Version increases on every successful mutation.
func (s *Store) Version() uint64 { return s.version }

// AddAccount stores a, assigning an id when it has none.
func (s *Store) AddAccount(a Account) (Account, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return Account{}, fmt.Errorf("add account: %w: name required", ErrInvalidInput)
	}
	a.Type = strings.ToLower(strings.TrimSpace(a.Type))
	if a.Type == "" {
		a.Type = TypeChecking
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if s.accountIndex(a.ID) >= 0 {
		return Account{}, fmt.Errorf("add account %s: %w: id in use", a.ID, ErrInvalidInput)
	}
	s.accounts = append(s.accounts, a)
	s.bump()
	s.log.Debug("account added", zap.String("account_id", a.ID), zap.String("type", a.Type), zap.Int64("balance_cents", a.BalanceCents))
	return a, nil
}

// RemoveAccount deletes the account and every transaction booked on it.
func (s *Store) RemoveAccount(id string) error {
	i := s.accountIndex(id)
	if i < 0 {
		return fmt.Errorf("remove account %s: %w", id, ErrUnknownAccount)
	}
	s.accounts = slices.Delete(s.accounts, i, i+1)
	before := len(s.transactions)
	s.transactions = slices.DeleteFunc(s.transactions, func(t Transaction) bool { return t.AccountID == id })
	s.bump()
	s.log.Debug("account removed", zap.String("account_id", id), zap.Int("transactions_dropped", before-len(s.transactions)))
	return nil
}

// ApplyTransaction books t and adds its amount to the account balance. A
// zero date means today.
func (s *Store) ApplyTransaction(t Transaction) (Transaction, error) {
	i := s.accountIndex(t.AccountID)
	if i < 0 {
		return Transaction{}, fmt.Errorf("apply transaction: account %q: %w", t.AccountID, ErrUnknownAccount)
	}
	if t.AmountCents == 0 {
		return Transaction{}, fmt.Errorf("apply transaction: %w: amount must be non-zero", ErrInvalidInput)
	}
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Date.IsZero() {
		t.Date = s.now()
	}
	s.accounts[i].BalanceCents += t.AmountCents
	s.transactions = append(s.transactions, t)
	s.bump()
	s.log.Debug("transaction applied", zap.String("transaction_id", t.ID), zap.String("account_id", t.AccountID), zap.Int64("amount_cents", t.AmountCents))
	return t, nil
}

// ReverseTransaction removes the transaction and takes its amount back out
// of the account balance.
func (s *Store) ReverseTransaction(id string) error {
	ti := slices.IndexFunc(s.transactions, func(t Transaction) bool { return t.ID == id })
	if ti < 0 {
		return fmt.Errorf("reverse transaction %s: %w", id, ErrUnknownTransaction)
	}
	t := s.transactions[ti]
	if ai := s.accountIndex(t.AccountID); ai >= 0 {
		s.accounts[ai].BalanceCents -= t.AmountCents
	}
	s.transactions = slices.Delete(s.transactions, ti, ti+1)
	s.bump()
	s.log.Debug("transaction reversed", zap.String("transaction_id", id), zap.Int64("amount_cents", t.AmountCents))
	return nil
}

// AddBudgetRow adds a monthly limit for category. Categories compare
// case-insensitively.
func (s *Store) AddBudgetRow(category string, limitCents int64) (Budget, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return Budget{}, fmt.Errorf("add budget: %w: category required", ErrInvalidInput)
	}
	if limitCents < 0 {
		return Budget{}, fmt.Errorf("add budget %q: %w: negative limit", category, ErrInvalidInput)
	}
	return s.addBudget(Budget{ID: uuid.NewString(), Category: category, LimitCents: limitCents})
}

func (s *Store) addBudget(b Budget) (Budget, error) {
	for _, existing := range s.budgets {
		if strings.EqualFold(existing.Category, b.Category) {
			return Budget{}, fmt.Errorf("add budget %q: %w", b.Category, ErrDuplicateBudget)
		}
	}
	s.budgets = append(s.budgets, b)
	s.bump()
	s.log.Debug("budget added", zap.String("budget_id", b.ID), zap.String("category", b.Category), zap.Int64("limit_cents", b.LimitCents))
	return b, nil
}

// UpdateBudgetLimit changes the limit of budget id.
func (s *Store) UpdateBudgetLimit(id string, limitCents int64) error {
	i := s.budgetIndex(id)
	if i < 0 {
		return fmt.Errorf("update budget %s: %w", id, ErrUnknownBudget)
	}
	if limitCents < 0 {
		return fmt.Errorf("update budget %s: %w: negative limit", id, ErrInvalidInput)
	}
	s.budgets[i].LimitCents = limitCents
	s.bump()
	return nil
}

// RemoveBudgetRow deletes budget id.
func (s *Store) RemoveBudgetRow(id string) error {
	i := s.budgetIndex(id)
	if i < 0 {
		return fmt.Errorf("remove budget %s: %w", id, ErrUnknownBudget)
	}
	s.budgets = slices.Delete(s.budgets, i, i+1)
	s.bump()
	return nil
}

// Account returns a copy of account id.
func (s *Store) Account(id string) (Account, bool) {
	i := s.accountIndex(id)
	if i < 0 {
		return Account{}, false
	}
	return s.accounts[i], true
}

// Snapshot returns copies of all rows. Transactions are newest first.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Accounts:     slices.Clone(s.accounts),
		Transactions: slices.Clone(s.transactions),
		Budgets:      slices.Clone(s.budgets),
	}
	slices.SortStableFunc(snap.Transactions, func(a, b Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return snap
}

func (s *Store) accountIndex(id string) int {
	return slices.IndexFunc(s.accounts, func(a Account) bool { return a.ID == id })
}

func (s *Store) budgetIndex(id string) int {
	return slices.IndexFunc(s.budgets, func(b Budget) bool { return b.ID == id })
}

func (s *Store) bump() { s.version++ }
