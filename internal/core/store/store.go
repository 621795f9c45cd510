// Package store holds the application state container: every domain collection,
// the active session and the UI-facing settings. It is the only mutation surface;
// every applied mutation is announced synchronously to all subscribed observers.
package store

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/fixtures"
	"github.com/shopspring/decimal"
)

// Observer is called once per applied mutation, before the mutator returns.
type Observer func(Event)

type subscription struct {
	id int
	fn Observer
}

// Store is the process-wide state container. It is created explicitly and passed
// by reference to the layers that need it. The zero value is not usable; use New.
type Store struct {
	mu sync.RWMutex

	members         []domain.Member
	projects        []domain.Project
	bankAccounts    []domain.BankAccount
	transactions    []domain.Transaction
	chatMessages    []domain.ChatMessage
	creativeHistory []domain.CreativeHistoryItem // newest first
	settings        domain.Settings
	feeAmount       decimal.Decimal
	pixKey          string
	session         *domain.Session

	obsMu     sync.Mutex
	observers []subscription
	nextObsID int

	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source used for timestamps, fee years and seeds.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for mutation debug logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a store seeded from seed. The seed is deep-copied.
func New(seed fixtures.Data, opts ...Option) *Store {
	s := &Store{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.members = cloneMembers(seed.Members)
	s.projects = cloneProjects(seed.Projects)
	s.bankAccounts = append([]domain.BankAccount(nil), seed.BankAccounts...)
	s.transactions = append([]domain.Transaction(nil), seed.Transactions...)
	s.chatMessages = append([]domain.ChatMessage(nil), seed.ChatMessages...)
	s.creativeHistory = []domain.CreativeHistoryItem{}
	s.settings = seed.Settings.Merge(domain.SettingsPatch{})
	s.feeAmount = seed.MembershipFeeAmount
	s.pixKey = seed.PixKey
	return s
}

// Subscribe registers fn and returns a function that removes it again.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, subscription{id: id, fn: fn})

	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// notify runs every observer in subscription order. It must be called without
// holding mu so observers are free to read the store.
func (s *Store) notify(ev Event) {
	s.obsMu.Lock()
	subs := make([]subscription, len(s.observers))
	copy(subs, s.observers)
	s.obsMu.Unlock()

	s.logger.Debug("Store mutation applied", slog.String("event", string(ev.Kind)), slog.Int("id", ev.ID))
	for _, sub := range subs {
		sub.fn(ev)
	}
}

// nextID returns max(existing ids)+1, or 1 for an empty collection.
func nextID[T any](items []T, id func(T) int) int {
	highest := 0
	for _, it := range items {
		if v := id(it); v > highest {
			highest = v
		}
	}
	return highest + 1
}

// State is a deep-copied snapshot of the whole store.
type State struct {
	Members             []domain.Member
	Projects            []domain.Project
	BankAccounts        []domain.BankAccount
	Transactions        []domain.Transaction
	ChatMessages        []domain.ChatMessage
	CreativeHistory     []domain.CreativeHistoryItem
	Settings            domain.Settings
	MembershipFeeAmount decimal.Decimal
	PixKey              string
	Session             *domain.Session
}

// State returns a snapshot of the store.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := State{
		Members:             cloneMembers(s.members),
		Projects:            cloneProjects(s.projects),
		BankAccounts:        append([]domain.BankAccount{}, s.bankAccounts...),
		Transactions:        append([]domain.Transaction{}, s.transactions...),
		ChatMessages:        append([]domain.ChatMessage{}, s.chatMessages...),
		CreativeHistory:     append([]domain.CreativeHistoryItem{}, s.creativeHistory...),
		Settings:            s.settings.Merge(domain.SettingsPatch{}),
		MembershipFeeAmount: s.feeAmount,
		PixKey:              s.pixKey,
	}
	if live := s.liveSessionLocked(); live != nil {
		sess := live.Clone()
		st.Session = &sess
	}
	return st
}

func (s *Store) Members() []domain.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMembers(s.members)
}

// Member looks a member up by id.
func (s *Store) Member(id int) (domain.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ID == id {
			return m.Clone(), true
		}
	}
	return domain.Member{}, false
}

// MemberByEmail looks a member up by email, ignoring case and surrounding spaces.
func (s *Store) MemberByEmail(email string) (domain.Member, bool) {
	email = strings.TrimSpace(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if strings.EqualFold(m.Email, email) {
			return m.Clone(), true
		}
	}
	return domain.Member{}, false
}

func (s *Store) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProjects(s.projects)
}

func (s *Store) Project(id int) (domain.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return domain.Project{}, false
}

func (s *Store) BankAccounts() []domain.BankAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.BankAccount{}, s.bankAccounts...)
}

func (s *Store) Transactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Transaction{}, s.transactions...)
}

// ChatMessages returns the chat log oldest first.
func (s *Store) ChatMessages() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ChatMessage{}, s.chatMessages...)
}

// CreativeHistory returns the generation history newest first.
func (s *Store) CreativeHistory() []domain.CreativeHistoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CreativeHistoryItem{}, s.creativeHistory...)
}

func (s *Store) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Merge(domain.SettingsPatch{})
}

func (s *Store) MembershipFeeAmount() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.feeAmount
}

func (s *Store) PixKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pixKey
}

// Now exposes the store clock so derived views agree with stored timestamps.
func (s *Store) Now() time.Time {
	return s.now()
}

func cloneMembers(in []domain.Member) []domain.Member {
	out := make([]domain.Member, len(in))
	for i, m := range in {
		out[i] = m.Clone()
	}
	return out
}

func cloneProjects(in []domain.Project) []domain.Project {
	out := make([]domain.Project, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
