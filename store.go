package chaucha

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// ErrInvalid is returned, wrapped with details, when an operation's arguments are rejected.
var ErrInvalid = errors.New("invalid argument")

// errUnchanged is returned by a mutation function that left the profile untouched.
var errUnchanged = errors.New("unchanged")

// Store owns the UserData aggregate. Every read and write goes through it.
//
// A successful mutation is persisted before the new snapshot becomes
// visible, then subscribers are notified. A Store is safe for concurrent use.
type Store struct {
	storage Storage
	key     string
	log     *zap.Logger

	mu      sync.Mutex
	data    UserData
	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	f  func(UserData)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used by the store. The default discards everything.
func WithLogger(l *zap.Logger) Option { return func(s *Store) { s.log = l } }

// WithKey overrides the storage key, StorageKey by default.
func WithKey(key string) Option { return func(s *Store) { s.key = key } }

// Open loads the profile persisted in storage.
//
// When there is no record, or the record cannot be decoded, the store starts
// with DefaultUserData. Only a failing storage medium is reported as an error.
func Open(storage Storage, opts ...Option) (*Store, error) {
	s := &Store{
		storage: storage,
		key:     StorageKey,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	s.data = data
	return s, nil
}

// load reads the persisted profile, falling back to the default one.
func (s *Store) load() (UserData, error) {
	raw, err := s.storage.Get(s.key)
	if errors.Is(err, ErrNotFound) {
		s.log.Debug("no saved profile, starting with the default one", zap.String("key", s.key))
		return DefaultUserData(), nil
	}
	if err != nil {
		return UserData{}, fmt.Errorf("cannot load profile %q: %w", s.key, err)
	}
	data, err := decodeProfile(raw)
	if err != nil {
		s.log.Warn("saved profile is not readable, starting with the default one", zap.String("key", s.key), zap.Error(err))
		return DefaultUserData(), nil
	}
	return data, nil
}

// profileFields are the members every saved profile has.
var profileFields = []string{"name", "monthlyIncome", "currentBalance", "creditCardUsed", "creditCardLimit", "fixedExpenses", "goals", "transactions", "isConfigured"}

// decodeProfile decodes a saved profile. A document that is not an object
// with every profile member, like null or {}, is not a profile.
func decodeProfile(raw []byte) (UserData, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return UserData{}, err
	}
	if members == nil {
		return UserData{}, errors.New("empty document")
	}
	for _, f := range profileFields {
		if _, ok := members[f]; !ok {
			return UserData{}, fmt.Errorf("missing %q", f)
		}
	}
	var data UserData
	if err := json.Unmarshal(raw, &data); err != nil {
		return UserData{}, err
	}
	return data, nil
}

// Snapshot returns a copy of the current profile.
func (s *Store) Snapshot() UserData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Subscribe registers f to be called with the new snapshot after every
// successful mutation. Calling the returned function unsubscribes f.
func (s *Store) Subscribe(f func(UserData)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, f: f})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
	}
}

// Patch is a partial UserData: nil fields are left untouched, the others
// replace the current value. Slices replace the whole sequence.
type Patch struct {
	Name            *string         `json:"name,omitempty"`
	MonthlyIncome   *Amount         `json:"monthlyIncome,omitempty"`
	CurrentBalance  *Amount         `json:"currentBalance,omitempty"`
	CreditCardUsed  *Amount         `json:"creditCardUsed,omitempty"`
	CreditCardLimit *Amount         `json:"creditCardLimit,omitempty"`
	FixedExpenses   *[]FixedExpense `json:"fixedExpenses,omitempty"`
	Goals           *[]Goal         `json:"goals,omitempty"`
	Transactions    *[]Transaction  `json:"transactions,omitempty"`
	IsConfigured    *bool           `json:"isConfigured,omitempty"`
}

// apply merges p into u.
func (p Patch) apply(u *UserData) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.MonthlyIncome != nil {
		u.MonthlyIncome = *p.MonthlyIncome
	}
	if p.CurrentBalance != nil {
		u.CurrentBalance = *p.CurrentBalance
	}
	if p.CreditCardUsed != nil {
		u.CreditCardUsed = *p.CreditCardUsed
	}
	if p.CreditCardLimit != nil {
		u.CreditCardLimit = *p.CreditCardLimit
	}
	if p.FixedExpenses != nil {
		u.FixedExpenses = slices.Clone(*p.FixedExpenses)
	}
	if p.Goals != nil {
		u.Goals = slices.Clone(*p.Goals)
	}
	if p.Transactions != nil {
		u.Transactions = slices.Clone(*p.Transactions)
	}
	if p.IsConfigured != nil {
		u.IsConfigured = *p.IsConfigured
	}
}

// Update shallow-merges p into the profile, persists it and returns the new snapshot.
//
// Update never rejects a patch. It is the raw primitive behind the explicit
// operations, which validate their arguments first.
func (s *Store) Update(p Patch) (UserData, error) {
	return s.mutate("update", func(u *UserData) error {
		p.apply(u)
		return nil
	})
}

// ToggleExpensePaid flips the paid flag of the fixed expense id.
// Nothing happens if there is no such expense.
func (s *Store) ToggleExpensePaid(id string) error {
	_, err := s.mutate("toggle expense", func(u *UserData) error {
		i := slices.IndexFunc(u.FixedExpenses, func(e FixedExpense) bool { return e.ID == id })
		if i < 0 {
			s.log.Debug("toggle of an unknown expense ignored", zap.String("id", id))
			return errUnchanged
		}
		u.FixedExpenses[i].Paid = !u.FixedExpenses[i].Paid
		return nil
	})
	return err
}

// AddGoal appends g to the goals.
func (s *Store) AddGoal(g Goal) error {
	if err := validateGoal(g); err != nil {
		return err
	}
	_, err := s.mutate("add goal", func(u *UserData) error {
		u.Goals = append(u.Goals, g)
		return nil
	})
	return err
}

// UpdateGoalAmount adds delta to the saved amount of goal id. The result is
// kept within [0, targetAmount]. Nothing happens if there is no such goal.
func (s *Store) UpdateGoalAmount(id string, delta Amount) error {
	_, err := s.mutate("update goal amount", func(u *UserData) error {
		i := slices.IndexFunc(u.Goals, func(g Goal) bool { return g.ID == id })
		if i < 0 {
			s.log.Debug("update of an unknown goal ignored", zap.String("id", id))
			return errUnchanged
		}
		g := &u.Goals[i]
		g.CurrentAmount = max(min(g.CurrentAmount+delta, g.TargetAmount), 0)
		return nil
	})
	return err
}

// Reset replaces the profile with the default one and erases the persisted
// record, so the next Open starts as a fresh install.
func (s *Store) Reset() error {
	s.mu.Lock()
	if err := s.storage.Delete(s.key); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("cannot erase profile %q: %w", s.key, err)
	}
	s.data = DefaultUserData()
	snap, subs := s.data.Clone(), slices.Clone(s.subs)
	s.mu.Unlock()

	s.log.Info("profile reset", zap.String("key", s.key))
	notify(subs, snap)
	return nil
}

// VariableExpenses returns the breakdown of the current discretionary spending.
// It is recomputed on every call.
func (s *Store) VariableExpenses() []VariableExpense {
	s.mu.Lock()
	txs := slices.Clone(s.data.Transactions)
	s.mu.Unlock()
	return VariableExpenses(txs)
}

// Budget returns the budget computed from the current profile.
func (s *Store) Budget() Budget { return NewBudget(s.Snapshot()) }

// Dashboard returns the dashboard figures of the current profile.
func (s *Store) Dashboard() Dashboard { return NewDashboard(s.Snapshot()) }

// mutate applies f to a copy of the profile, persists the copy and makes it
// current. If f fails nothing changes; errUnchanged is not reported.
func (s *Store) mutate(op string, f func(*UserData) error) (UserData, error) {
	s.mu.Lock()
	next := s.data.Clone()
	if err := f(&next); err != nil {
		current := s.data.Clone()
		s.mu.Unlock()
		if errors.Is(err, errUnchanged) {
			return current, nil
		}
		return current, err
	}
	raw, err := json.Marshal(next)
	if err != nil {
		s.mu.Unlock()
		return UserData{}, fmt.Errorf("cannot encode profile: %w", err)
	}
	if err := s.storage.Set(s.key, raw); err != nil {
		current := s.data.Clone()
		s.mu.Unlock()
		return current, fmt.Errorf("cannot save profile %q: %w", s.key, err)
	}
	s.data = next
	snap, subs := next.Clone(), slices.Clone(s.subs)
	s.mu.Unlock()

	s.log.Debug("profile saved", zap.String("op", op), zap.Int("bytes", len(raw)))
	notify(subs, snap)
	return snap, nil
}

// notify calls every subscriber with the same snapshot, in subscription order.
func notify(subs []subscriber, snap UserData) {
	for _, sub := range subs {
		sub.f(snap)
	}
}
