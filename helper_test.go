package chaucha

import (
	"errors"
	"testing"
)

// sampleUserData returns a configured profile used across tests.
func sampleUserData() UserData {
	return UserData{
		Name:            "Camila",
		MonthlyIncome:   1200000,
		CurrentBalance:  850000,
		CreditCardUsed:  300000,
		CreditCardLimit: 1000000,
		FixedExpenses: []FixedExpense{
			{ID: "e1", Name: "Arriendo", Amount: 450000, Icon: "home", Paid: true},
			{ID: "e2", Name: "Plan Celular", Amount: 15000, Icon: "smartphone"},
		},
		Goals: []Goal{
			{ID: "g1", Name: "Viaje", TargetAmount: 100000, CurrentAmount: 80000, Type: GoalPurchase, Icon: "flight", Color: "bg-black", Deadline: "2026-12-01"},
			{ID: "g2", Name: "Colchón", TargetAmount: 500000, Type: GoalSavings, Icon: "flag", Color: "bg-black"},
		},
		Transactions: []Transaction{
			{ID: "t1", Date: "2023-10-20", Description: "Uber Eats", Amount: -12500, Category: "Alimentación"},
			{ID: "t2", Date: "2023-10-19", Description: "Starbucks", Amount: -4200, Category: "Ocio"},
			{ID: "t5", Date: "2023-10-15", Description: "Netflix", Amount: -8500, Category: "Entretenimiento", IsFixed: true},
			{ID: "t8", Date: "2023-10-01", Description: "Sueldo", Amount: 1200000, Category: "Ingresos"},
		},
		IsConfigured: true,
	}
}

// openSample opens a store on a fresh MemoryStorage holding sampleUserData.
func openSample(t *testing.T) (*Store, *countingStorage) {
	t.Helper()
	storage := &countingStorage{}
	s, err := Open(storage)
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	u := sampleUserData()
	if _, err := s.Update(Patch{
		Name:            &u.Name,
		MonthlyIncome:   &u.MonthlyIncome,
		CurrentBalance:  &u.CurrentBalance,
		CreditCardUsed:  &u.CreditCardUsed,
		CreditCardLimit: &u.CreditCardLimit,
		FixedExpenses:   &u.FixedExpenses,
		Goals:           &u.Goals,
		Transactions:    &u.Transactions,
		IsConfigured:    &u.IsConfigured,
	}); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	storage.sets = 0
	return s, storage
}

// countingStorage is a MemoryStorage that counts writes.
type countingStorage struct {
	MemoryStorage
	sets int
}

func (s *countingStorage) Set(key string, value []byte) error {
	s.sets++
	return s.MemoryStorage.Set(key, value)
}

var errMedium = errors.New("medium unavailable")

// brokenStorage fails on every call selected by its flags.
type brokenStorage struct {
	MemoryStorage
	failGet, failSet, failDelete bool
}

func (s *brokenStorage) Get(key string) ([]byte, error) {
	if s.failGet {
		return nil, errMedium
	}
	return s.MemoryStorage.Get(key)
}

func (s *brokenStorage) Set(key string, value []byte) error {
	if s.failSet {
		return errMedium
	}
	return s.MemoryStorage.Set(key, value)
}

func (s *brokenStorage) Delete(key string) error {
	if s.failDelete {
		return errMedium
	}
	return s.MemoryStorage.Delete(key)
}
