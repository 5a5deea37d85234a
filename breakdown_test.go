package chaucha

import (
	"math"
	"reflect"
	"testing"
)

func TestVariableExpenses(t *testing.T) {
	txs := []Transaction{
		{Amount: -12500, Category: "Alimentación"},
		{Amount: -4200, Category: "Ocio"},
		{Amount: -8500, Category: "Entretenimiento", IsFixed: true},
	}
	got := VariableExpenses(txs)

	if len(got) != 2 {
		t.Fatalf("VariableExpenses() = %v, want 2 categories", got)
	}
	want := []struct {
		category   string
		amount     Amount
		percentage float64
	}{
		{"Alimentación", 12500, 74.85},
		{"Ocio", 4200, 25.15},
	}
	for i, w := range want {
		if got[i].Category != w.category || got[i].Amount != w.amount {
			t.Errorf("entry %d = %v, want %s %d", i, got[i], w.category, w.amount)
		}
		if math.Abs(float64(got[i].Percentage)-w.percentage) > 0.01 {
			t.Errorf("entry %d percentage = %v, want ≈%v", i, got[i].Percentage, w.percentage)
		}
	}
}

func TestVariableExpenses_Empty(t *testing.T) {
	for name, txs := range map[string][]Transaction{
		"nil":         nil,
		"inflows":     {{Amount: 1000, Category: "Ingresos"}, {Amount: 0, Category: "Ajuste"}},
		"fixed only":  {{Amount: -8500, Category: "Entretenimiento", IsFixed: true}},
		"empty slice": {},
	} {
		t.Run(name, func(t *testing.T) {
			got := VariableExpenses(txs)
			if got == nil || len(got) != 0 {
				t.Errorf("VariableExpenses() = %#v, want an empty list", got)
			}
		})
	}
}

func TestVariableExpenses_Demo(t *testing.T) {
	got := VariableExpenses(DemoTransactions())
	wantOrder := []string{"Alimentación", "Compras", "Transporte", "Salud", "Ocio"}
	wantAmounts := []Amount{57500, 35990, 25000, 12990, 4200}

	if len(got) != len(wantOrder) {
		t.Fatalf("VariableExpenses() = %v, want %d categories", got, len(wantOrder))
	}
	var sum Percent
	for i := range got {
		if got[i].Category != wantOrder[i] || got[i].Amount != wantAmounts[i] {
			t.Errorf("entry %d = %s %d, want %s %d", i, got[i].Category, got[i].Amount, wantOrder[i], wantAmounts[i])
		}
		if i > 0 && got[i].Amount > got[i-1].Amount {
			t.Errorf("entry %d is larger than entry %d", i, i-1)
		}
		sum += got[i].Percentage
	}
	if !sum.Equal(100) {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}

func TestVariableExpenses_FilterAndGrouping(t *testing.T) {
	txs := []Transaction{
		{Amount: -100, Category: "Ocio"},
		{Amount: -100, Category: "ocio"}, // no case folding
		{Amount: -100, Category: "Ocio "},
		{Amount: 5000, Category: "Ocio"},
		{Amount: -900, Category: "Ocio", IsFixed: true},
		{Amount: -50, Category: "Ocio"},
	}
	got := VariableExpenses(txs)
	want := []VariableExpense{
		{Category: "Ocio", Amount: 150, Percentage: share(150, 350)},
		{Category: "ocio", Amount: 100, Percentage: share(100, 350)},
		{Category: "Ocio ", Amount: 100, Percentage: share(100, 350)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("VariableExpenses() = %v, want %v", got, want)
	}
}

func TestVariableExpenses_TiesKeepFirstSeenOrder(t *testing.T) {
	txs := []Transaction{
		{Amount: -10, Category: "b"},
		{Amount: -10, Category: "a"},
		{Amount: -10, Category: "c"},
	}
	got := VariableExpenses(txs)
	for i, c := range []string{"b", "a", "c"} {
		if got[i].Category != c {
			t.Errorf("entry %d = %q, want %q", i, got[i].Category, c)
		}
	}
}
