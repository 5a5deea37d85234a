package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/chaucha"
)

func profile() chaucha.UserData {
	return chaucha.UserData{
		Name:            "Camila",
		MonthlyIncome:   1200000,
		CurrentBalance:  850000,
		CreditCardUsed:  300000,
		CreditCardLimit: 1000000,
		FixedExpenses: []chaucha.FixedExpense{
			{ID: "e1", Name: "Arriendo", Amount: 450000, Icon: "home", Paid: true},
			{ID: "e2", Name: "Plan Celular", Amount: 15000, Icon: "smartphone"},
		},
		Goals: []chaucha.Goal{
			{ID: "g1", Name: "Viaje", TargetAmount: 100000, CurrentAmount: 80000, Type: chaucha.GoalPurchase},
		},
		Transactions: []chaucha.Transaction{
			{ID: "t1", Date: "2023-10-20", Description: "Uber Eats", Amount: -12500, Category: "Alimentación"},
			{ID: "t2", Date: "2023-10-01", Description: "Sueldo", Amount: 1200000, Category: "Ingresos"},
		},
		IsConfigured: true,
	}
}

// assertContains fails the test for every want that is missing from got.
func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(got, w) {
			t.Errorf("output does not contain %q:\n%s", w, got)
		}
	}
}

func TestDashboard(t *testing.T) {
	u := profile()
	got := Dashboard(chaucha.NewDashboard(u), "CLP")
	assertContains(t, got,
		"# Hola, Camila",
		"550.000", // available
		"## Últimos movimientos",
		"Uber Eats",
		"12.500",
		"30.00%",
	)
	if strings.Contains(got, "Atención") {
		t.Errorf("low credit usage must not warn:\n%s", got)
	}

	u.CreditCardUsed = 900000
	assertContains(t, Dashboard(chaucha.NewDashboard(u), "CLP"), "Atención: usas más del 80%")

	u.CreditCardUsed = 1100000
	assertContains(t, Dashboard(chaucha.NewDashboard(u), "CLP"), "superaste el cupo")
}

func TestBudget(t *testing.T) {
	got := Budget(chaucha.NewBudget(profile()), "CLP")
	assertContains(t, got,
		"# Presupuesto",
		"[x]", "Arriendo",
		"[ ]", "Plan Celular",
		"Alimentación",
		"100.00%",
		"722.500", // remaining
	)
}

func TestBudget_Empty(t *testing.T) {
	got := Budget(chaucha.NewBudget(chaucha.UserData{}), "CLP")
	assertContains(t, got, "Sin gastos fijos.", "Sin gastos variables.")
}

func TestGoals(t *testing.T) {
	assertContains(t, Goals(profile().Goals, "CLP"), "Viaje", "purchase", "80%", "100.000")
	assertContains(t, Goals(nil, "CLP"), "Aún no tienes metas")
}

func TestTransactions(t *testing.T) {
	got := Transactions(profile().Transactions, "CLP")
	assertContains(t, got, "Sueldo", "1.200.000", "variable")
	assertContains(t, Transactions(nil, "CLP"), "Sin movimientos.")
}

func TestSettings(t *testing.T) {
	got := Settings(profile(), "/tmp/chaucha_data_v2.json", "CLP")
	assertContains(t, got, "Camila", "CLP", "/tmp/chaucha_data_v2.json", "300.000", "1.000.000")
}

func TestProfile(t *testing.T) {
	got := Profile(profile(), "CLP")
	assertContains(t, got, "# Hola, Camila", "# Presupuesto", "# Metas")
}

func TestBar(t *testing.T) {
	testCases := []struct {
		p    chaucha.Percent
		full int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{250, 20},
		{-5, 0},
	}
	for _, tc := range testCases {
		got := bar(tc.p)
		if n := strings.Count(got, "█"); n != tc.full {
			t.Errorf("bar(%v) has %d full cells, want %d", tc.p, n, tc.full)
		}
		if n := strings.Count(got, "█") + strings.Count(got, "░"); n != barWidth {
			t.Errorf("bar(%v) has %d cells, want %d", tc.p, n, barWidth)
		}
	}
}
