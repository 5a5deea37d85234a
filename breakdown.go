package chaucha

import (
	"cmp"
	"slices"
)

// VariableExpense is the total discretionary spending of one category.
type VariableExpense struct {
	Category   string  `json:"category"`
	Amount     Amount  `json:"amount"`     // positive
	Percentage Percent `json:"percentage"` // share of all variable spending
}

// VariableExpenses groups the discretionary outflows of txs by category.
//
// Fixed transactions and inflows are ignored. Categories are compared
// literally. The result is sorted by decreasing amount; equal amounts keep
// the order in which their category first appears in txs.
func VariableExpenses(txs []Transaction) []VariableExpense {
	var categories []string
	grouped := make(map[string]Amount)
	var total Amount
	for _, tx := range txs {
		if !tx.IsVariable() {
			continue
		}
		amount := tx.Amount.Abs()
		if _, exists := grouped[tx.Category]; !exists {
			categories = append(categories, tx.Category)
		}
		grouped[tx.Category] += amount
		total += amount
	}

	list := make([]VariableExpense, 0, len(categories))
	for _, c := range categories {
		list = append(list, VariableExpense{
			Category:   c,
			Amount:     grouped[c],
			Percentage: share(grouped[c], total),
		})
	}
	slices.SortStableFunc(list, func(a, b VariableExpense) int { return cmp.Compare(b.Amount, a.Amount) })
	return list
}
