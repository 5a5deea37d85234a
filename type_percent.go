package chaucha

import "fmt"

// Percent is a percentage, 100 means 100%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// Rounded returns p rounded to the nearest integer, the way progress bars show it.
func (p Percent) Rounded() string {
	return fmt.Sprintf("%.0f%%", float64(p))
}
