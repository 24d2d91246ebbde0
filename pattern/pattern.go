// Package pattern selects positions in a list by index. A Pattern holds a set
// of indices (negative indices count from the end), an optional period that
// repeats them, and an inversion flag.
package pattern

import (
	"github.com/pkg/errors"
)

// ErrInvalidPeriod is returned by Validate when the period is negative.
var ErrInvalidPeriod = errors.New("pattern: period must be non-negative")

type Pattern struct {
	indices  []int
	period   int
	inverted bool
}

// Indices matches exactly the given indices.
func Indices(indices ...int) Pattern {
	res := make([]int, len(indices))
	copy(res, indices)
	return Pattern{indices: res}
}

// First matches the first n positions.
func First(n int) Pattern {
	res := make([]int, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, i)
	}
	return Pattern{indices: res}
}

// Last matches the last n positions.
func Last(n int) Pattern {
	res := make([]int, 0, n)
	for i := n; i > 0; i-- {
		res = append(res, -i)
	}
	return Pattern{indices: res}
}

// All matches every position.
func All() Pattern {
	return Pattern{indices: []int{0}, period: 1}
}

// Periodic returns a copy of p whose indices repeat every n positions.
func (p Pattern) Periodic(n int) Pattern {
	p.period = n
	return p
}

// Inverse returns a copy of p that matches exactly the positions p does not.
func (p Pattern) Inverse() Pattern {
	p.inverted = !p.inverted
	return p
}

func (p Pattern) Period() int {
	return p.period
}

func (p Pattern) Validate() error {
	if p.period < 0 {
		return errors.Wrapf(ErrInvalidPeriod, "got %d", p.period)
	}
	return nil
}

// Matches reports whether index is selected in a list of total items.
// Index may be negative, in which case it counts back from total.
func (p Pattern) Matches(index, total int) bool {
	nonNegative, negative := index, index-total
	if index < 0 {
		nonNegative, negative = index+total, index
	}
	matched := false
	for _, i := range p.indices {
		if p.period > 0 {
			if i >= 0 && mod(i, p.period) == mod(nonNegative, p.period) {
				matched = true
			} else if i < 0 && mod(i, p.period) == mod(negative, p.period) {
				matched = true
			}
		} else if i >= 0 && i == nonNegative {
			matched = true
		} else if i < 0 && i == negative {
			matched = true
		}
		if matched {
			break
		}
	}
	if p.inverted {
		return !matched
	}
	return matched
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
