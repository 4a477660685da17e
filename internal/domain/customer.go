package domain

import "time"

// Customer owns an ordered collection of debts. Insertion order is
// chronological.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	CreatedAt time.Time
	Debts     []Debt
	Archived  bool
}

// FindDebt returns the index of the debt with the given id, or -1.
func (c *Customer) FindDebt(id string) int {
	for i := range c.Debts {
		if c.Debts[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the customer and all owned debts.
func (c *Customer) Clone() *Customer {
	out := *c
	out.Debts = make([]Debt, len(c.Debts))
	for i := range c.Debts {
		out.Debts[i] = *c.Debts[i].Clone()
	}
	return &out
}
