package product

import (
	"github.com/google/uuid"
)

// Product is the inventory entity. Identity is assigned exactly once, in
// New; every other field changes only through Replace.
type Product struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Sector      string    `db:"sector"`
	Description string    `db:"description"`
	Price       Price     `db:"price"`
}

func New(name, sector, description string, price Price) Product {
	p := Product{ID: uuid.New()}
	p.Replace(name, sector, description, price)
	return p
}

// Replace swaps every mutable attribute in a single step. There are no
// per-field setters; an update is all-or-nothing.
func (p *Product) Replace(name, sector, description string, price Price) {
	p.Name = name
	p.Sector = sector
	p.Description = description
	p.Price = price
}
