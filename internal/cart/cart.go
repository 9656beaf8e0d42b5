// Package cart maintains the shopping cart: one line per product with a
// quantity, persisted in full after every mutation so a restart picks up
// exactly where the user left off.
package cart

import (
	"fmt"

	"github.com/aislekit/aisle/internal/catalog"
)

// Line is one cart entry. Title, price and thumbnail are snapshots taken
// when the product was first added; later catalog changes do not alter
// lines already in the cart.
type Line struct {
	ID        int64   `toml:"id"`
	Title     string  `toml:"title"`
	Price     float64 `toml:"price"`
	Thumbnail string  `toml:"thumbnail"`
	Quantity  int     `toml:"quantity"`
}

// Ledger owns the cart lines. It is not safe for concurrent use; the
// application mutates it from a single event loop.
type Ledger struct {
	path  string
	lines []Line
}

// Open loads the persisted cart at path, degrading to an empty cart when
// the file is missing, unreadable, or carries an unknown record version.
func Open(path string) (*Ledger, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve cart path: %w", err)
	}
	return &Ledger{
		path:  resolved,
		lines: load(resolved),
	}, nil
}

// Add increments the quantity for the product, creating a line with
// quantity 1 on first add.
func (l *Ledger) Add(p catalog.Product) error {
	for i := range l.lines {
		if l.lines[i].ID == p.ID {
			l.lines[i].Quantity++
			return l.save()
		}
	}
	l.lines = append(l.lines, Line{
		ID:        p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Thumbnail: p.Thumbnail,
		Quantity:  1,
	})
	return l.save()
}

// Remove deletes the line outright, regardless of quantity. Removing an
// absent id is a no-op.
func (l *Ledger) Remove(id int64) error {
	for i := range l.lines {
		if l.lines[i].ID == id {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return l.save()
		}
	}
	return nil
}

// Increase adds one to the quantity of an existing line. Unknown ids are
// a no-op.
func (l *Ledger) Increase(id int64) error {
	for i := range l.lines {
		if l.lines[i].ID == id {
			l.lines[i].Quantity++
			return l.save()
		}
	}
	return nil
}

// Decrease subtracts one from the quantity; the line disappears the
// moment it would reach zero.
func (l *Ledger) Decrease(id int64) error {
	for i := range l.lines {
		if l.lines[i].ID == id {
			l.lines[i].Quantity--
			if l.lines[i].Quantity <= 0 {
				l.lines = append(l.lines[:i], l.lines[i+1:]...)
			}
			return l.save()
		}
	}
	return nil
}

// Clear removes every line.
func (l *Ledger) Clear() error {
	l.lines = nil
	return l.save()
}

// Lines returns a copy of the cart in insertion order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// TotalItems is the sum of quantities across all lines.
func (l *Ledger) TotalItems() int {
	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of price x quantity across all lines.
func (l *Ledger) TotalPrice() float64 {
	total := 0.0
	for _, line := range l.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
