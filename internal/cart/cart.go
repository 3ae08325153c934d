// Package cart implements the client-side shopping cart. It is pure state:
// mutations recompute the aggregate totals and persistence is delegated to
// a Store.
package cart

import (
	"math"

	"bookstore/internal/book"
)

// Item is one cart line: a snapshot of the book at the time it was added,
// plus the quantity and the derived subtotal.
type Item struct {
	Book     book.Book `json:"book"`
	Quantity int       `json:"quantity"`
	Subtotal float64   `json:"subtotal"`
}

// Cart holds the ordered item lines, unique by book id. TotalPrice and
// ItemCount are derived and recomputed after every mutation.
type Cart struct {
	Items      []Item  `json:"items"`
	TotalPrice float64 `json:"totalPrice"`
	ItemCount  int     `json:"itemCount"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Items: []Item{}}
}

// Add puts one copy of b into the cart. If the book is already present its
// quantity is incremented; otherwise a new line is appended.
func (c *Cart) Add(b book.Book) {
	for i := range c.Items {
		if c.Items[i].Book.BookID == b.BookID {
			c.Items[i].Quantity++
			c.recompute()
			return
		}
	}
	c.Items = append(c.Items, Item{Book: b, Quantity: 1})
	c.recompute()
}

// Remove drops the line for id. Removing an absent id is a no-op.
func (c *Cart) Remove(id int64) {
	for i := range c.Items {
		if c.Items[i].Book.BookID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.recompute()
			return
		}
	}
}

// SetQuantity sets the line quantity for id. Quantities below 1 are
// ignored; use Remove to drop a line.
func (c *Cart) SetQuantity(id int64, n int) {
	if n < 1 {
		return
	}
	for i := range c.Items {
		if c.Items[i].Book.BookID == id {
			c.Items[i].Quantity = n
			c.recompute()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []Item{}
	c.recompute()
}

// recompute folds the derived fields from the item lines. Called after
// every mutation so the aggregates are never stale.
func (c *Cart) recompute() {
	if c.Items == nil {
		c.Items = []Item{}
	}
	total := 0.0
	count := 0
	for i := range c.Items {
		c.Items[i].Subtotal = roundCents(float64(c.Items[i].Quantity) * c.Items[i].Book.Price)
		total += c.Items[i].Subtotal
		count += c.Items[i].Quantity
	}
	c.TotalPrice = roundCents(total)
	c.ItemCount = count
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
