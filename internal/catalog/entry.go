package catalog

import "fmt"

// Entry is one sellable dish.
type Entry struct {
	ID          string  `json:"id" dynamodbav:"id" validate:"required"`
	Name        string  `json:"name" dynamodbav:"name" validate:"required"`
	Description string  `json:"description" dynamodbav:"description"`
	Price       float64 `json:"price" dynamodbav:"price" validate:"gte=0"`
	Category    string  `json:"category" dynamodbav:"category" validate:"required"`
	Image       string  `json:"image" dynamodbav:"image"`
	Featured    bool    `json:"featured,omitempty" dynamodbav:"featured,omitempty"`
}

// PriceLabel formats the unit price the way the menu prints it.
func (e Entry) PriceLabel() string {
	return fmt.Sprintf("$%.2f", e.Price)
}

// Category is a label plus its member entries in catalog order.
type Category struct {
	Name  string
	Items []Entry
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
