package models

import "fmt"

// ItemType distinguishes product and ticket line items
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeTicket  ItemType = "ticket"
)

// CartLineItem represents one distinct purchasable selection in the cart.
// Two additions resolving to the same derived ID merge into a single line.
type CartLineItem struct {
	ID           string   `json:"id"`
	Type         ItemType `json:"type"`
	Name         string   `json:"name"`
	Price        int      `json:"price"` // unit price in cents
	Quantity     int      `json:"quantity"`
	Image        string   `json:"image,omitempty"`
	Size         string   `json:"size,omitempty"`
	EventName    string   `json:"event_name,omitempty"`
	ProductID    string   `json:"product_id,omitempty"`
	TicketTypeID string   `json:"ticket_type_id,omitempty"`
}

// Subtotal returns price * quantity in cents
func (li *CartLineItem) Subtotal() int {
	return li.Price * li.Quantity
}

// Reference returns the product or ticket type ID depending on the item type
func (li *CartLineItem) Reference() string {
	if li.Type == ItemTypeTicket {
		return li.TicketTypeID
	}
	return li.ProductID
}

// LineItemID derives the merge key for a cart line. Items with the same
// type, reference and size collapse into one line.
func LineItemID(itemType ItemType, reference, size string) string {
	if size == "" {
		size = "default"
	}
	return fmt.Sprintf("%s-%s-%s", itemType, reference, size)
}

// Cart is an ordered sequence of line items. Insertion order is preserved;
// updates never reorder existing lines.
type Cart struct {
	Items []CartLineItem `json:"items"`
}

// AddItem merges the candidate into the cart. An existing line with the same
// derived ID only gains quantity; its name, price and image keep the values
// from when it was first added. Otherwise the candidate is appended with the
// computed ID.
func (c *Cart) AddItem(candidate CartLineItem) string {
	id := LineItemID(candidate.Type, candidate.Reference(), candidate.Size)

	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity += candidate.Quantity
			return id
		}
	}

	candidate.ID = id
	c.Items = append(c.Items, candidate)
	return id
}

// RemoveItem deletes the line with the given ID; absent IDs are a no-op.
func (c *Cart) RemoveItem(id string) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity on the matching line. A quantity of zero
// or less removes the line. Unknown IDs are a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = nil
}

// Total returns the sum of price*quantity over all lines, in cents
func (c *Cart) Total() int {
	total := 0
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// Count returns the sum of quantities over all lines
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalInCurrency returns the cart total in the main currency unit
func (c *Cart) TotalInCurrency() float64 {
	return float64(c.Total()) / 100.0
}
