package domain

// DateLayout is the calendar-day format used everywhere a date travels as a
// string (cart slots, availability queries, DB DATE columns).
const DateLayout = "2006-01-02"

// CartLine is one product inside a cart. AvailableStock is the last-known
// availability snapshot for the cart's selected date, captured when the line
// was added or last refreshed.
type CartLine struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
	AvailableStock int     `json:"available_stock"`
}

// Cart holds the lines (unique by product id) and the single event date they
// are bound to. Mutation methods enforce the quantity <= snapshot invariant;
// persistence is a separate concern.
type Cart struct {
	Lines     []CartLine `json:"lines"`
	EventDate string     `json:"event_date"`
}

func (c *Cart) line(productID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

// SetEventDate rebinds the cart to a new date. Availability snapshots refer to
// the old date after this call; callers re-resolve per line and feed the
// results back through RefreshAvailability.
func (c *Cart) SetEventDate(date string) {
	c.EventDate = date
}

// AddItem inserts a line for the product or, if one exists, raises its
// quantity. available is the resolver's answer for the cart's date at call
// time and becomes the line's snapshot, replacing a stale one on merge so the
// combined quantity is checked against what the resolver just reported.
func (c *Cart) AddItem(p *Product, quantity, available int) error {
	if quantity < 1 {
		quantity = 1
	}

	if l := c.line(p.ID); l != nil {
		l.AvailableStock = available
		return c.UpdateQuantity(p.ID, l.Quantity+quantity)
	}

	if quantity > available {
		return &CapacityError{ProductID: p.ID, Available: available}
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID:      p.ID,
		Name:           p.Name,
		UnitPrice:      p.PricePerDay,
		Quantity:       quantity,
		AvailableStock: available,
	})

	return nil
}

// UpdateQuantity sets a line's quantity exactly. A quantity below 1 removes
// the line; a quantity above the line's availability snapshot is rejected and
// the line is left unchanged.
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	l := c.line(productID)
	if l == nil {
		return ErrProductNotFound
	}

	if quantity < 1 {
		c.RemoveItem(productID)
		return nil
	}

	if quantity > l.AvailableStock {
		return &CapacityError{ProductID: productID, Available: l.AvailableStock}
	}

	l.Quantity = quantity
	return nil
}

func (c *Cart) RemoveItem(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties the lines and unbinds the event date.
func (c *Cart) Clear() {
	c.Lines = nil
	c.EventDate = ""
}

// RefreshAvailability replaces a line's snapshot without touching its
// quantity. A quantity now above the new snapshot is left as is; the next
// UpdateQuantity attempt corrects it.
func (c *Cart) RefreshAvailability(productID string, available int) {
	if l := c.line(productID); l != nil {
		l.AvailableStock = available
	}
}

func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

func (c *Cart) TotalUnits() int {
	var units int
	for _, l := range c.Lines {
		units += l.Quantity
	}
	return units
}

func (c *Cart) Contains(productID string) bool {
	return c.line(productID) != nil
}

func (c *Cart) QuantityOf(productID string) int {
	if l := c.line(productID); l != nil {
		return l.Quantity
	}
	return 0
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}
