package entities

import "time"

const installedLineSuffix = "#installed"

// CartLineItem is one cart entry. A product appears at most twice in a cart:
// once without installation and once with it.
type CartLineItem struct {
	LineID           string   `json:"line_id"`
	ProductID        string   `json:"product_id"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	Image            string   `json:"image"`
	Quantity         int      `json:"quantity"`
	Price            float64  `json:"price"`
	OriginalPrice    *float64 `json:"original_price,omitempty"`
	HasInstallation  bool     `json:"has_installation,omitempty"`
	InstallationCost *float64 `json:"installation_cost,omitempty"`
}

// LineIDFor builds the synthetic line id of a product variant.
func LineIDFor(productID string, hasInstallation bool) string {
	if hasInstallation {
		return productID + installedLineSuffix
	}
	return productID
}

func (l CartLineItem) LineTotal() float64 {
	total := l.Price * float64(l.Quantity)
	if l.HasInstallation && l.InstallationCost != nil {
		total += *l.InstallationCost * float64(l.Quantity)
	}
	return total
}

// InstallationOption carries the installation half of an add-to-cart request.
type InstallationOption struct {
	HasInstallation  bool
	InstallationCost *float64
}

// Cart is the session cart.
//
// Storage model (DynamoDB):
//   - PK: session_id
//   - items: the full line list serialized as one JSON string
type Cart struct {
	SessionID string         `json:"session_id"`
	Items     []CartLineItem `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Total is the order total including installation fees.
func (c Cart) Total() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.LineTotal()
	}
	return total
}

func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// InstalledLine returns the installation variant line of productID, if any.
func (c Cart) InstalledLine(productID string) (CartLineItem, bool) {
	for _, it := range c.Items {
		if it.ProductID == productID && it.HasInstallation {
			return it, true
		}
	}
	return CartLineItem{}, false
}

// Add merges qty units of p into the line with the same product and
// installation flag, or appends a new line. Prices are always refreshed from
// the product's current discount state.
func (c *Cart) Add(p Product, qty int, opt InstallationOption) {
	price, original := p.EffectivePrice()
	var cost *float64
	if opt.HasInstallation && opt.InstallationCost != nil {
		v := *opt.InstallationCost
		cost = &v
	}

	for i := range c.Items {
		it := &c.Items[i]
		if it.ProductID != p.ID || it.HasInstallation != opt.HasInstallation {
			continue
		}
		it.Quantity += qty
		it.Price = price
		it.OriginalPrice = original
		if cost != nil {
			it.InstallationCost = cost
		}
		return
	}

	c.Items = append(c.Items, CartLineItem{
		LineID:           LineIDFor(p.ID, opt.HasInstallation),
		ProductID:        p.ID,
		Slug:             p.Slug,
		Name:             p.Name,
		Image:            p.Image,
		Quantity:         qty,
		Price:            price,
		OriginalPrice:    original,
		HasInstallation:  opt.HasInstallation,
		InstallationCost: cost,
	})
}

// RemoveProduct drops every line of productID regardless of installation state.
func (c *Cart) RemoveProduct(productID string) int {
	kept := c.Items[:0]
	removed := 0
	for _, it := range c.Items {
		if it.ProductID == productID {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	c.Items = kept
	return removed
}

func (c *Cart) RemoveLine(lineID string) bool {
	for i, it := range c.Items {
		if it.LineID == lineID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuantity sets (not adds) the quantity of every line of productID.
// A quantity <= 0 removes the product.
func (c *Cart) SetQuantity(productID string, qty int) bool {
	if qty <= 0 {
		return c.RemoveProduct(productID) > 0
	}
	found := false
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			found = true
		}
	}
	return found
}

// UpdateInstallationCost rebinds the fee of the installed line of productID.
func (c *Cart) UpdateInstallationCost(productID string, cost float64) bool {
	for i := range c.Items {
		it := &c.Items[i]
		if it.ProductID == productID && it.HasInstallation {
			v := cost
			it.InstallationCost = &v
			return true
		}
	}
	return false
}

// DetachInstallation turns the installed line of productID into a plain line,
// folding it into an existing plain line of the same product.
func (c *Cart) DetachInstallation(productID string) bool {
	installed, plain := -1, -1
	for i, it := range c.Items {
		if it.ProductID != productID {
			continue
		}
		if it.HasInstallation {
			installed = i
		} else {
			plain = i
		}
	}
	if installed < 0 {
		return false
	}
	if plain >= 0 {
		c.Items[plain].Quantity += c.Items[installed].Quantity
		c.Items = append(c.Items[:installed], c.Items[installed+1:]...)
		return true
	}
	it := &c.Items[installed]
	it.HasInstallation = false
	it.InstallationCost = nil
	it.LineID = LineIDFor(productID, false)
	return true
}

func (c *Cart) Clear() {
	c.Items = []CartLineItem{}
}
