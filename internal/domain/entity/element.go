// Package entity defines the core business entities for the domain layer.
package entity

// Element is the alchemical classification assigned to every transaction.
// It is a thematic tag, unrelated to billing.
type Element string

const (
	ElementTierra Element = "Tierra" // structural spending (housing, debt)
	ElementAgua   Element = "Agua"   // day-to-day variable spending
	ElementAire   Element = "Aire"   // small/volatile spending, subscriptions
	ElementFuego  Element = "Fuego"  // leisure, hobbies, experiences
)

// Elements lists all valid elements in display order.
var Elements = []Element{ElementTierra, ElementAgua, ElementAire, ElementFuego}

// IsValid reports whether the element is one of the four fixed values.
func (e Element) IsValid() bool {
	switch e {
	case ElementTierra, ElementAgua, ElementAire, ElementFuego:
		return true
	}
	return false
}
