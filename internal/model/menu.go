package model

// ItemType distinguishes sellable dishes from raw ingredients in the
// inventory.  Both live in the same collection; selectors filter by type.
type ItemType string

const (
	ItemTypeDish       ItemType = "dish"       // plated item sold through the POS
	ItemTypeIngredient ItemType = "ingredient" // stock-only item, never carted
)

// MenuItem is a single menu/inventory line.  Items are created once and
// never deleted; running out of stock zeroes the count instead.
//
// Fields:
//
//	ID       – stable numeric identifier, unique across the inventory.
//	Name     – display name.
//	Category – free-form grouping (entrantes, principales, bebidas...).
//	Price    – unit price as a plain USD-equivalent number.
//	Stock    – units on hand, never negative.
//	Unit     – stock unit label (ud, kg, l).
//	Type     – dish or ingredient.
//	Img      – optional image reference for the UI.
type MenuItem struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	Stock    int      `json:"stock"`
	Unit     string   `json:"unit"`
	Type     ItemType `json:"type"`
	Img      string   `json:"img,omitempty"`
}

// CartItem is a menu item staged in the point-of-sale cart together with the
// requested quantity.  A cart never holds a zero-quantity line and a line's
// quantity never exceeds the item's live stock; the engine re-clamps on every
// inventory change.
type CartItem struct {
	MenuItem
	Qty int `json:"qty"` // 1..live stock
}
