package domain

// CartLine is one (item, quantity) pairing in a customer's in-progress order.
// Only the reference is stored; name and price are always joined from the
// live menu so admin edits show up on the next read.
type CartLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"qty"`
}
