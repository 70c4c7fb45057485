package models

// MenuItem is a catalog entry available for ordering. The catalog is fixed at
// startup; menu items are never created or changed at runtime.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// CartLine is one item-and-quantity pairing in the active cart. The menu item
// fields are copied at add time, so a line stays intact even if the catalog
// changes between releases.
type CartLine struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
}

// Order is an immutable record of a completed checkout. Monetary totals are
// stored as strings fixed to two decimal places, exactly as shown on the
// receipt.
type Order struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string      `gorm:"index;not null"           json:"customerName"`
	Email        string      `gorm:"index;not null"           json:"email"`
	Address      string      `gorm:"not null"                 json:"address"`
	Items        []OrderItem `gorm:"foreignKey:OrderID"       json:"items"`
	Subtotal     string      `gorm:"not null"                 json:"subtotal"`
	Tax          string      `gorm:"not null"                 json:"tax"`
	Total        string      `gorm:"not null"                 json:"total"`
	Date         string      `gorm:"index;not null"           json:"date"`
}

// OrderItem is a line snapshot inside an Order, decoupled from the live
// catalog entry it came from.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID  uint    `gorm:"index;not null"           json:"-"`
	ItemID   int     `gorm:"not null"                 json:"id"`
	Name     string  `gorm:"not null"                 json:"name"`
	Price    float64 `gorm:"not null"                 json:"price"`
	Quantity int     `gorm:"not null"                 json:"quantity"`
}
