package domain

// Receipt is a purchase receipt as submitted by a client. Monetary amounts
// stay strings end to end; the scoring engine parses them with exact decimal
// arithmetic. A Receipt is immutable once accepted by the validator.
type Receipt struct {
	Retailer     string `json:"retailer"`
	PurchaseDate string `json:"purchaseDate"`
	PurchaseTime string `json:"purchaseTime"`
	Items        []Item `json:"items"`
	Total        string `json:"total"`
}

// Item is a single line item on a receipt. It has no identity of its own.
type Item struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}

// ScoredReceipt binds the points awarded for a receipt to the identifier
// minted for it at submission time. Once written it is never mutated.
type ScoredReceipt struct {
	ID     string `json:"id"`
	Points int64  `json:"points"`
}
