package models

import "time"

// ReceiptStatusCompleted is the only status a receipt can carry; there is
// no payment flow that could leave one pending.
const ReceiptStatusCompleted = "completed"

// Receipt is the summary returned by checkout. It is generated per call
// and returned to the client, never written to the database, so it has no
// bson tags.
type Receipt struct {
	OrderID       string     `json:"orderId"`
	Timestamp     time.Time  `json:"timestamp"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	Items         []CartItem `json:"items"`
	Total         float64    `json:"total"`
	Status        string     `json:"status"`
}
