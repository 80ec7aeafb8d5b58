package entities

import "time"

// Visit is a site visit logged against a client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
type Visit struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	GPS       string    `json:"gps"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
