package response

import (
	"time"

	"solar_pipeline/internal/domain/entities"
)

type VisitResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	GPS       string    `json:"gps"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func FromVisit(v entities.Visit) VisitResponse {
	return VisitResponse{
		ID:        v.ID,
		ClientID:  v.ClientID,
		Date:      v.Date,
		Time:      v.Time,
		GPS:       v.GPS,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
	}
}

func FromVisits(vs []entities.Visit) []VisitResponse {
	out := make([]VisitResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVisit(v))
	}
	return out
}
