package request

import "solar_pipeline/internal/usecase"

type VisitRequest struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	GPS   string `json:"gps"`
	Notes string `json:"notes"`
}

func (r VisitRequest) ToDraft() usecase.VisitDraft {
	return usecase.VisitDraft{Date: r.Date, Time: r.Time, GPS: r.GPS, Notes: r.Notes}
}
