package dto

import "time"

// DayResponse salida de un día operativo. Date en formato YYYY-MM-DD.
type DayResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	IsOpen    bool      `json:"is_open"`
	OpenedBy  string    `json:"opened_by"`
	ClosedBy  *string   `json:"closed_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DayListResponse lista paginada de días.
type DayListResponse struct {
	Items []DayResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
