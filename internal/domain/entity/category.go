package entity

import "time"

// Category agrupa productos. El nombre es único sin distinguir mayúsculas.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
