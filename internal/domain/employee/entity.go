package employee

import "time"

// Employee is immutable reference data supplied by the HR system.
type Employee struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Team     string `json:"team"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
