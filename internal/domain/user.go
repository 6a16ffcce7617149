package domain

import "time"

// User identifica a una persona evaluada. El perfil de evaluacion vive
// aparte, en el profile store.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
