package domain

import "time"

// Stage es la etapa de la conversacion dentro de una sesion.
type Stage string

const (
	StageWelcome    Stage = "welcome"
	StageCasualChat Stage = "casual_chat"
	StageAssessment Stage = "assessment_flow"
	StageCompleted  Stage = "completed"
)

// Session es el estado conversacional en memoria de un usuario.
// Se reconstruye por proceso; la fuente durable es el perfil en disco.
type Session struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Stage           Stage     `json:"stage"`
	ActiveDimension Dimension `json:"active_dimension,omitempty"`
	CasualExchanges int       `json:"casual_exchanges"`
	TotalExchanges  int       `json:"total_exchanges"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Message es un turno del transcript (usuario o asistente).
type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id,omitempty"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
