package domain

import "time"

// AssessmentStatus refleja el avance de una dimension.
type AssessmentStatus string

const (
	StatusNotStarted AssessmentStatus = "not_started"
	StatusInProgress AssessmentStatus = "in_progress"
	StatusCompleted  AssessmentStatus = "completed"
)

// AssessmentRecord guarda el progreso de una dimension: respuestas crudas
// en orden y el analisis estructurado cuando el agente termina.
type AssessmentRecord struct {
	Status      AssessmentStatus  `json:"status"`
	Responses   []string          `json:"responses"`
	Analysis    *SpectrumAnalysis `json:"analysis,omitempty"`
	StartedAt   *time.Time        `json:"started_at,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

// UserProfile es el registro persistente por usuario. Siempre contiene
// exactamente las 12 dimensiones conocidas como claves.
type UserProfile struct {
	UserID      string                         `json:"user_id"`
	Name        string                         `json:"name"`
	Assessments map[Dimension]AssessmentRecord `json:"assessments"`
	Report      *CareerReport                  `json:"report,omitempty"`
	CreatedAt   time.Time                      `json:"created_at"`
	UpdatedAt   time.Time                      `json:"updated_at"`
}

// NewUserProfile crea un perfil con las 12 dimensiones inicializadas.
func NewUserProfile(userID, name string) *UserProfile {
	now := time.Now().UTC()
	assessments := make(map[Dimension]AssessmentRecord, DimensionCount)
	for _, d := range DimensionOrder {
		assessments[d] = AssessmentRecord{
			Status:    StatusNotStarted,
			Responses: []string{},
		}
	}
	return &UserProfile{
		UserID:      userID,
		Name:        name,
		Assessments: assessments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CompletedCount cuenta dimensiones en estado completed.
func (p *UserProfile) CompletedCount() int {
	count := 0
	for _, d := range DimensionOrder {
		if p.Assessments[d].Status == StatusCompleted {
			count++
		}
	}
	return count
}

// CompletionPercent devuelve el porcentaje de avance (completed/12*100).
// El resultado no depende del orden en que se completaron las dimensiones.
func (p *UserProfile) CompletionPercent() float64 {
	return float64(p.CompletedCount()) / float64(DimensionCount) * 100.0
}

// IsComplete reporta si las 12 dimensiones estan completadas.
func (p *UserProfile) IsComplete() bool {
	return p.CompletedCount() == DimensionCount
}

// NextDimension devuelve la primera dimension sin completar segun el orden
// fijo del flujo, o "" si todo esta completo.
func (p *UserProfile) NextDimension() Dimension {
	for _, d := range DimensionOrder {
		if p.Assessments[d].Status != StatusCompleted {
			return d
		}
	}
	return ""
}

// Normalize repara perfiles cargados de disco: asegura que existan las 12
// claves conocidas y que la lista de respuestas nunca sea nil.
func (p *UserProfile) Normalize() {
	if p.Assessments == nil {
		p.Assessments = make(map[Dimension]AssessmentRecord, DimensionCount)
	}
	for _, d := range DimensionOrder {
		rec, ok := p.Assessments[d]
		if !ok {
			rec = AssessmentRecord{Status: StatusNotStarted}
		}
		if rec.Responses == nil {
			rec.Responses = []string{}
		}
		if rec.Status == "" {
			rec.Status = StatusNotStarted
		}
		p.Assessments[d] = rec
	}
	for d := range p.Assessments {
		if !d.IsValid() {
			delete(p.Assessments, d)
		}
	}
}
