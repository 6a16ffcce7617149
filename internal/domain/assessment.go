package domain

// Question es una de las 3 preguntas predefinidas de cada dimension.
type Question struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Context  string `json:"context"`
	Purpose  string `json:"purpose"`
}

// SpectrumAnalysis es la salida estructurada esperada del LLM al cerrar una
// dimension. Los campos de lista pueden venir vacios; Summary siempre se
// rellena (del modelo o del fallback deterministico).
type SpectrumAnalysis struct {
	ProfileClarity   string   `json:"profile_clarity"`
	Themes           []string `json:"themes"`
	KeyInsights      []string `json:"key_insights"`
	DevelopmentAreas []string `json:"development_areas"`
	Summary          string   `json:"summary"`
	// Fallback marca analisis generados sin LLM (parseo fallido o modelo caido).
	Fallback bool `json:"fallback,omitempty"`
}

// ReplyType etiqueta cada variante de respuesta del agente u orquestador.
type ReplyType string

const (
	ReplyCasual             ReplyType = "casual_conversation"
	ReplyAssessmentQuestion ReplyType = "assessment_question"
	ReplyAssessmentComplete ReplyType = "assessment_complete"
	ReplyFullReport         ReplyType = "full_report"
	ReplyError              ReplyType = "error_response"
)

// AgentReply es la union etiquetada que reemplaza los dicts sueltos del
// flujo conversacional: el tipo indica que campos son relevantes.
type AgentReply struct {
	Type          ReplyType         `json:"type"`
	Message       string            `json:"message"`
	Dimension     Dimension         `json:"dimension,omitempty"`
	QuestionIndex int               `json:"question_index,omitempty"`
	Progress      string            `json:"progress,omitempty"`
	Analysis      *SpectrumAnalysis `json:"analysis,omitempty"`
	Report        *CareerReport     `json:"report,omitempty"`
	Suggestions   []string          `json:"suggestions,omitempty"`
}

// RoleRecommendation es una de las sugerencias de rol del reporte final.
type RoleRecommendation struct {
	Title      string   `json:"title"`
	MatchScore int      `json:"match_score"`
	Reasons    []string `json:"reasons"`
	Companies  []string `json:"companies"`
}

// SkillPlanItem es un elemento del plan de desarrollo de habilidades.
type SkillPlanItem struct {
	Skill     string   `json:"skill"`
	Priority  string   `json:"priority"`
	Timeline  string   `json:"timeline"`
	Resources []string `json:"resources"`
}

// CareerRoadmap agrupa metas por horizonte temporal.
type CareerRoadmap struct {
	SixMonths  []string `json:"6_months"`
	OneYear    []string `json:"1_year"`
	ThreeYears []string `json:"3_years"`
}

// IndustryInsights resume sectores y tipos de empresa recomendados.
type IndustryInsights struct {
	BestIndustries []string `json:"best_industries"`
	CompanyTypes   []string `json:"company_types"`
	GrowthSectors  []string `json:"growth_sectors"`
}

// CareerReport es el analisis agregado final sobre las 12 dimensiones.
type CareerReport struct {
	RoleRecommendations  []RoleRecommendation `json:"role_recommendations"`
	SkillDevelopmentPlan []SkillPlanItem      `json:"skill_development_plan"`
	CareerRoadmap        CareerRoadmap        `json:"career_roadmap"`
	IndustryInsights     IndustryInsights     `json:"industry_insights"`
	Summary              string               `json:"summary"`
	Fallback             bool                 `json:"fallback,omitempty"`
}
