package domain

// Dimension identifica una de las 12 dimensiones fijas de la evaluacion de carrera.
type Dimension string

const (
	DimensionInterests             Dimension = "interests"
	DimensionSkills                Dimension = "skills"
	DimensionPersonality           Dimension = "personality"
	DimensionAspirations           Dimension = "aspirations"
	DimensionMotivationsValues     Dimension = "motivations_values"
	DimensionCognitiveAbilities    Dimension = "cognitive_abilities"
	DimensionStrengthsWeaknesses   Dimension = "strengths_weaknesses"
	DimensionLearningPreferences   Dimension = "learning_preferences"
	DimensionTrackRecord           Dimension = "track_record"
	DimensionEmotionalIntelligence Dimension = "emotional_intelligence"
	DimensionConstraints           Dimension = "constraints"
	DimensionPhysicalContext       Dimension = "physical_context"
)

// DimensionOrder define el orden fijo del flujo de evaluacion.
// El orquestador recorre esta lista de principio a fin.
var DimensionOrder = []Dimension{
	DimensionInterests,
	DimensionSkills,
	DimensionPersonality,
	DimensionAspirations,
	DimensionMotivationsValues,
	DimensionCognitiveAbilities,
	DimensionStrengthsWeaknesses,
	DimensionLearningPreferences,
	DimensionTrackRecord,
	DimensionEmotionalIntelligence,
	DimensionConstraints,
	DimensionPhysicalContext,
}

// DimensionCount es el total de dimensiones conocidas.
const DimensionCount = 12

// IsValid reporta si d pertenece a la lista fija de dimensiones.
func (d Dimension) IsValid() bool {
	for _, known := range DimensionOrder {
		if d == known {
			return true
		}
	}
	return false
}

// Index devuelve la posicion de d dentro de DimensionOrder, o -1 si no existe.
func (d Dimension) Index() int {
	for i, known := range DimensionOrder {
		if d == known {
			return i
		}
	}
	return -1
}
