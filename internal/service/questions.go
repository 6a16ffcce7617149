package service

import "remiro-ai/internal/domain"

// DimensionSpec describe el agente de una dimension: identidad, las 3
// preguntas fijas y el mapa de keywords para el analisis de respaldo.
type DimensionSpec struct {
	Dimension        domain.Dimension
	AgentName        string
	CoreDomain       string
	Questions        [3]domain.Question
	FallbackKeywords map[string][]string
	FallbackSummary  string
}

// Catalog devuelve la especificacion de las 12 dimensiones en orden de flujo.
func Catalog() []DimensionSpec {
	return []DimensionSpec{
		{
			Dimension:  domain.DimensionInterests,
			AgentName:  "Career Interests Specialist",
			CoreDomain: "career interests, passions, and engagement drivers",
			Questions: [3]domain.Question{
				{
					ID:       "interests_q1",
					Question: "You know what, I'm really curious - what kind of stuff do you find yourself doing where you just completely lose track of time? Like, you look up and suddenly hours have passed?",
					Context:  "exploration",
					Purpose:  "Identify intrinsic interests and flow states",
				},
				{
					ID:       "interests_q2",
					Question: "When you think about work or projects you've really enjoyed, what was it about them that got you excited? Was it the hands-on building stuff, figuring out complex problems, helping people, leading teams, organizing things, or creating something totally new?",
					Context:  "pattern_recognition",
					Purpose:  "Map to Holland Code categories",
				},
				{
					ID:       "interests_q3",
					Question: "If someone said 'hey, you've got a whole day to just learn about whatever you want - no pressure, no tests, just pure curiosity' - what would you dive into and why?",
					Context:  "application",
					Purpose:  "Understand learning motivations and curiosity drivers",
				},
			},
			// Mapa de codigos Holland por keywords, para cuando el LLM falla.
			FallbackKeywords: map[string][]string{
				"Realistic":     {"build", "fix", "tool", "machine", "hands-on", "craft", "technical"},
				"Investigative": {"research", "analyze", "solve", "investigate", "study", "science"},
				"Artistic":      {"create", "design", "art", "music", "write", "creative", "innovative"},
				"Social":        {"help", "teach", "counsel", "people", "community", "social"},
				"Enterprising":  {"lead", "sell", "persuade", "business", "manage", "entrepreneur"},
				"Conventional":  {"organize", "data", "detail", "structure", "plan", "systematic"},
			},
			FallbackSummary: "Shows genuine curiosity with interests worth exploring further across several areas.",
		},
		{
			Dimension:  domain.DimensionSkills,
			AgentName:  "Skills Assessment Specialist",
			CoreDomain: "current competencies and skill development opportunities",
			Questions: [3]domain.Question{
				{
					ID:       "skills_q1",
					Question: "I'm really curious about this - what's that one thing you're really good at that people always come to you for help with? Like, what's your superpower that consistently gets great results?",
					Context:  "strength_identification",
					Purpose:  "Identify core competencies",
				},
				{
					ID:       "skills_q2",
					Question: "You know that feeling when you're trying to do something and you think 'man, if I just knew how to do X, this would be so much easier'? What's that skill X for you right now?",
					Context:  "gap_analysis",
					Purpose:  "Identify skill gaps",
				},
				{
					ID:       "skills_q3",
					Question: "If someone handed you a learning budget and said 'go develop yourself!' - what course, certification, or skill would you jump on first to level up your career game?",
					Context:  "development_priority",
					Purpose:  "Understand growth priorities",
				},
			},
			FallbackKeywords: map[string][]string{
				"Technical":     {"code", "program", "software", "engineer", "technical", "data"},
				"Communication": {"write", "present", "explain", "speak", "communicate"},
				"Leadership":    {"lead", "manage", "mentor", "coordinate", "organize"},
				"Analytical":    {"analyze", "solve", "research", "numbers", "logic"},
				"Creative":      {"design", "create", "draw", "creative", "content"},
			},
			FallbackSummary: "Demonstrates awareness of skill development needs and shows readiness for professional growth.",
		},
		{
			Dimension:  domain.DimensionPersonality,
			AgentName:  "Personality & Work Style Specialist",
			CoreDomain: "natural behavioral patterns and work style preferences",
			Questions: [3]domain.Question{
				{
					ID:       "personality_q1",
					Question: "So here's something I'm wondering about you - do you thrive when you're bouncing ideas off teammates and working together, or are you more of a 'give me some quiet time to focus and I'll blow your mind' kind of person?",
					Context:  "work_style",
					Purpose:  "Assess collaboration vs independent work preference",
				},
				{
					ID:       "personality_q2",
					Question: "Picture your perfect work day - would it be in a place that's buzzing with energy and constant new challenges, or somewhere more chill and predictable where you know what to expect?",
					Context:  "environment",
					Purpose:  "Understand environment preferences",
				},
				{
					ID:       "personality_q3",
					Question: "When there's drama or disagreement at work (we've all been there!), what's your instinct - jump right in and talk it out, try to help everyone find middle ground, or step back and think it through before you say anything?",
					Context:  "conflict_style",
					Purpose:  "Assess conflict resolution approach",
				},
			},
			FallbackKeywords: map[string][]string{
				"Collaborative": {"team", "together", "people", "group", "talk"},
				"Independent":   {"alone", "quiet", "focus", "myself", "solo"},
				"Adaptive":      {"change", "new", "challenge", "dynamic", "fast"},
				"Structured":    {"predictable", "stable", "routine", "plan", "calm"},
			},
			FallbackSummary: "Shows a balanced work style with clear preferences worth matching to team culture.",
		},
		{
			Dimension:  domain.DimensionAspirations,
			AgentName:  "Career Aspirations Counselor",
			CoreDomain: "long-term goals and career vision",
			Questions: [3]domain.Question{
				{
					ID:       "aspirations_q1",
					Question: "Let's dream a little! Fast forward five years and your career is absolutely crushing it - like, you're living your best professional life. What's your typical Tuesday looking like?",
					Context:  "vision",
					Purpose:  "Elicit concrete five-year vision",
				},
				{
					ID:       "aspirations_q2",
					Question: "If you could have any job title or role in the world - like, go completely wild with your ambitions - what would make you feel like you've really 'made it'?",
					Context:  "ambition",
					Purpose:  "Identify ultimate career ambitions",
				},
				{
					ID:       "aspirations_q3",
					Question: "Okay, bringing it back to reality for a sec - what's the very next thing you could actually do (like, this month or next) that would get you one step closer to that dream?",
					Context:  "next_step",
					Purpose:  "Assess action orientation",
				},
			},
			FallbackKeywords: map[string][]string{
				"Leadership":   {"lead", "director", "manager", "ceo", "founder", "own"},
				"Expertise":    {"expert", "specialist", "master", "senior", "best"},
				"Impact":       {"impact", "change", "help", "world", "difference"},
				"Independence": {"freelance", "remote", "freedom", "own business", "independent"},
			},
			FallbackSummary: "Has meaningful aspirations; next concrete steps will sharpen the path toward them.",
		},
		{
			Dimension:  domain.DimensionMotivationsValues,
			AgentName:  "Motivations & Values Counselor",
			CoreDomain: "core drivers and non-negotiables for career satisfaction",
			Questions: [3]domain.Question{
				{
					ID:       "motivations_q1",
					Question: "Which of these is most important for your job satisfaction: the impact you make, the salary you earn, the people you work with, or the autonomy you have?",
					Context:  "core_driver",
					Purpose:  "Identify primary motivation",
				},
				{
					ID:       "motivations_q2",
					Question: "Describe a time you felt completely demotivated at work. What fundamental value of yours was being compromised?",
					Context:  "value_alignment",
					Purpose:  "Understand core values through negative experience",
				},
				{
					ID:       "motivations_q3",
					Question: "On a scale of 1 to 10, how important is it for your work to remain strictly within business hours, and why?",
					Context:  "work_life",
					Purpose:  "Assess work-life balance priorities",
				},
			},
			FallbackKeywords: map[string][]string{
				"Impact":   {"impact", "meaning", "purpose", "help", "difference"},
				"Reward":   {"salary", "money", "pay", "compensation", "bonus"},
				"People":   {"people", "team", "culture", "colleagues", "friends"},
				"Autonomy": {"autonomy", "freedom", "independent", "own", "flexible"},
			},
			FallbackSummary: "Values are articulated clearly enough to use as a filter for role and culture fit.",
		},
		{
			Dimension:  domain.DimensionCognitiveAbilities,
			AgentName:  "Cognitive Assessment Specialist",
			CoreDomain: "thinking styles and problem-solving approaches",
			Questions: [3]domain.Question{
				{
					ID:       "cognitive_q1",
					Question: "When you encounter a complex, unfamiliar problem, do you first try to break it down into smaller, logical steps, or do you brainstorm a wide range of creative, out-of-the-box ideas?",
					Context:  "problem_solving",
					Purpose:  "Assess problem-solving approach",
				},
				{
					ID:       "cognitive_q2",
					Question: "How do you prefer to receive new, complex information: by reading a detailed document, watching a visual demonstration, or discussing it with an expert?",
					Context:  "information_processing",
					Purpose:  "Understand learning modality preferences",
				},
				{
					ID:       "cognitive_q3",
					Question: "Are you more comfortable making a decision with 70% of the information available, or do you need to have all the facts (closer to 100%) before you can proceed?",
					Context:  "decision_making",
					Purpose:  "Assess decision-making style and risk tolerance",
				},
			},
			FallbackKeywords: map[string][]string{
				"Analytical": {"steps", "logical", "break", "analyze", "detail"},
				"Creative":   {"brainstorm", "creative", "ideas", "intuition", "imagine"},
				"Decisive":   {"quick", "70", "act", "decide", "move"},
				"Thorough":   {"all the facts", "100", "certain", "complete", "careful"},
			},
			FallbackSummary: "Exhibits a consistent thinking style that can be matched to problem domains.",
		},
		{
			Dimension:  domain.DimensionStrengthsWeaknesses,
			AgentName:  "Strengths & Development Specialist",
			CoreDomain: "natural talents and areas for development",
			Questions: [3]domain.Question{
				{
					ID:       "strengths_q1",
					Question: "What is something that you find easy to do that other people seem to find difficult?",
					Context:  "natural_talent",
					Purpose:  "Identify innate strengths",
				},
				{
					ID:       "strengths_q2",
					Question: "What is the most common piece of constructive feedback you have received regarding your professional habits or skills?",
					Context:  "constructive_feedback",
					Purpose:  "Understand development areas through feedback",
				},
				{
					ID:       "strengths_q3",
					Question: "If you could instantly improve one aspect of your professional self, what would it be and what impact would it have?",
					Context:  "growth_edge",
					Purpose:  "Assess self-awareness and growth motivation",
				},
			},
			FallbackKeywords: map[string][]string{
				"Self-aware": {"feedback", "improve", "learn", "grow", "aware"},
				"Technical":  {"technical", "detail", "numbers", "systems"},
				"Relational": {"people", "listen", "empathy", "communicate"},
			},
			FallbackSummary: "Shows healthy self-awareness about both strengths and growth areas.",
		},
		{
			Dimension:  domain.DimensionLearningPreferences,
			AgentName:  "Learning Preferences Specialist",
			CoreDomain: "knowledge acquisition and skill development preferences",
			Questions: [3]domain.Question{
				{
					ID:       "learning_q1",
					Question: "Do you learn a new skill better by 'doing' (hands-on practice), 'reading' (theory and manuals), or 'observing' (watching an expert)?",
					Context:  "learning_style",
					Purpose:  "Identify primary learning modality",
				},
				{
					ID:       "learning_q2",
					Question: "Would you prefer to learn in a structured classroom setting with a clear curriculum or through self-directed, on-the-job experimentation?",
					Context:  "training_environment",
					Purpose:  "Understand learning environment preferences",
				},
				{
					ID:       "learning_q3",
					Question: "When learning something new, do you prefer to go at a slow, steady pace to ensure full understanding, or a fast pace to quickly grasp the main concepts?",
					Context:  "pace",
					Purpose:  "Assess learning pace preferences",
				},
			},
			FallbackKeywords: map[string][]string{
				"Kinesthetic":   {"doing", "hands-on", "practice", "try"},
				"Theoretical":   {"reading", "theory", "books", "manuals", "docs"},
				"Observational": {"observing", "watching", "shadow", "example"},
				"Self-directed": {"self", "experiment", "explore", "on-the-job"},
			},
			FallbackSummary: "Learning preferences are distinct enough to guide training format choices.",
		},
		{
			Dimension:  domain.DimensionTrackRecord,
			AgentName:  "Achievement & History Analyst",
			CoreDomain: "past achievements and career progression patterns",
			Questions: [3]domain.Question{
				{
					ID:       "track_q1",
					Question: "What professional achievement are you most proud of, and what specific role did you play in its success?",
					Context:  "key_accomplishment",
					Purpose:  "Identify peak performance and contribution style",
				},
				{
					ID:       "track_q2",
					Question: "Looking at your resume, what common thread or theme connects the roles or projects where you felt most successful?",
					Context:  "career_history",
					Purpose:  "Identify success patterns",
				},
				{
					ID:       "track_q3",
					Question: "What was a key lesson you learned from a past failure or a particularly challenging project?",
					Context:  "experience_lessons",
					Purpose:  "Assess resilience and learning from setbacks",
				},
			},
			FallbackKeywords: map[string][]string{
				"Delivery":   {"delivered", "finished", "launched", "shipped", "completed"},
				"Growth":     {"promoted", "grew", "improved", "increased"},
				"Resilience": {"failure", "lesson", "learned", "overcame", "challenge"},
			},
			FallbackSummary: "Track record shows consistent contribution patterns and capacity to learn from setbacks.",
		},
		{
			Dimension:  domain.DimensionEmotionalIntelligence,
			AgentName:  "Emotional Intelligence Specialist",
			CoreDomain: "self-awareness and interpersonal capabilities",
			Questions: [3]domain.Question{
				{
					ID:       "ei_q1",
					Question: "Under pressure, what is the first emotion you typically feel, and how do you manage it to stay productive?",
					Context:  "self_awareness",
					Purpose:  "Assess emotional self-awareness and regulation",
				},
				{
					ID:       "ei_q2",
					Question: "How do you recognize when a colleague is stressed or overwhelmed, even if they don't say anything?",
					Context:  "empathy",
					Purpose:  "Evaluate empathy and social awareness",
				},
				{
					ID:       "ei_q3",
					Question: "Describe your approach to giving difficult but necessary feedback to a team member or colleague.",
					Context:  "relationship_management",
					Purpose:  "Assess interpersonal skills and relationship management",
				},
			},
			FallbackKeywords: map[string][]string{
				"Self-regulation": {"breathe", "pause", "calm", "manage", "control"},
				"Empathy":         {"notice", "listen", "body language", "ask", "feel"},
				"Directness":      {"honest", "direct", "clear", "candid"},
			},
			FallbackSummary: "Demonstrates working emotional awareness applicable to team environments.",
		},
		{
			Dimension:  domain.DimensionConstraints,
			AgentName:  "Career Constraints Analyst",
			CoreDomain: "real-world limitations and barriers affecting career choices",
			Questions: [3]domain.Question{
				{
					ID:       "constraints_q1",
					Question: "Are there any geographical limitations (a specific city, state, or country) that you must adhere to in your job search?",
					Context:  "logistics",
					Purpose:  "Identify location constraints",
				},
				{
					ID:       "constraints_q2",
					Question: "What is the minimum annual salary or compensation level that you must have to meet your non-negotiable financial obligations?",
					Context:  "financial",
					Purpose:  "Understand financial requirements",
				},
				{
					ID:       "constraints_q3",
					Question: "Realistically, how many hours per week are you able or willing to dedicate to your work, including commute and potential overtime?",
					Context:  "time_effort",
					Purpose:  "Assess time and commitment constraints",
				},
			},
			FallbackKeywords: map[string][]string{
				"Location":  {"city", "remote", "relocate", "country", "move"},
				"Financial": {"salary", "minimum", "income", "obligations"},
				"Time":      {"hours", "part-time", "full-time", "overtime", "family"},
			},
			FallbackSummary: "Constraints are concrete and should be treated as hard filters in role matching.",
		},
		{
			Dimension:  domain.DimensionPhysicalContext,
			AgentName:  "Physical Context Specialist",
			CoreDomain: "physical work environment preferences and health factors",
			Questions: [3]domain.Question{
				{
					ID:       "physical_q1",
					Question: "Do you feel more energized and productive in a bustling, open-plan office, a quiet private office, a remote home setting, or an active, hands-on environment (like a workshop or outdoors)?",
					Context:  "work_environment",
					Purpose:  "Identify optimal physical work environment",
				},
				{
					ID:       "physical_q2",
					Question: "What are your preferences regarding the physical demands of a job (e.g., mostly sedentary at a desk, requires frequent travel, involves physical labor)?",
					Context:  "physical_demand",
					Purpose:  "Assess physical capability and preferences",
				},
				{
					ID:       "physical_q3",
					Question: "Are there any specific health or accessibility considerations that must be accommodated in your ideal work environment?",
					Context:  "well_being",
					Purpose:  "Understand health and accessibility needs",
				},
			},
			FallbackKeywords: map[string][]string{
				"Remote":   {"home", "remote", "quiet"},
				"Office":   {"office", "open-plan", "desk"},
				"Active":   {"outdoors", "workshop", "travel", "active", "physical"},
				"Supports": {"health", "accessibility", "accommodate", "ergonomic"},
			},
			FallbackSummary: "Physical environment preferences are defined and compatible with multiple work settings.",
		},
	}
}

// CatalogByDimension indexa el catalogo por dimension.
func CatalogByDimension() map[domain.Dimension]DimensionSpec {
	specs := Catalog()
	byDim := make(map[domain.Dimension]DimensionSpec, len(specs))
	for _, spec := range specs {
		byDim[spec.Dimension] = spec
	}
	return byDim
}
