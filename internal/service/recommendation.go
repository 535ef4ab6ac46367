package service

// Recommendation is one ranked career suggestion for a scored category.
type Recommendation struct {
	Domain           string   `json:"domain"`
	MatchLevel       string   `json:"matchLevel"`
	Description      string   `json:"description"`
	SuggestedCareers []string `json:"suggestedCareers"`
}

// recommendThreshold is the averaged category score a rule must exceed
// (strictly) to fire.
const recommendThreshold = 3.5

type recommendationRule struct {
	category string
	rec      Recommendation
}

// recommendationRules is evaluated in declaration order; output order
// follows this table, not score magnitude.
var recommendationRules = []recommendationRule{
	{
		category: "TechDomain",
		rec: Recommendation{
			Domain:           "Technology",
			MatchLevel:       "high",
			Description:      "Strong grasp of technical fundamentals and comfort with unfamiliar systems.",
			SuggestedCareers: []string{"Software Engineer", "Data Analyst", "DevOps Engineer"},
		},
	},
	{
		category: "Ability",
		rec: Recommendation{
			Domain:           "Problem Solving",
			MatchLevel:       "high",
			Description:      "Structured approach to decomposing and debugging hard problems.",
			SuggestedCareers: []string{"Systems Analyst", "Solutions Architect", "Research Engineer"},
		},
	},
	{
		category: "Creative",
		rec: Recommendation{
			Domain:           "Design",
			MatchLevel:       "medium",
			Description:      "Comfort with open-ended, generative work and prototyping.",
			SuggestedCareers: []string{"Product Designer", "UX Researcher", "Content Strategist"},
		},
	},
	{
		category: "Business",
		rec: Recommendation{
			Domain:           "Business",
			MatchLevel:       "medium",
			Description:      "Aptitude for prioritization, planning and stakeholder communication.",
			SuggestedCareers: []string{"Product Manager", "Business Analyst", "Operations Manager"},
		},
	},
	{
		category: "Social",
		rec: Recommendation{
			Domain:           "Education",
			MatchLevel:       "medium",
			Description:      "Enjoys supporting and developing other people.",
			SuggestedCareers: []string{"Developer Advocate", "Technical Trainer", "Engineering Manager"},
		},
	},
}

// Recommend maps averaged category scores to the recommendation records
// whose category exceeds the threshold. Pure and order-independent in its
// input; categories without a rule contribute nothing.
func Recommend(categoryScores map[string]float64) []Recommendation {
	var recs []Recommendation
	for _, rule := range recommendationRules {
		score, ok := categoryScores[rule.category]
		if !ok || score <= recommendThreshold {
			continue
		}
		recs = append(recs, rule.rec)
	}
	return recs
}
