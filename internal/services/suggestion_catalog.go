package services

const (
	CategoryRemedy     = "remedy"
	CategoryLifestyle  = "lifestyle"
	CategoryMedical    = "medical"
	CategoryPreventive = "preventive"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

type Suggestion struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Catalog keys for conditions derived from the current symptom entry.
const (
	conditionHeadache = "headache"
	conditionCramps   = "cramps"
	conditionNausea   = "nausea"
	conditionFatigue  = "fatigue"
	conditionMood     = "mood"
	conditionSleep    = "sleep"
)

// suggestionCatalog is the static advice table keyed by condition.
func suggestionCatalog() map[string][]Suggestion {
	return map[string][]Suggestion{
		conditionHeadache: {
			{
				Category:    CategoryRemedy,
				Title:       "Stay Hydrated",
				Description: "Drink plenty of water throughout the day. Dehydration is a common headache trigger.",
				Priority:    PriorityHigh,
			},
			{
				Category:    CategoryLifestyle,
				Title:       "Rest in Dark Room",
				Description: "Find a quiet, dark room to rest. Reduce screen time and bright lights.",
				Priority:    PriorityHigh,
			},
			{
				Category:    CategoryRemedy,
				Title:       "Cold/Warm Compress",
				Description: "Apply a cold compress to your forehead or a warm compress to your neck and shoulders.",
				Priority:    PriorityMedium,
			},
			{
				Category:    CategoryMedical,
				Title:       "Over-the-Counter Pain Relief",
				Description: "Consider ibuprofen or acetaminophen as directed. Consult healthcare provider if frequent.",
				Priority:    PriorityMedium,
			},
		},
		conditionCramps: {
			{
				Category:    CategoryRemedy,
				Title:       "Heat Therapy",
				Description: "Use a heating pad or hot water bottle on your lower abdomen or back.",
				Priority:    PriorityHigh,
			},
			{
				Category:    CategoryLifestyle,
				Title:       "Gentle Exercise",
				Description: "Try light walking, yoga, or stretching to help relieve cramps.",
				Priority:    PriorityHigh,
			},
			{
				Category:    CategoryRemedy,
				Title:       "Warm Bath",
				Description: "Take a warm bath with Epsom salts to relax muscles and reduce pain.",
				Priority:    PriorityMedium,
			},
			{
				Category:    CategoryMedical,
				Title:       "Anti-inflammatory Medication",
				Description: "Consider ibuprofen or naproxen to reduce inflammation and pain.",
				Priority:    PriorityMedium,
			},
		},
		conditionNausea: {
			{
				Category:    CategoryRemedy,
				Title:       "Ginger Tea",
				Description: "Drink ginger tea or chew on fresh ginger to help settle your stomach.",
				Priority:    PriorityHigh,
			},
			{
				Category:    CategoryLifestyle,
				Title:       "Small, Frequent Meals",
				Description: "Eat small, bland meals throughout the day. Avoid greasy or spicy foods.",
				Priority:    PriorityHigh,
			},
			{
				Category:    CategoryRemedy,
				Title:       "Peppermint",
				Description: "Try peppermint tea or aromatherapy to help reduce nausea.",
				Priority:    PriorityMedium,
			},
		},
		conditionFatigue: {
			{
				Category:    CategoryLifestyle,
				Title:       "Prioritize Sleep",
				Description: "Aim for 7-9 hours of quality sleep. Maintain a consistent sleep schedule.",
				Priority:    PriorityHigh,
			},
			{
				Category:    CategoryLifestyle,
				Title:       "Iron-Rich Foods",
				Description: "Include iron-rich foods like spinach, lean meats, and legumes in your diet.",
				Priority:    PriorityHigh,
			},
			{
				Category:    CategoryLifestyle,
				Title:       "Light Exercise",
				Description: "Gentle exercise can boost energy levels. Try a short walk or light stretching.",
				Priority:    PriorityMedium,
			},
		},
		conditionMood: {
			{
				Category:    CategoryLifestyle,
				Title:       "Mindfulness Practice",
				Description: "Try meditation, deep breathing, or mindfulness exercises for 10-15 minutes.",
				Priority:    PriorityHigh,
			},
			{
				Category:    CategoryLifestyle,
				Title:       "Social Connection",
				Description: "Reach out to friends or family. Social support can improve mood.",
				Priority:    PriorityMedium,
			},
			{
				Category:    CategoryLifestyle,
				Title:       "Sunlight Exposure",
				Description: "Spend time outdoors or near a bright window to boost mood naturally.",
				Priority:    PriorityMedium,
			},
		},
		conditionSleep: {
			{
				Category:    CategoryLifestyle,
				Title:       "Sleep Hygiene",
				Description: "Create a relaxing bedtime routine. Avoid screens 1 hour before bed.",
				Priority:    PriorityHigh,
			},
			{
				Category:    CategoryRemedy,
				Title:       "Herbal Tea",
				Description: "Try chamomile or valerian root tea 30 minutes before bedtime.",
				Priority:    PriorityMedium,
			},
			{
				Category:    CategoryLifestyle,
				Title:       "Cool, Dark Environment",
				Description: "Keep your bedroom cool (65-68°F) and as dark as possible.",
				Priority:    PriorityMedium,
			},
		},
	}
}

func generalWellnessSuggestions() []Suggestion {
	return []Suggestion{
		{
			Category:    CategoryLifestyle,
			Title:       "Stay Hydrated",
			Description: "Drink at least 8 glasses of water throughout the day.",
			Priority:    PriorityLow,
		},
		{
			Category:    CategoryLifestyle,
			Title:       "Balanced Nutrition",
			Description: "Include fruits, vegetables, and whole grains in your meals.",
			Priority:    PriorityLow,
		},
	}
}
