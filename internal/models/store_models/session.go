package store_models

import "time"

// StepResponse is one recorded answer: which step and which of the four
// options (0..3) was picked.
type StepResponse struct {
	Step   int `json:"step"`
	Option int `json:"option"`
}

type Session struct {
	ID          string
	Responses   []StepResponse
	IsCompleted bool
	Preferences *Preferences
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *Session) ResponseCount() int {
	return len(s.Responses)
}

// SetResponse records the answer for a step. Re-answering a step overwrites
// the previous entry instead of appending a duplicate, so a session can only
// complete once all ten distinct steps are answered.
func (s *Session) SetResponse(step int, option int) {
	for i, r := range s.Responses {
		if r.Step == step {
			s.Responses[i].Option = option
			return
		}
	}
	s.Responses = append(s.Responses, StepResponse{Step: step, Option: option})
}

// SelectedOptions returns the chosen options in answer order.
func (s *Session) SelectedOptions() []int {
	options := make([]int, 0, len(s.Responses))
	for _, r := range s.Responses {
		options = append(options, r.Option)
	}
	return options
}

type Preferences struct {
	TravelStyle             string   `json:"travelStyle"`
	PreferredActivities     []string `json:"preferredActivities"`
	AccommodationPreference string   `json:"accommodationPreference"`
	BudgetPriority          string   `json:"budgetPriority"`
	PacePreference          string   `json:"pacePreference"`
	FoodPreference          string   `json:"foodPreference"`
	SocialPreference        string   `json:"socialPreference"`
	AdventureLevel          string   `json:"adventureLevel"`
	CulturalInterest        string   `json:"culturalInterest"`
}
