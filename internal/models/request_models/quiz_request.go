package request_models

// QuizResponseRequest carries one submitted answer. StepNumber and
// SelectedOption are pointers so a missing field can be told apart from a
// legitimate zero.
type QuizResponseRequest struct {
	UserID         string `json:"userId"`
	StepNumber     *int   `json:"stepNumber"`
	SelectedOption *int   `json:"selectedOption"`
}

type ItineraryRequest struct {
	LocationName string `json:"locationName"`
}
