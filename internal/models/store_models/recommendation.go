package store_models

type Attraction struct {
	Name        string `json:"name"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description"`
}

type Event struct {
	Name        string `json:"name"`
	Dates       string `json:"dates"`
	Description string `json:"description"`
}

type LocalInsight struct {
	Source string `json:"source"`
	Tip    string `json:"tip"`
}

type Recommendation struct {
	ID                   string         `json:"id"`
	LocationName         string         `json:"locationName"`
	Country              string         `json:"country"`
	Description          string         `json:"description"`
	EstimatedBudgetRange string         `json:"estimatedBudgetRange"`
	BestTimeToVisit      string         `json:"bestTimeToVisit"`
	KeyAttractions       []string       `json:"keyAttractions"`
	MainAttractions      []Attraction   `json:"main_attractions"`
	Events               []Event        `json:"events"`
	LocalInsights        []LocalInsight `json:"local_insights"`
	Reasoning            string         `json:"reasoning"`
}
