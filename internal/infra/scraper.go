package infra

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"lumo/internal/models/store_models"
)

// ScraperRequest is serialized to JSON and handed to the scraper process as
// its last argument.
type ScraperRequest struct {
	Location        string             `json:"location"`
	UserPreferences ScraperPreferences `json:"user_preferences"`
}

type ScraperPreferences struct {
	TravelStyle         string   `json:"travel_style"`
	PreferredActivities []string `json:"preferred_activities"`
	FoodPreference      string   `json:"food_preference"`
	PacePreference      string   `json:"pace_preference"`
	AdventureLevel      string   `json:"adventure_level"`
	CulturalInterest    string   `json:"cultural_interest"`
}

// ScraperOutput mirrors the JSON document the scraper prints on stdout.
// Every field is optional; callers fill defaults for whatever is missing.
type ScraperOutput struct {
	MorningSchedule    string                      `json:"morning_schedule"`
	AfternoonSchedule  string                      `json:"afternoon_schedule"`
	EveningSchedule    string                      `json:"evening_schedule"`
	Attractions        []store_models.Attraction   `json:"attractions"`
	LocalInsights      []store_models.LocalInsight `json:"local_insights"`
	Events             []store_models.Event        `json:"events"`
	WeatherConditions  map[string]any              `json:"weather_conditions"`
	TransportationInfo map[string]any              `json:"transportation_info"`
	Restaurants        map[string]any              `json:"restaurants"`
	TotalEstimatedCost *store_models.CostEstimate  `json:"total_estimated_cost"`
	TravelTips         []string                    `json:"travel_tips"`
}

// ScraperClient is the seam between the itinerary service and the external
// scraper process, so callers can bound the call with a context deadline and
// tests can substitute a fake.
type ScraperClient interface {
	GenerateItinerary(ctx context.Context, req ScraperRequest) (*ScraperOutput, error)
}

// ExecScraperClient shells out to the configured scraper command, e.g.
// "python3 -m scrapers.scraper_manager", appending the generate_itinerary
// subcommand and the request payload.
type ExecScraperClient struct {
	command []string
	logger  *zap.Logger
}

func NewExecScraperClient(command string, logger *zap.Logger) *ExecScraperClient {
	return &ExecScraperClient{
		command: strings.Fields(command),
		logger:  logger,
	}
}

func (c *ExecScraperClient) GenerateItinerary(ctx context.Context, req ScraperRequest) (*ScraperOutput, error) {
	if len(c.command) == 0 {
		return nil, fmt.Errorf("scraper command not configured")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal scraper request: %w", err)
	}

	args := make([]string, 0, len(c.command)+1)
	args = append(args, c.command[1:]...)
	args = append(args, "generate_itinerary", string(payload))

	c.logger.Debug("invoking scraper",
		zap.String("command", c.command[0]),
		zap.String("location", req.Location))

	cmd := exec.CommandContext(ctx, c.command[0], args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("scraper process: %w", err)
	}

	return parseScraperOutput(out)
}

// parseScraperOutput extracts the JSON object from the combined output; the
// scraper mixes progress lines with the final document.
func parseScraperOutput(out []byte) (*ScraperOutput, error) {
	start := bytes.IndexByte(out, '{')
	end := bytes.LastIndexByte(out, '}')
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in scraper output")
	}

	var parsed ScraperOutput
	if err := json.Unmarshal(out[start:end+1], &parsed); err != nil {
		return nil, fmt.Errorf("parse scraper output: %w", err)
	}
	return &parsed, nil
}
