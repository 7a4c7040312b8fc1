package infra

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseScraperOutput(t *testing.T) {
	out := []byte("fetching wikipedia...\nfetching weather...\n" +
		`{"morning_schedule":"Walk the old town","attractions":[{"name":"Castle","description":"Hilltop fort"}],"total_estimated_cost":{"total":85.5},"travel_tips":["Bring cash"]}` +
		"\ndone\n")

	parsed, err := parseScraperOutput(out)
	require.NoError(t, err)

	assert.Equal(t, "Walk the old town", parsed.MorningSchedule)
	assert.Empty(t, parsed.AfternoonSchedule)
	require.Len(t, parsed.Attractions, 1)
	assert.Equal(t, "Castle", parsed.Attractions[0].Name)
	require.NotNil(t, parsed.TotalEstimatedCost)
	assert.Equal(t, 85.5, parsed.TotalEstimatedCost.Total)
	assert.Equal(t, []string{"Bring cash"}, parsed.TravelTips)
}

func TestParseScraperOutputNoJSON(t *testing.T) {
	_, err := parseScraperOutput([]byte("Traceback (most recent call last):\n  ..."))
	assert.Error(t, err)

	_, err = parseScraperOutput(nil)
	assert.Error(t, err)
}

func TestParseScraperOutputMalformedJSON(t *testing.T) {
	_, err := parseScraperOutput([]byte(`{"morning_schedule": `+"\n}garbage{"))
	assert.Error(t, err)
}

func TestExecScraperClientCommandFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := NewExecScraperClient("definitely-not-a-real-binary-1b2c3", zap.NewNop())
	_, err := client.GenerateItinerary(ctx, ScraperRequest{Location: "Kyoto"})
	assert.Error(t, err)
}

func TestExecScraperClientEmptyCommand(t *testing.T) {
	client := NewExecScraperClient("", zap.NewNop())
	_, err := client.GenerateItinerary(context.Background(), ScraperRequest{Location: "Kyoto"})
	assert.Error(t, err)
}
