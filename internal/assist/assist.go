package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/proptrack-io/property-management-service/internal/monitoring"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-3-flash-preview"

	systemInstruction = "You are PropTrack AI, a helpful property management assistant. Keep answers concise and professional."

	// AssistantFallback is returned whenever the completion endpoint cannot
	// be reached or answers with anything unusable. Transport errors never
	// propagate to the caller.
	AssistantFallback = "The assistant is unavailable right now. Please try again later."
)

// Insight is one structured advice record for the dashboard.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"` // warning, info or success
}

// FallbackInsights is served when the insights request fails for any reason.
var FallbackInsights = []Insight{
	{Title: "Occupancy Check", Description: "Review units in maintenance to minimize downtime.", Type: "info"},
}

// Summary carries the aggregate counts the insights prompt is built from.
type Summary struct {
	Buildings          int
	Units              int
	VacantUnits        int
	RecentExpenseTotal float64
	BuildingNames      []string
}

// Client talks to a Gemini-style generateContent endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      defaultModel,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Ask relays a free-text question plus a short data summary and returns the
// plain-text reply, or the fixed fallback on any failure.
func (c *Client) Ask(ctx context.Context, question, dataContext string) string {
	prompt := fmt.Sprintf("Context: %s\n\nUser Question: %s", dataContext, question)
	req := generateRequest{
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
	}
	reply, err := c.generate(ctx, req)
	if err != nil {
		monitoring.GatewayFallbacks.WithLabelValues("assistant").Inc()
		log.Error().Err(err).Msg("Assistant request failed")
		return AssistantFallback
	}
	return reply
}

// Insights requests an ordered list of structured portfolio insights. On any
// failure the fixed fallback record is returned instead of an error.
func (c *Client) Insights(ctx context.Context, s Summary) []Insight {
	prompt := fmt.Sprintf(`As a professional Property Management AI, analyze this data and provide 3 brief, actionable insights.

Data Summary:
- Total Buildings: %d
- Total Units: %d
- Vacant Units: %d
- Recent Expenses: $%.2f

Buildings List: %s

Reply with a JSON array of objects, each with "title" (short headline),
"description" (detailed actionable advice) and "type" (warning, info or success).`,
		s.Buildings, s.Units, s.VacantUnits, s.RecentExpenseTotal,
		strings.Join(s.BuildingNames, ", "))

	req := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseMIMEType: "application/json"},
	}
	reply, err := c.generate(ctx, req)
	if err != nil {
		monitoring.GatewayFallbacks.WithLabelValues("insights").Inc()
		log.Error().Err(err).Msg("Insights request failed")
		return FallbackInsights
	}

	var insights []Insight
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &insights); err != nil || len(insights) == 0 {
		monitoring.GatewayFallbacks.WithLabelValues("insights").Inc()
		log.Error().Err(err).Msg("Insights reply was not parseable")
		return FallbackInsights
	}
	for i := range insights {
		switch insights[i].Type {
		case "warning", "info", "success":
		default:
			insights[i].Type = "info"
		}
	}
	return insights
}

func (c *Client) generate(ctx context.Context, reqBody generateRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("completion endpoint returned no candidates")
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
