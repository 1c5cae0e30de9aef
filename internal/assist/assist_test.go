package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionServer(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)

		w.WriteHeader(status)
		if status == http.StatusOK {
			resp := generateResponse{}
			resp.Candidates = append(resp.Candidates, struct {
				Content content `json:"content"`
			}{Content: content{Parts: []part{{Text: text}}}})
			json.NewEncoder(w).Encode(resp)
		}
	}))
}

func TestAsk_RelaysReply(t *testing.T) {
	srv := completionServer(t, http.StatusOK, "Your occupancy rate is 80%.")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	reply := c.Ask(context.Background(), "How is occupancy?", "3 buildings, 5 units")
	assert.Equal(t, "Your occupancy rate is 80%.", reply)
}

func TestAsk_FallsBackOnServerError(t *testing.T) {
	srv := completionServer(t, http.StatusInternalServerError, "")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	reply := c.Ask(context.Background(), "How is occupancy?", "")
	assert.Equal(t, AssistantFallback, reply)
}

func TestAsk_FallsBackOnTransportFailure(t *testing.T) {
	srv := completionServer(t, http.StatusOK, "unused")
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, "test-key")
	reply := c.Ask(context.Background(), "How is occupancy?", "")
	assert.Equal(t, AssistantFallback, reply)
}

func TestInsights_ParsesStructuredReply(t *testing.T) {
	srv := completionServer(t, http.StatusOK,
		`[{"title":"Vacancy Risk","description":"Unit 103 has been vacant for months.","type":"warning"},
		  {"title":"Healthy Rent Roll","description":"All occupied units are paying on time.","type":"success"}]`)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	insights := c.Insights(context.Background(), Summary{Buildings: 3, Units: 5, VacantUnits: 1})
	require.Len(t, insights, 2)
	assert.Equal(t, "Vacancy Risk", insights[0].Title)
	assert.Equal(t, "warning", insights[0].Type)
	assert.Equal(t, "success", insights[1].Type)
}

func TestInsights_NormalizesUnknownCategory(t *testing.T) {
	srv := completionServer(t, http.StatusOK,
		`[{"title":"Note","description":"Something.","type":"critical"}]`)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	insights := c.Insights(context.Background(), Summary{})
	require.Len(t, insights, 1)
	assert.Equal(t, "info", insights[0].Type)
}

func TestInsights_FallsBackOnUnparseableReply(t *testing.T) {
	srv := completionServer(t, http.StatusOK, "sorry, no JSON today")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	insights := c.Insights(context.Background(), Summary{})
	assert.Equal(t, FallbackInsights, insights)
}

func TestInsights_FallsBackOnServerError(t *testing.T) {
	srv := completionServer(t, http.StatusBadGateway, "")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	insights := c.Insights(context.Background(), Summary{})
	assert.Equal(t, FallbackInsights, insights)
}
