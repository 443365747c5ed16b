package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/api"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decisionServer serves canned bodies keyed by the posted choice.
func decisionServer(t *testing.T, bodies map[string]string, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			http.Error(w, "bad content type", http.StatusUnsupportedMediaType)
			return
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		body, ok := bodies[req["choice"]]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Contract(t *testing.T) {
	srv := decisionServer(t, map[string]string{
		"menu":    `{"question":"Pick a topic","options":["Billing","Support"]}`,
		"Support": `{"answer":"Support is open 9-5."}`,
	}, nil)

	client := api.NewClient(srv.URL)
	tests.FetcherContractTest(t, client, map[string]domain.Response{
		"menu":    domain.NewMenu("menu", "Pick a topic", "Billing", "Support"),
		"Support": domain.NewAnswer("Support", "Support is open 9-5."),
	})
}

func TestClient_SendsChoiceVerbatim(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req, 1, "request must carry a single field")
		got, _ = req["choice"].(string)
		w.Write([]byte(`{"answer":"ok"}`))
	}))
	defer srv.Close()

	label := "Billing & Invoices / 2024 "
	_, err := api.NewClient(srv.URL).Fetch(context.Background(), label)
	require.NoError(t, err)
	assert.Equal(t, label, got)
}

func TestClient_EmptyKeySkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := decisionServer(t, map[string]string{}, &calls)

	_, err := api.NewClient(srv.URL).Fetch(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusInternalServerError, http.StatusNotFound, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"answer":"should be ignored"}`))
		}))

		resp, err := api.NewClient(srv.URL).Fetch(context.Background(), "menu")
		srv.Close()

		assert.ErrorIs(t, err, domain.ErrTransport)
		var te *domain.TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, status, te.StatusCode)
		assert.Equal(t, domain.Response{}, resp)
	}
}

func TestClient_AcceptsAny2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"answer":"created"}`))
	}))
	defer srv.Close()

	resp, err := api.NewClient(srv.URL).Fetch(context.Background(), "menu")
	require.NoError(t, err)
	assert.Equal(t, "created", resp.Answer.Answer)
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := api.NewClient(url).Fetch(context.Background(), "menu")
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestClient_MalformedBody(t *testing.T) {
	srv := decisionServer(t, map[string]string{
		"menu": `{"question":"q","options":["a"],"answer":"both"}`,
	}, nil)

	_, err := api.NewClient(srv.URL).Fetch(context.Background(), "menu")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
	assert.NotErrorIs(t, err, domain.ErrTransport)
}

func TestClient_BodyTooLarge(t *testing.T) {
	srv := decisionServer(t, map[string]string{
		"menu": `{"answer":"` + strings.Repeat("x", 64) + `"}`,
	}, nil)

	_, err := api.NewClient(srv.URL, api.WithMaxBodySize(16)).Fetch(context.Background(), "menu")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestClient_SingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := api.NewClient(srv.URL).Fetch(context.Background(), "menu")
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "no automatic retry")
}
