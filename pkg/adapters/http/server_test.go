package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/magazine"
	httpAdapter "github.com/aretw0/magazine/pkg/adapters/http"
	"github.com/aretw0/magazine/internal/testutils"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/aretw0/magazine/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, opts ...httpAdapter.Option) *httptest.Server {
	t.Helper()
	eng, err := magazine.NewFromDefinition(testutils.BalancedDefinition())
	require.NoError(t, err)

	handler, err := httpAdapter.NewHandler(eng, opts...)
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestAcceptsWord_Post(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name     string
		body     string
		status   int
		outcome  domain.Outcome
		accepted bool
	}{
		{"accepted", `{"word": "aabb"}`, http.StatusOK, domain.OutcomeAccepted, true},
		{"rejected", `{"word": "aab"}`, http.StatusOK, domain.OutcomeRejected, false},
		{"empty word", `{"word": ""}`, http.StatusOK, domain.OutcomeAccepted, true},
		{"symbols", `{"symbols": ["a", "b"]}`, http.StatusOK, domain.OutcomeAccepted, true},
		{"tick limit", `{"word": "aaaabbbb", "max_ticks": 2}`, http.StatusUnprocessableEntity, domain.OutcomeTickLimitExceeded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv, "/accepts", tt.body)
			require.Equal(t, tt.status, resp.StatusCode)

			got := decode[httpAdapter.AcceptsResponse](t, resp)
			assert.Equal(t, tt.outcome, got.Outcome)
			assert.Equal(t, tt.accepted, got.Accepted)
			assert.Empty(t, got.Derivation)
		})
	}
}

func TestAcceptsWord_PostTrace(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv, "/accepts", `{"word": "ab", "trace": true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[httpAdapter.AcceptsResponse](t, resp)
	assert.Equal(t, 3, got.Ticks)
	require.Len(t, got.Derivation, 4)
	assert.Equal(t, domain.NewStack("Z", "A"), got.Derivation[1].Stack)
}

func TestAcceptsWord_BadRequests(t *testing.T) {
	srv := newServer(t, httpAdapter.WithMaxInputSize(8))

	tests := []struct {
		name string
		body string
	}{
		{"missing word", `{}`},
		{"wrong type", `{"word": 5}`},
		{"not json", `aabb`},
		{"too large", `{"word": "aaaaabbbbb"}`},
		{"escape in symbol", `{"symbols": ["a", "\u001b[31mb"]}`},
		{"nul in symbol", `{"symbols": ["a\u0000"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv, "/accepts", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decode[map[string]string](t, resp)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAcceptsWord_Query(t *testing.T) {
	srv := newServer(t)

	resp := get(t, srv, "/accepts?word=ab&trace=true")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[httpAdapter.AcceptsResponse](t, resp)
	assert.True(t, got.Accepted)
	assert.Len(t, got.Derivation, 4)

	resp = get(t, srv, "/accepts?word=ac")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got = decode[httpAdapter.AcceptsResponse](t, resp)
	assert.Equal(t, domain.OutcomeRejected, got.Outcome)
	assert.Equal(t, []domain.Symbol{"c"}, got.UnknownSymbols)

	resp = get(t, srv, "/accepts?word=aaaabbbb&max_ticks=3")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = get(t, srv, "/accepts")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = get(t, srv, "/accepts?word=ab&max_ticks=many")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetDefinition(t *testing.T) {
	srv := newServer(t)

	resp := get(t, srv, "/definition")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	def := decode[domain.Definition](t, resp)
	assert.Equal(t, "balanced", def.Name)
	assert.True(t, def.AcceptThroughEmptyStack)
	assert.Len(t, def.Transitions, 6)
}

func TestGetGraph(t *testing.T) {
	srv := newServer(t)

	resp := get(t, srv, "/graph")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "graph LR"))
	assert.NotContains(t, string(body), "classDef")

	resp = get(t, srv, "/graph?word=ab")
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "class q1 current;")
}

func TestHealthAndInfo(t *testing.T) {
	srv := newServer(t, httpAdapter.WithVersion("1.2.3\n"))

	resp := get(t, srv, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]string](t, resp)["status"])

	resp = get(t, srv, "/info")
	info := decode[map[string]string](t, resp)
	assert.Equal(t, "magazine-http", info["app"])
	assert.Equal(t, "1.2.3", info["version"])
	assert.Equal(t, "1.0.0", info["api_version"])
	assert.Equal(t, "balanced", info["definition"])
	assert.Equal(t, "empty_stack", info["acceptance"])
}

func TestOpenAPIAndMetrics(t *testing.T) {
	metrics := observability.NewMetrics()
	srv := newServer(t, httpAdapter.WithMetrics(metrics.Handler()))

	resp := get(t, srv, "/openapi.yaml")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "openapi: 3.0.3")

	resp = get(t, srv, "/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, srv, "/nowhere")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetSwagger(t *testing.T) {
	doc, err := httpAdapter.GetSwagger()
	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/accepts"))
}

func TestNewHandler_RequiresEvaluator(t *testing.T) {
	_, err := httpAdapter.NewHandler(nil)
	assert.Error(t, err)
}
