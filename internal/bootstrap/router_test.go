package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LaunchPad-AI/launchpad-backend/config"
	authrepo "github.com/LaunchPad-AI/launchpad-backend/internal/auth/repository"
	"github.com/LaunchPad-AI/launchpad-backend/internal/metrics"
	projectrepo "github.com/LaunchPad-AI/launchpad-backend/internal/projects/repository"
	"github.com/LaunchPad-AI/launchpad-backend/internal/testutil"
)

type tokenTable map[string]string

func (t tokenTable) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	if uid, ok := t[idToken]; ok {
		return &auth.Token{UID: uid}, nil
	}
	return nil, errors.New("invalid token")
}

type counterIdentity struct{ n int }

func (c *counterIdentity) CreateUser(_ context.Context, email, _, _ string) (string, error) {
	c.n++
	return "uid-" + email, nil
}

type constGenerator string

func (g constGenerator) Generate(context.Context, string) (string, error) { return string(g), nil }

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	client, _ := testutil.SetupTestRedis(t)
	reg := prometheus.NewRegistry()

	return BuildRouter(RouterDeps{
		ServiceName:    "launchpad-test",
		Version:        "test",
		AllowedOrigins: []string{"*"},
		StoreBackend:   "redis",
		Generator:      config.GeminiConfig{Model: "gemini-test", RateLimit: 5, Burst: 10},
		Metrics:        metrics.New(reg),
		Gatherer:       reg,
		Projects:       projectrepo.NewRedisProjectStore(client),
		Users:          authrepo.NewRedisUserStore(client),
		Identity:       &counterIdentity{},
		Verifier:       tokenTable{"tok": "uid-ada@example.com"},
		Gen:            constGenerator("names!"),
	})
}

func call(r *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var out map[string]interface{}
	_ = json.Unmarshal(rr.Body.Bytes(), &out)
	return rr, out
}

func TestPublicRoutes(t *testing.T) {
	r := newTestRouter(t)

	rr, out := call(r, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]interface{}{"backend": "redis", "status": "up"}, out["store"])
	generator, ok := out["generator"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "gemini-test", generator["model"])
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	rr, _ = call(r, http.MethodPost, "/user/signup", "", `{"email":"ada@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr, _ = call(r, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "launchpad_http_requests_total")
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/user/u1", "/project/p1", "/dashboard/viewProjects", "/assistant/motivation/showEncouragement"} {
		rr, out := call(r, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
		assert.Equal(t, "Unauthorized", out["error"], path)

		rr, _ = call(r, http.MethodGet, path, "forged", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
	}
}

func TestSignupCreateProjectGenerateFlow(t *testing.T) {
	r := newTestRouter(t)

	rr, _ := call(r, http.MethodPost, "/user/signup", "", `{"name":"Ada","email":"ada@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr, out := call(r, http.MethodPost, "/project/create", "tok", `{"projectName":"Gearloop"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	id := out["projectID"].(string)

	rr, out = call(r, http.MethodPost, "/assistant/branding/generateName", "tok", `{"projectID":"`+id+`","idea":"gear","save":true}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "names!", out["brandingNames"])

	rr, out = call(r, http.MethodGet, "/dashboard/viewProjects", "tok", "")
	require.Equal(t, http.StatusOK, rr.Code)
	projects := out["projects"].([]interface{})
	require.Len(t, projects, 1)
	summary := projects[0].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"branding": "names!"}, summary["lastOutputs"])
	assert.Len(t, summary["savedOutputs"], 1)

	rr, out = call(r, http.MethodGet, "/user/uid-ada@example.com", "tok", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []interface{}{id}, out["projects"])
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/project/create", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsConfigOrigins(t *testing.T) {
	cfg := corsConfig([]string{"https://app.example.com"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowOrigins)
}
