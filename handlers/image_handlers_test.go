package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubImageGen satisfies ImageGeneratorInterface for handler tests.
type stubImageGen struct {
	url    string
	err    error
	prompt string
	width  int
	height int
}

func (s *stubImageGen) GenerateBackground(_ context.Context, prompt string, width, height int) (string, error) {
	s.prompt, s.width, s.height = prompt, width, height
	return s.url, s.err
}

func (s *stubImageGen) Close() error { return nil }

func newImageApp(stub *stubImageGen) *fiber.App {
	h := NewApplicationHandler(stub, logrus.New())
	app := fiber.New()
	app.Post("/api/v1/generate-background", h.GenerateBackground)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGenerateBackgroundSuccess(t *testing.T) {
	stub := &stubImageGen{url: "https://cdn.example/bg.png"}
	app := newImageApp(stub)

	resp := postJSON(t, app, "/api/v1/generate-background", `{"prompt":"gold florals","width":600,"height":600}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "https://cdn.example/bg.png", body["url"])
	assert.Equal(t, "gold florals", stub.prompt)
	assert.Equal(t, 600, stub.width)
}

func TestGenerateBackgroundDefaultsToPortraitCanvas(t *testing.T) {
	stub := &stubImageGen{url: "https://cdn.example/bg.png"}
	app := newImageApp(stub)

	resp := postJSON(t, app, "/api/v1/generate-background", `{"prompt":"night sky"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 450, stub.width)
	assert.Equal(t, 800, stub.height)
}

func TestGenerateBackgroundRequiresPrompt(t *testing.T) {
	app := newImageApp(&stubImageGen{})

	resp := postJSON(t, app, "/api/v1/generate-background", `{"prompt":"  "}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProxyImageReturnsDataURL(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("pixels"))
	}))
	defer upstream.Close()

	app := fiber.New()
	app.Get("/api/v1/proxy-image", ProxyImage)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/proxy-image?url="+url.QueryEscape(upstream.URL), nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("pixels")), body["url"])
}

func TestProxyImageUpstreamErrorStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	app := fiber.New()
	app.Get("/api/v1/proxy-image", ProxyImage)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/proxy-image?url="+url.QueryEscape(upstream.URL), nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestProxyImageFetchTimeoutIsBounded(t *testing.T) {
	// The upstream fetch must run on a client with a deadline, not the
	// zero-timeout default.
	assert.NotZero(t, proxyClient.Timeout)
}

func TestGenerateBackgroundUpstreamFailure(t *testing.T) {
	app := newImageApp(&stubImageGen{err: errors.New("model overloaded")})

	resp := postJSON(t, app, "/api/v1/generate-background", `{"prompt":"gold"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
