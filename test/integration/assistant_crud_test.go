package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"ai-assistant-admin-be/internal/bootstrap"
	"ai-assistant-admin-be/internal/config"
	"ai-assistant-admin-be/internal/dto"
	"ai-assistant-admin-be/internal/pkg/serverutils"
	"ai-assistant-admin-be/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp builds the full stack with zero latency and a pinned delete
// failure rate so every request is deterministic.
func newTestApp(t *testing.T, deleteFailureRate string) *fiber.App {
	t.Helper()

	t.Setenv("STORE_LATENCY_MS", "0")
	t.Setenv("STORE_DELETE_LATENCY_MS", "0")
	t.Setenv("STORE_DELETE_FAILURE_RATE", deleteFailureRate)
	t.Setenv("LOG_FILE_PATH", filepath.Join(t.TempDir(), "app.log"))

	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)
	return server.New(cfg, container).GetApp()
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) serverutils.BaseResponse[T] {
	t.Helper()
	var res serverutils.BaseResponse[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func listAssistants(t *testing.T, app *fiber.App) []dto.AssistantResponse {
	t.Helper()
	resp := doJSON(t, app, "GET", "/api/assistants", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return decode[[]dto.AssistantResponse](t, resp).Data
}

const botXBody = `{
	"name": "Bot X",
	"language": "Inglés",
	"tone": "Casual",
	"responseLength": {"short": 40, "medium": 40, "long": 20},
	"audioEnabled": false,
	"rules": ""
}`

func TestAssistantCRUD(t *testing.T) {
	app := newTestApp(t, "0")

	t.Run("List Seeded Assistants", func(t *testing.T) {
		assistants := listAssistants(t, app)
		require.Len(t, assistants, 2)
		assert.Equal(t, "Asistente de Ventas", assistants[0].Name)
		assert.Equal(t, "Soporte Técnico", assistants[1].Name)
	})

	t.Run("Create Assistant", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/assistants", botXBody)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		res := decode[dto.AssistantResponse](t, resp)
		assert.Equal(t, "Bot X", res.Data.Name)
		assert.NotEmpty(t, res.Data.Id)
		assert.NotEqual(t, "1", res.Data.Id)
		assert.NotEqual(t, "2", res.Data.Id)

		assert.Len(t, listAssistants(t, app), 3)
	})

	t.Run("Create Rejects Bad Percentage Sum", func(t *testing.T) {
		body := strings.Replace(botXBody, `"long": 20`, `"long": 10`, 1)
		resp := doJSON(t, app, "POST", "/api/assistants", body)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		res := decode[any](t, resp)
		assert.Contains(t, res.Errors, "responseLength")

		assert.Len(t, listAssistants(t, app), 3)
	})

	t.Run("Create Rejects Short Name", func(t *testing.T) {
		body := strings.Replace(botXBody, `"Bot X"`, `"ab"`, 1)
		resp := doJSON(t, app, "POST", "/api/assistants", body)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		res := decode[any](t, resp)
		assert.Contains(t, res.Errors, "name")
	})

	t.Run("Update Replaces Record Keeping Id", func(t *testing.T) {
		// Full-record replace: the client sends every field, tone changed.
		body := `{
			"name": "Asistente de Ventas",
			"language": "Español",
			"tone": "Casual",
			"responseLength": {"short": 30, "medium": 50, "long": 20},
			"audioEnabled": true,
			"rules": "Eres un experto en ventas B2B. Sé cordial y persuasivo."
		}`
		resp := doJSON(t, app, "PUT", "/api/assistants/1", body)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		res := decode[dto.AssistantResponse](t, resp)
		assert.Equal(t, "1", res.Data.Id)
		assert.Equal(t, "Casual", res.Data.Tone)
		assert.Equal(t, "Asistente de Ventas", res.Data.Name)
		assert.Equal(t, "Español", res.Data.Language)
		assert.Equal(t, dto.ResponseLengthResponse{Short: 30, Medium: 50, Long: 20}, res.Data.ResponseLength)
	})

	t.Run("Update Unknown Id Returns 404", func(t *testing.T) {
		resp := doJSON(t, app, "PUT", "/api/assistants/does-not-exist", botXBody)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		assert.Len(t, listAssistants(t, app), 3)
	})

	t.Run("Delete Unknown Id Returns 404", func(t *testing.T) {
		resp := doJSON(t, app, "DELETE", "/api/assistants/does-not-exist", "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("Delete Removes Record", func(t *testing.T) {
		resp := doJSON(t, app, "DELETE", "/api/assistants/2", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		assistants := listAssistants(t, app)
		require.Len(t, assistants, 2)
		for _, a := range assistants {
			assert.NotEqual(t, "2", a.Id)
		}
	})
}

func TestDeleteTransientFailure(t *testing.T) {
	// Failure rate pinned to 1: every delete hits the unreliable channel.
	app := newTestApp(t, "1")

	resp := doJSON(t, app, "DELETE", "/api/assistants/1", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	assistants := listAssistants(t, app)
	require.Len(t, assistants, 2)
	assert.Equal(t, "1", assistants[0].Id)
}

func TestChatPreviewFlow(t *testing.T) {
	app := newTestApp(t, "0")

	resp := doJSON(t, app, "POST", "/api/assistants/1/chat/sessions", "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	created := decode[dto.CreateChatSessionResponse](t, resp)
	require.NotEmpty(t, created.Data.SessionId)
	require.Len(t, created.Data.Messages, 1)
	assert.Equal(t, "assistant", created.Data.Messages[0].Role)

	resp = doJSON(t, app, "POST", "/api/chat/sessions/"+created.Data.SessionId+"/messages", `{"content": "Hola"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	sent := decode[dto.SendChatMessageResponse](t, resp)
	assert.Equal(t, "Hola", sent.Data.UserMessage.Content)
	assert.NotEmpty(t, sent.Data.Reply.Content)

	t.Run("Unknown Session Returns 404", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/chat/sessions/bogus/messages", `{"content": "Hola"}`)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("Unknown Assistant Returns 404", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/assistants/bogus/chat/sessions", "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
