package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zrpg/internal/domain/models"
	"zrpg/internal/objectid"
	"zrpg/internal/repository/memory"
	"zrpg/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	encounterService := service.NewEncounterService(memory.NewEncounterRepository(), logger)
	weaponService := service.NewWeaponService(memory.NewWeaponRepository(), logger)

	mux := http.NewServeMux()
	RegisterRoutes(mux,
		NewEncounterHandler(encounterService, logger),
		NewWeaponHandler(weaponService, logger),
	)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func makeRequest(t *testing.T, srv *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func parseResult(t *testing.T, resp *http.Response, result any) {
	t.Helper()

	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  string          `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Empty(t, envelope.Error)
	require.NoError(t, json.Unmarshal(envelope.Result, result))
}

func parseError(t *testing.T, resp *http.Response) string {
	t.Helper()

	var envelope struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotEmpty(t, envelope.Error)
	return envelope.Error
}

func TestEncounterEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("empty list returns an empty result array", func(t *testing.T) {
		resp := makeRequest(t, srv, "GET", "/v1/encounters", nil)
		assert.Equal(t, 200, resp.StatusCode)

		var encounters []models.Encounter
		parseResult(t, resp, &encounters)
		assert.Empty(t, encounters)
	})

	var created models.Encounter

	t.Run("create returns 201 with defaults applied", func(t *testing.T) {
		resp := makeRequest(t, srv, "POST", "/v1/encounters", map[string]any{
			"title":       "Zombie Ambush",
			"description": "They're everywhere!",
		})
		require.Equal(t, 201, resp.StatusCode)

		parseResult(t, resp, &created)
		assert.True(t, objectid.IsValid(created.ID))
		assert.Equal(t, []string{}, created.Actions)
		assert.Equal(t, 0, created.NumberOfRuns)
	})

	t.Run("duplicate title returns 400 naming the title", func(t *testing.T) {
		resp := makeRequest(t, srv, "POST", "/v1/encounters", map[string]any{
			"title":       "Zombie Ambush",
			"description": "Again",
		})
		assert.Equal(t, 400, resp.StatusCode)
		assert.Contains(t, parseError(t, resp), "Zombie Ambush")
	})

	t.Run("missing title returns 400 naming the field", func(t *testing.T) {
		resp := makeRequest(t, srv, "POST", "/v1/encounters", map[string]any{
			"description": "no title here",
		})
		assert.Equal(t, 400, resp.StatusCode)
		assert.Contains(t, parseError(t, resp), "title")
	})

	t.Run("wrong-typed numberOfRuns is rejected, not coerced", func(t *testing.T) {
		resp := makeRequest(t, srv, "POST", "/v1/encounters", map[string]any{
			"title":        "Typed",
			"description":  "d",
			"numberOfRuns": "3",
		})
		assert.Equal(t, 400, resp.StatusCode)
		assert.Contains(t, parseError(t, resp), "numberOfRuns")
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		resp := makeRequest(t, srv, "POST", "/v1/encounters", `{"title": `)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("get by id round-trips", func(t *testing.T) {
		resp := makeRequest(t, srv, "GET", "/v1/encounters/"+created.ID, nil)
		assert.Equal(t, 200, resp.StatusCode)

		var got models.Encounter
		parseResult(t, resp, &got)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Zombie Ambush", got.Title)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		resp := makeRequest(t, srv, "GET", "/v1/encounters/not-hex", nil)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		resp := makeRequest(t, srv, "GET", "/v1/encounters/"+objectid.New(), nil)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("patch merges fields", func(t *testing.T) {
		resp := makeRequest(t, srv, "PATCH", "/v1/encounters/"+created.ID, map[string]any{
			"description": "New text",
		})
		assert.Equal(t, 200, resp.StatusCode)

		var got models.Encounter
		parseResult(t, resp, &got)
		assert.Equal(t, "Zombie Ambush", got.Title)
		assert.Equal(t, "New text", got.Description)
	})

	t.Run("put at a fresh id creates with 201", func(t *testing.T) {
		id := objectid.New()
		resp := makeRequest(t, srv, "PUT", "/v1/encounters/"+id, map[string]any{
			"title":       "Fresh",
			"description": "D",
		})
		assert.Equal(t, 201, resp.StatusCode)

		var got models.Encounter
		parseResult(t, resp, &got)
		assert.Equal(t, id, got.ID)
	})

	t.Run("put at an existing id replaces with 200", func(t *testing.T) {
		resp := makeRequest(t, srv, "PUT", "/v1/encounters/"+created.ID, map[string]any{
			"title":       "Replaced",
			"description": "R",
		})
		assert.Equal(t, 200, resp.StatusCode)

		var got models.Encounter
		parseResult(t, resp, &got)
		assert.Equal(t, "Replaced", got.Title)
		assert.Equal(t, []string{}, got.Actions)
	})

	t.Run("delete returns the record, second delete 404", func(t *testing.T) {
		resp := makeRequest(t, srv, "DELETE", "/v1/encounters/"+created.ID, nil)
		assert.Equal(t, 200, resp.StatusCode)

		var got models.Encounter
		parseResult(t, resp, &got)
		assert.Equal(t, created.ID, got.ID)

		resp = makeRequest(t, srv, "DELETE", "/v1/encounters/"+created.ID, nil)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestWeaponEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var created models.Weapon

	t.Run("create returns 201", func(t *testing.T) {
		resp := makeRequest(t, srv, "POST", "/v1/weapons", map[string]any{
			"name":           "Bat",
			"description":    "Wood",
			"attackDieCount": 1,
			"attackDieSides": 6,
		})
		require.Equal(t, 201, resp.StatusCode)

		parseResult(t, resp, &created)
		assert.True(t, objectid.IsValid(created.ID))
		assert.Equal(t, 0, created.TimesLooted)
	})

	t.Run("duplicate name returns 400 naming the weapon", func(t *testing.T) {
		resp := makeRequest(t, srv, "POST", "/v1/weapons", map[string]any{
			"name":           "Bat",
			"description":    "Another",
			"attackDieCount": 2,
			"attackDieSides": 4,
		})
		assert.Equal(t, 400, resp.StatusCode)
		assert.Contains(t, parseError(t, resp), "Bat")
	})

	t.Run("missing die stats return 400 in declared order", func(t *testing.T) {
		resp := makeRequest(t, srv, "POST", "/v1/weapons", map[string]any{
			"name":        "Pipe",
			"description": "Rusty",
		})
		assert.Equal(t, 400, resp.StatusCode)
		assert.Contains(t, parseError(t, resp), "attackDieCount")
	})

	t.Run("patch adjusts die stats", func(t *testing.T) {
		resp := makeRequest(t, srv, "PATCH", "/v1/weapons/"+created.ID, map[string]any{
			"attackDieCount": 3,
		})
		assert.Equal(t, 200, resp.StatusCode)

		var got models.Weapon
		parseResult(t, resp, &got)
		assert.Equal(t, 3, got.AttackDieCount)
		assert.Equal(t, 6, got.AttackDieSides)
	})

	t.Run("patching a die stat to zero returns 400 naming the field", func(t *testing.T) {
		resp := makeRequest(t, srv, "PATCH", "/v1/weapons/"+created.ID, map[string]any{
			"attackDieSides": 0,
		})
		assert.Equal(t, 400, resp.StatusCode)
		assert.Contains(t, parseError(t, resp), "attackDieSides")

		resp = makeRequest(t, srv, "GET", "/v1/weapons/"+created.ID, nil)
		var got models.Weapon
		parseResult(t, resp, &got)
		assert.Equal(t, 6, got.AttackDieSides)
	})

	t.Run("list contains the weapon", func(t *testing.T) {
		resp := makeRequest(t, srv, "GET", "/v1/weapons", nil)
		assert.Equal(t, 200, resp.StatusCode)

		var weapons []models.Weapon
		parseResult(t, resp, &weapons)
		assert.Len(t, weapons, 1)
	})
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := makeRequest(t, srv, "GET", "/health", nil)
	assert.Equal(t, 200, resp.StatusCode)

	var status map[string]any
	parseResult(t, resp, &status)
	assert.Equal(t, "ok", status["status"])
}
