package routers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type page struct {
	Count   int64           `json:"count"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
	Results json.RawMessage `json:"results"`
}

type courseBody struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Overview      string `json:"overview"`
	TotalStudents int64  `json:"total_students"`
	TotalModules  int64  `json:"total_modules"`
	Subject       struct {
		ID   uint   `json:"id"`
		Slug string `json:"slug"`
	} `json:"subject"`
	Owner struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"owner"`
	Modules []struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
		Order int    `json:"order"`
	} `json:"modules"`
}

// call sends a request to app and decodes the response envelope. body is
// encoded as JSON when not nil.
func call(t *testing.T, app *fiber.App, method, path string, body interface{}, auth string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v), string(raw))
}

func decodePage(t *testing.T, env envelope, results interface{}) page {
	t.Helper()
	var p page
	decode(t, env.Data, &p)
	decode(t, p.Results, results)
	return p
}

func courseTitles(courses []courseBody) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Title)
	}
	return out
}
