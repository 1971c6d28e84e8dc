package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func handleErrorResponse(t *testing.T, err error) (*http.Response, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return HandleError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, reqErr)

	data, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))
	return resp, payload
}

func TestHandleError_APIError(t *testing.T) {
	resp, payload := handleErrorResponse(t, NewBadRequest("Uploaded file is empty"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Uploaded file is empty", payload["error"])
}

func TestHandleError_WrappedAPIError(t *testing.T) {
	wrapped := fmt.Errorf("report lookup: %w", NewNotFound("Report not found"))
	resp, payload := handleErrorResponse(t, wrapped)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Report not found", payload["error"])
}

func TestHandleError_GenericError(t *testing.T) {
	resp, payload := handleErrorResponse(t, errors.New("write conflict"))
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "write conflict", payload["error"])
}
