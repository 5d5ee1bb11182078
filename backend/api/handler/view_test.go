package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"docboard/backend/model"

	"github.com/stretchr/testify/assert"
)

// sessionCookies carries the session across requests the way a browser
// would.
func sessionCookies(recorders ...interface{ Result() *http.Response }) []*http.Cookie {
	var cookies []*http.Cookie
	for _, recorder := range recorders {
		cookies = append(cookies, recorder.Result().Cookies()...)
	}
	return cookies
}

func TestViewCurrentFileFlow(t *testing.T) {
	router := newTestRouter(t)
	id := createTestFile(t, router, "viewed.txt", "line one\nline two")

	// No pointer yet.
	recorder, resp := doJSON(t, router, http.MethodGet, "/api/view/current", nil, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "", string(resp.Data))

	// Selecting a row responds with the full record.
	recorder, resp = doJSON(t, router, http.MethodPut, "/api/view/current", map[string]any{"id": id}, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, resp.Success)
	var file model.File
	assert.NoError(t, json.Unmarshal(resp.Data, &file))
	assert.Equal(t, "line one\nline two", file.Content)

	cookies := sessionCookies(recorder)

	// The viewer re-fetches through the session pointer.
	recorder, resp = doJSON(t, router, http.MethodGet, "/api/view/current", nil, cookies)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NoError(t, json.Unmarshal(resp.Data, &file))
	assert.Equal(t, id, file.Id)

	// Deleting the pointed-at file turns the viewer into a null, not an
	// error.
	delRecorder, _ := doJSON(t, router, http.MethodDelete, "/api/file/1", nil, nil)
	assert.Equal(t, http.StatusOK, delRecorder.Code)

	recorder, resp = doJSON(t, router, http.MethodGet, "/api/view/current", nil, cookies)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "", string(resp.Data))
}

func TestViewCurrentFileMissing(t *testing.T) {
	router := newTestRouter(t)

	recorder, resp := doJSON(t, router, http.MethodPut, "/api/view/current", map[string]any{"id": 42}, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.False(t, resp.Success)
}

func TestSelectionReportFlow(t *testing.T) {
	router := newTestRouter(t)

	// Nothing reported yet.
	recorder, resp := doJSON(t, router, http.MethodGet, "/api/view/selection", nil, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "", string(resp.Data))

	report := map[string]any{"text": "lo wor", "start": 3, "end": 9}
	recorder, resp = doJSON(t, router, http.MethodPut, "/api/view/selection", report, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, resp.Success)

	var echoed SelectionReport
	assert.NoError(t, json.Unmarshal(resp.Data, &echoed))
	assert.Equal(t, SelectionReport{Text: "lo wor", Start: 3, End: 9}, echoed)

	cookies := sessionCookies(recorder)
	recorder, resp = doJSON(t, router, http.MethodGet, "/api/view/selection", nil, cookies)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NoError(t, json.Unmarshal(resp.Data, &echoed))
	assert.Equal(t, SelectionReport{Text: "lo wor", Start: 3, End: 9}, echoed)
}

func TestSelectionReportClampsNegatives(t *testing.T) {
	router := newTestRouter(t)

	report := map[string]any{"text": "abc", "start": -5, "end": -2}
	recorder, resp := doJSON(t, router, http.MethodPut, "/api/view/selection", report, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var echoed SelectionReport
	assert.NoError(t, json.Unmarshal(resp.Data, &echoed))
	assert.Equal(t, 0, echoed.Start)
	assert.Equal(t, 0, echoed.End)
}

// Selecting a new file clears the previous selection report.
func TestSelectingFileClearsSelection(t *testing.T) {
	router := newTestRouter(t)
	id := createTestFile(t, router, "a.txt", "content a")

	recorder, _ := doJSON(t, router, http.MethodPut, "/api/view/selection", map[string]any{
		"text": "stale", "start": 0, "end": 5,
	}, nil)
	cookies := sessionCookies(recorder)

	recorder, _ = doJSON(t, router, http.MethodPut, "/api/view/current", map[string]any{"id": id}, cookies)
	assert.Equal(t, http.StatusOK, recorder.Code)
	cookies = sessionCookies(recorder)

	_, resp := doJSON(t, router, http.MethodGet, "/api/view/selection", nil, cookies)
	assert.True(t, resp.Success)
	assert.Equal(t, "", string(resp.Data))
}
