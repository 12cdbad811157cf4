package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamal578/CSCI-6515-Project1/confusion"
	"github.com/Kamal578/CSCI-6515-Project1/vocab"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testMatrix() *confusion.Matrix {
	return &confusion.Matrix{
		Sub: map[string]map[string]float64{
			"b": {"p": 0.2},
		},
		Ins:        map[string]float64{},
		Del:        map[string]float64{},
		DefaultSub: 1,
		DefaultIns: 1,
		DefaultDel: 1,
	}
}

func testServer(t *testing.T, dict Dictionary) *Server {
	t.Helper()
	table := vocab.Table{
		"kitab":     100,
		"kitabxana": 10,
		"çay":       50,
		"mən":       200,
		"oxuyuram":  30,
	}
	srv, err := New(table, testMatrix(), dict, Config{TopK: 3})
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	router := testServer(t, nil).Router()

	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.EqualValues(t, 5, resp["vocab_size"])
}

func TestSuggestKnownWord(t *testing.T) {
	router := testServer(t, nil).Router()

	w := doJSON(t, router, http.MethodPost, "/api/v1/suggest", gin.H{"word": "Kitab"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp suggestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Correct)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "kitab", resp.Suggestions[0].Word)
	assert.Zero(t, resp.Suggestions[0].Cost)
}

func TestSuggestMisspelling(t *testing.T) {
	router := testServer(t, nil).Router()

	w := doJSON(t, router, http.MethodPost, "/api/v1/suggest", gin.H{"word": "kitap", "k": 2})
	require.Equal(t, http.StatusOK, w.Code)

	var resp suggestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Correct)
	assert.False(t, resp.Cached)
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "kitab", resp.Suggestions[0].Word)
	assert.InDelta(t, 0.2, resp.Suggestions[0].Cost, 1e-9)

	// Second identical request is served from the cache.
	w = doJSON(t, router, http.MethodPost, "/api/v1/suggest", gin.H{"word": "kitap", "k": 2})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Cached)
	assert.Equal(t, "kitab", resp.Suggestions[0].Word)
}

func TestSuggestKeyboardVariant(t *testing.T) {
	router := testServer(t, nil).Router()

	// "chay" is the English-keyboard spelling of "çay": the variant
	// expansion must surface the exact vocabulary word at cost zero.
	w := doJSON(t, router, http.MethodPost, "/api/v1/suggest", gin.H{"word": "chay"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp suggestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "çay", resp.Suggestions[0].Word)
	assert.Zero(t, resp.Suggestions[0].Cost)
	assert.Equal(t, 1, resp.Suggestions[0].Edits)
}

func TestSuggestValidation(t *testing.T) {
	router := testServer(t, nil).Router()

	w := doJSON(t, router, http.MethodPost, "/api/v1/suggest", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCorrectText(t *testing.T) {
	router := testServer(t, nil).Router()

	w := doJSON(t, router, http.MethodPost, "/api/v1/correct", gin.H{"text": "mən kitap oxuyuram."})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mən kitab oxuyuram.", resp["text"])
}

func TestDictionaryLifecycle(t *testing.T) {
	srv := testServer(t, NewMemoryDictionary())
	router := srv.Router()

	// Unknown word before the dictionary knows it.
	w := doJSON(t, router, http.MethodPost, "/api/v1/suggest", gin.H{"word": "Qoşqar"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp suggestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Correct)

	// Add it.
	w = doJSON(t, router, http.MethodPost, "/api/v1/dictionary", gin.H{"word": "Qoşqar"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Listed.
	w = doJSON(t, router, http.MethodGet, "/api/v1/dictionary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, []string{"qoşqar"}, list["words"])

	// Now recognized as correct.
	w = doJSON(t, router, http.MethodPost, "/api/v1/suggest", gin.H{"word": "qoşqar"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Correct)

	// And reachable as a suggestion for a near miss.
	w = doJSON(t, router, http.MethodPost, "/api/v1/suggest", gin.H{"word": "qoşqab"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "qoşqar", resp.Suggestions[0].Word)

	// Remove it again.
	w = doJSON(t, router, http.MethodDelete, "/api/v1/dictionary/qoşqar", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/suggest", gin.H{"word": "qoşqar"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Correct)
}
