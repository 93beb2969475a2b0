package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPagination(t *testing.T) {
	p := NewPagination(2, 2, 5)
	assert.Equal(t, 3, p.TotalPages)
	start, end := p.Bounds()
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)

	p = NewPagination(9, 2, 5)
	start, end = p.Bounds()
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)

	p = NewPagination(288230376151711744, 50, 5)
	start, end = p.Bounds()
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)

	assert.Equal(t, 0, NewPagination(1, 50, 0).TotalPages)
	start, end = NewPagination(1, 50, 0).Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { Fail(c, http.StatusNotFound, ErrNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "edge-42.a")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "edge-42.a", w.Header().Get(HeaderRequestID))
	var env Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "edge-42.a", env.Metadata.RequestID)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrNotFound, env.Error.Code)
	assert.Equal(t, GetMessage(ErrNotFound), env.Error.Message)

	for _, bad := range []string{"<script>", strings.Repeat("a", 65)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, bad)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.NotEqual(t, bad, w.Header().Get(HeaderRequestID))
		assert.Len(t, w.Header().Get(HeaderRequestID), 36)
	}
}

func TestFailWithFields(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FailWithFields(c, http.StatusBadRequest, ErrValidation, map[string]string{"year": "year is required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"fields":{"year":"year is required"}`)
	assert.Contains(t, w.Body.String(), `"data":null`)
}
