package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(write func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)
	return w
}

func TestOK(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, []string{"a", "b"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var body []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"a", "b"}, body)
}

func TestErrorStatuses(t *testing.T) {
	cases := []struct {
		write func(c *gin.Context)
		code  int
	}{
		{func(c *gin.Context) { ValidationError(c, "bad") }, http.StatusBadRequest},
		{func(c *gin.Context) { AuthError(c, "nope") }, http.StatusUnauthorized},
		{func(c *gin.Context) { NotFoundError(c, "gone") }, http.StatusNotFound},
		{func(c *gin.Context) { StorageError(c) }, http.StatusServiceUnavailable},
		{func(c *gin.Context) { ServerError(c) }, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := record(tc.write)
		assert.Equal(t, tc.code, w.Code)

		var body ErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Detail)
	}
}
