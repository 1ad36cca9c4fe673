package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func bindingContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBindingErrorListsOffendingFields(t *testing.T) {
	c, w := bindingContext(t, `{"username":"dev"}`)

	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	err := c.ShouldBindJSON(&req)
	assert.Error(t, err)

	BindingError(c, err, "username and password are required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Message string            `json:"message"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "username and password are required", body.Error.Message)
	assert.Equal(t, map[string]string{"password": "required"}, body.Error.Details)
}

func TestBindingErrorWithoutFieldInfo(t *testing.T) {
	c, w := bindingContext(t, "not json")

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	err := c.ShouldBindJSON(&req)
	assert.Error(t, err)

	BindingError(c, err, "content is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "details")
}
