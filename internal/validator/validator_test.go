package validator

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temitayo1239/student-information-portal-main/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
	Setup()
}

func bindCart(t *testing.T, body string) map[string]string {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req model.AddToCartRequest
	return Bind(c, &req)
}

func bindFilter(t *testing.T, query string) map[string]string {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)

	var q model.NotificationQuery
	return BindQuery(c, &q)
}

func TestCourseCode(t *testing.T) {
	assert.Nil(t, bindCart(t, `{"code":"CSC301"}`))

	fields := bindCart(t, `{"code":"csc301"}`)
	require.Contains(t, fields, "code")
	assert.Contains(t, fields["code"], "course code")

	fields = bindCart(t, `{}`)
	assert.Contains(t, fields, "code")
}

func TestMalformedJSON(t *testing.T) {
	fields := bindCart(t, `{"code":`)
	assert.Contains(t, fields, "detail")
}

func TestNotificationFilter(t *testing.T) {
	for _, q := range []string{"", "filter=all", "filter=unread", "filter=exam", "filter=finance"} {
		assert.Nil(t, bindFilter(t, q), q)
	}

	fields := bindFilter(t, "filter=spam")
	require.Contains(t, fields, "filter")
	assert.Contains(t, fields["filter"], "unread")
}

func TestSetupIsIdempotent(t *testing.T) {
	Setup()
	Setup()
	assert.Nil(t, bindCart(t, `{"code":"GST301"}`))
}
