package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/community_connect/internal/core/store"
	"github.com/SscSPs/community_connect/internal/fixtures"
)

func TestObserveStore_CountsMutationsByKind(t *testing.T) {
	m := New("app")
	st := store.New(fixtures.Data{})
	unsubscribe := m.ObserveStore(st)

	st.UpdatePixKey("a")
	st.UpdatePixKey("b")
	st.ClearSession()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StoreMutationsTotal.WithLabelValues(string(store.EventPixKeyUpdated))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreMutationsTotal.WithLabelValues(string(store.EventSessionEnded))))

	unsubscribe()
	st.UpdatePixKey("c")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StoreMutationsTotal.WithLabelValues(string(store.EventPixKeyUpdated))))
}

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New("auth")
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/7", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/:id", "204")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `cc_http_requests_total{method="GET",path_pattern="/items/:id",service="auth",status_code="204"} 1`)
}
