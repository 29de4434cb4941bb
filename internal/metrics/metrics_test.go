package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsIsIdempotent(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("GET", "/contacts/v1/", 200, 12*time.Millisecond)
	RecordPhoneCheck("national")
}

func TestRecordDirectoryOp(t *testing.T) {
	before := testutil.ToFloat64(directoryOps.WithLabelValues("add_or_update", "added"))

	RecordDirectoryOp("add_or_update", "added", 3)

	after := testutil.ToFloat64(directoryOps.WithLabelValues("add_or_update", "added"))
	if after-before != 1 {
		t.Errorf("operations_total delta = %v, want 1", after-before)
	}
	if got := testutil.ToFloat64(directorySize); got != 3 {
		t.Errorf("contacts gauge = %v, want 3", got)
	}
}

func TestRequestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestMetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	counter := httpRequests.WithLabelValues("GET", "/ping", "200")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("requests_total delta = %v, want 1", got)
	}
}
