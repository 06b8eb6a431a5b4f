package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordReviewSubmission(t *testing.T) {
	before := testutil.ToFloat64(ReviewSubmissions.WithLabelValues("disabled"))
	RecordReviewSubmission("disabled")
	RecordReviewSubmission("disabled")
	assert.Equal(t, before+2, testutil.ToFloat64(ReviewSubmissions.WithLabelValues("disabled")))
}

func TestRecordFavoriteChange(t *testing.T) {
	before := testutil.ToFloat64(FavoriteChanges.WithLabelValues("add", "ok"))
	RecordFavoriteChange("add", "ok")
	assert.Equal(t, before+1, testutil.ToFloat64(FavoriteChanges.WithLabelValues("add", "ok")))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/games/:id", "404"))
	RecordHTTPRequest("GET", "/api/games/:id", 404, 3*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/games/:id", "404")))
}
