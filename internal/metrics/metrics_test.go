package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/tags", "200"))
	RecordAPIRequest("GET", "/api/tags", 200, 10*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/tags", "200"))
	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v", after-before)
	}
}

func TestRecordAPIRequest_UnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
	RecordAPIRequest("GET", "", 404, time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
	if after-before != 1 {
		t.Fatalf("expected unmatched label to be used")
	}
}

func TestRecordImageHostCall_Outcome(t *testing.T) {
	before := testutil.ToFloat64(ImageHostOperations.WithLabelValues("fake", "upload", "error"))
	RecordImageHostCall("fake", "upload", time.Millisecond, errors.New("boom"))
	after := testutil.ToFloat64(ImageHostOperations.WithLabelValues("fake", "upload", "error"))
	if after-before != 1 {
		t.Fatalf("expected error outcome to be counted")
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Fatalf("expected gauge %v, got %v", before+1, got)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Fatalf("expected gauge back to %v, got %v", before, got)
	}
}
