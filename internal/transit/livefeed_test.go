package transit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestFeed(t *testing.T, handler http.HandlerFunc) (*LiveFeed, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	feed := NewLiveFeed("test-key", "SF", "L", "13210", "IB", 2*time.Second)
	feed.baseURL = srv.URL
	feed.now = func() time.Time { return parseNow }
	return feed, srv
}

func TestLiveFeedPoll(t *testing.T) {
	feed, _ := newTestFeed(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("api_key") != "test-key" || q.Get("agency") != "SF" ||
			q.Get("stopCode") != "13210" || q.Get("format") != "json" {
			t.Errorf("unexpected query parameters: %v", q)
		}
		// 511.org responses carry a UTF-8 BOM.
		w.Write([]byte{0xef, 0xbb, 0xbf})
		w.Write(document(
			visit("L", "IB", "Embarcadero", "L1", parseNow.Add(4*time.Minute)),
		))
	})

	arrivals := feed.Poll()
	if len(arrivals) != 1 || arrivals[0].Minutes != 4 {
		t.Errorf("arrivals = %+v, want one at 4 minutes", arrivals)
	}
}

func TestLiveFeedFallsBackOnServerError(t *testing.T) {
	feed, _ := newTestFeed(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	arrivals := feed.Poll()
	if !Equal(arrivals, NewDemo("IB").Poll()) {
		t.Errorf("arrivals = %+v, want demo fallback", arrivals)
	}
}

func TestLiveFeedFallsBackOnEmptyResult(t *testing.T) {
	feed, _ := newTestFeed(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ServiceDelivery":{"StopMonitoringDelivery":[]}}`))
	})

	arrivals := feed.Poll()
	if !Equal(arrivals, NewDemo("IB").Poll()) {
		t.Errorf("arrivals = %+v, want demo fallback", arrivals)
	}
}

func TestLiveFeedFallsBackOnMalformedBody(t *testing.T) {
	feed, _ := newTestFeed(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	})

	arrivals := feed.Poll()
	if !Equal(arrivals, NewDemo("IB").Poll()) {
		t.Errorf("arrivals = %+v, want demo fallback", arrivals)
	}
}

func TestLiveFeedCachesWithinTTL(t *testing.T) {
	requests := 0
	feed, _ := newTestFeed(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write(document(
			visit("L", "IB", "Embarcadero", "L1", parseNow.Add(4*time.Minute)),
		))
	})

	feed.Poll()
	feed.Poll()
	if requests != 1 {
		t.Errorf("requests = %d, want 1 (second poll should hit the cache)", requests)
	}
}
