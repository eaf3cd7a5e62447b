package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestDoJSONAttachesHeaders(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("Authorization = %q", req.Header.Get("Authorization"))
		}
		if req.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", req.Header.Get("Content-Type"))
		}
		if req.URL.Query().Get("q") != "x" {
			t.Errorf("query = %v", req.URL.Query())
		}
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`{"message":"short and stout"}`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL+"/", 5*time.Second) // trailing slash is tolerated
	q := url.Values{}
	q.Set("q", "x")
	status, body, err := c.DoJSON(context.Background(), http.MethodPost, "/things", q, "tok", map[string]string{"a": "b"})
	if err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if status != http.StatusTeapot {
		t.Fatalf("status = %d", status)
	}
	if got := ServerMessage(body); got != "short and stout" {
		t.Fatalf("ServerMessage = %q", got)
	}
}

func TestQueryParamStylesValues(t *testing.T) {
	t.Parallel()

	q := url.Values{}
	if err := QueryParam(q, "page", 2); err != nil {
		t.Fatalf("QueryParam int: %v", err)
	}
	if err := QueryParam(q, "name", "par is"); err != nil {
		t.Fatalf("QueryParam string: %v", err)
	}
	if q.Get("page") != "2" || q.Get("name") != "par is" {
		t.Fatalf("unexpected values: %v", q)
	}
}

func TestServerMessageToleratesJunk(t *testing.T) {
	t.Parallel()

	if got := ServerMessage([]byte("<html>oops</html>")); got != "" {
		t.Fatalf("junk body produced message %q", got)
	}
	if got := ServerMessage(nil); got != "" {
		t.Fatalf("nil body produced message %q", got)
	}
}
