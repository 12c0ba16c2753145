package jokeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/joke", WithHTTPClient(srv.Client())), srv
}

func TestFetch_Success(t *testing.T) {
	t.Parallel()

	var gotPath, gotFlags, gotType string
	c, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFlags = r.URL.Query().Get("blacklistFlags")
		gotType = r.URL.Query().Get("type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":false,"category":"Pun","type":"twopart","setup":"Why...","delivery":"Because...","id":42,"safe":true}`))
	})

	joke, err := c.Fetch(context.Background(), "pun")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if joke.Category != "Pun" || joke.Setup != "Why..." || joke.Delivery != "Because..." || joke.ID != 42 {
		t.Fatalf("joke = %+v", joke)
	}
	if gotPath != "/joke/Pun" {
		t.Errorf("path = %q, want /joke/Pun", gotPath)
	}
	if gotFlags != "nsfw,religious,political,racist,sexist,explicit" {
		t.Errorf("blacklistFlags = %q", gotFlags)
	}
	if gotType != "twopart" {
		t.Errorf("type = %q, want twopart", gotType)
	}
}

func TestFetch_EmptyCategoryNormalized(t *testing.T) {
	t.Parallel()

	c, _ := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":false,"setup":"a","delivery":"b"}`))
	})

	joke, err := c.Fetch(context.Background(), "Any")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if joke.Category != "Any" {
		t.Fatalf("category = %q, want Any", joke.Category)
	}
}

func TestFetch_FailureKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		want    Kind
		message string
	}{
		{"http status", http.StatusInternalServerError, `oops`, KindHTTPStatus, ""},
		{"rate limited", http.StatusTooManyRequests, `{"error":true}`, KindHTTPStatus, ""},
		{"malformed json", http.StatusOK, `{"error":false,`, KindDecode, ""},
		{"missing delivery", http.StatusOK, `{"error":false,"category":"Misc","type":"single","joke":"x"}`, KindDecode, ""},
		{"application error", http.StatusOK, `{"error":true,"message":"No matching joke found"}`, KindApplication, "No matching joke found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, _ := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Fetch(context.Background(), "Any")
			if !IsKind(err, tt.want) {
				t.Fatalf("err = %v, want kind %s", err, tt.want)
			}
			if tt.message != "" {
				fe := err.(*FetchError)
				if fe.Message != tt.message {
					t.Errorf("message = %q, want %q", fe.Message, tt.message)
				}
			}
		})
	}
}

func TestFetch_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Fetch(context.Background(), "Any")
	if !IsKind(err, KindTransport) {
		t.Fatalf("err = %v, want transport failure", err)
	}
}

func TestFetch_TimeoutIsTransport(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c := NewClient(srv.URL, WithHTTPClient(srv.Client()), WithTimeout(50*time.Millisecond))
	_, err := c.Fetch(context.Background(), "Any")
	if !IsKind(err, KindTransport) {
		t.Fatalf("err = %v, want transport failure", err)
	}
}

func TestFetch_InvalidCategorySkipsRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c, _ := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	})

	_, err := c.Fetch(context.Background(), "../admin")
	if !IsKind(err, KindInvalidCategory) {
		t.Fatalf("err = %v, want invalid category", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("requests = %d, want 0", calls.Load())
	}
}

func TestURL(t *testing.T) {
	t.Parallel()

	c := NewClient("https://example.test/joke/")
	want := "https://example.test/joke/Programming?blacklistFlags=nsfw%2Creligious%2Cpolitical%2Cracist%2Csexist%2Cexplicit&type=twopart"
	if got := c.URL("Programming"); got != want {
		t.Fatalf("URL = %q\nwant  %q", got, want)
	}
}
