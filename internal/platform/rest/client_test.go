package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() string { return s.token }

func newTestLog() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func TestCall_AttachesHeaders(t *testing.T) {
	t.Parallel()

	var gotAuth, gotContentType, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, staticTokens{token: "tok-123"}, newTestLog())
	res := c.Call(context.Background(), Request{Method: http.MethodGet, Path: "/employees", Authenticated: true})

	if !res.Succeeded {
		t.Fatalf("expected success, got %+v", res)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("unexpected Authorization header: %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("unexpected Content-Type header: %q", gotContentType)
	}
	if gotRequestID == "" {
		t.Error("expected X-Request-ID to be set")
	}
	if !res.Envelope.Success {
		t.Error("expected envelope success to be decoded")
	}
}

func TestCall_Unauthenticated_OmitsBearer(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, staticTokens{token: "tok-123"}, newTestLog())
	c.Call(context.Background(), Request{Method: http.MethodPost, Path: "/auth/login", Body: map[string]string{"username": "u"}})

	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestCall_DecodeFailureYieldsEmptyEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, staticTokens{}, newTestLog())
	res := c.Call(context.Background(), Request{Method: http.MethodGet, Path: "/employees"})

	if !res.Succeeded {
		t.Error("decode failure must not flip transport success")
	}
	if res.Envelope.Success || res.Envelope.Message != "" || res.Envelope.Data != nil {
		t.Errorf("expected zero envelope, got %+v", res.Envelope)
	}
}

func TestCall_ServerFailureKeepsMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, staticTokens{}, newTestLog())
	res := c.Call(context.Background(), Request{Method: http.MethodPost, Path: "/auth/login"})

	if res.Succeeded {
		t.Error("expected 401 to be reported as failure")
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Errorf("unexpected status code %d", res.StatusCode)
	}
	if res.Envelope.Message != "Invalid credentials" {
		t.Errorf("expected server message to survive, got %q", res.Envelope.Message)
	}
}

func TestCall_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, time.Second, staticTokens{}, newTestLog())
	res := c.Call(context.Background(), Request{Method: http.MethodGet, Path: "/employees"})

	if res.Succeeded || res.StatusCode != 0 {
		t.Errorf("expected zero result on transport failure, got %+v", res)
	}
}

func TestCall_EncodesQuery(t *testing.T) {
	t.Parallel()

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	q := url.Values{}
	q.Set("name", "Jane")

	c := NewClient(srv.URL, time.Second, staticTokens{}, newTestLog())
	c.Call(context.Background(), Request{Method: http.MethodGet, Path: "/employees/search", Query: q})

	if gotQuery != "name=Jane" {
		t.Errorf("expected query %q, got %q", "name=Jane", gotQuery)
	}
}
