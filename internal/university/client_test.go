package university

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientCalls(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	status := http.StatusOK

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotAuth = r.Method, r.URL.Path, r.Header.Get("Authorization")
		w.WriteHeader(status)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "https://uni.example/jupiterweb")
	ctx := context.Background()

	if err := c.RemoveActivity(ctx, "12", "tok"); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/activities/12" || gotAuth != "Bearer tok" {
		t.Errorf("remove: got %s %s auth=%q", gotMethod, gotPath, gotAuth)
	}

	if err := c.CheckActivity(ctx, "12", "tok"); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPost || gotPath != "/activities/12/check" {
		t.Errorf("check: got %s %s", gotMethod, gotPath)
	}

	if err := c.UncheckActivity(ctx, "12", "tok"); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/activities/12/uncheck" {
		t.Errorf("uncheck: got %s", gotPath)
	}
}

func TestClientErrorTaxonomy(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	ctx := context.Background()

	status = http.StatusUnauthorized
	var authErr *AuthError
	if err := c.RemoveActivity(ctx, "1", "bad"); !errors.As(err, &authErr) {
		t.Errorf("401: got %v, want *AuthError", err)
	}

	status = http.StatusInternalServerError
	var netErr *NetworkError
	if err := c.RemoveActivity(ctx, "1", "tok"); !errors.As(err, &netErr) {
		t.Errorf("500: got %v, want *NetworkError", err)
	}

	srv.Close() // transport failure
	if err := c.RemoveActivity(ctx, "1", "tok"); !errors.As(err, &netErr) {
		t.Errorf("closed server: got %v, want *NetworkError", err)
	}
}

func TestSubjectPageURL(t *testing.T) {
	c := NewClient("https://api.example", "https://uni.example/jupiterweb")
	got := c.SubjectPageURL("MAC0110")
	want := "https://uni.example/jupiterweb/obterDisciplina?sgldis=MAC0110"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
