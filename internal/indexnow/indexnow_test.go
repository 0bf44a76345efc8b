package indexnow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestBuildPayloads(t *testing.T) {
	urls := make([]string, MaxURLsPerRequest+5)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://freetoolz.cloud/tools/t%d", i)
	}
	payloads, err := BuildPayloads("https://freetoolz.cloud", "k", "https://freetoolz.cloud/k.txt", urls)
	if err != nil {
		t.Fatal(err)
	}
	if len(payloads) != 2 || len(payloads[0].URLList) != MaxURLsPerRequest || len(payloads[1].URLList) != 5 {
		t.Fatalf("unexpected chunking: %d payloads", len(payloads))
	}
	if payloads[0].Host != "freetoolz.cloud" {
		t.Fatalf("host = %q", payloads[0].Host)
	}
}

func TestBuildPayloadsMissingKey(t *testing.T) {
	if _, err := BuildPayloads("https://freetoolz.cloud", "", "", []string{"x"}); !errors.Is(err, ErrMissingKey) {
		t.Fatalf("want ErrMissingKey, got %v", err)
	}
}

func TestSubmit(t *testing.T) {
	var got Payload
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json; charset=utf-8" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ok.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer bad.Close()

	payloads, err := BuildPayloads("https://freetoolz.cloud", "abc", "https://freetoolz.cloud/abc.txt", []string{"https://freetoolz.cloud/tools/word-counter"})
	if err != nil {
		t.Fatal(err)
	}
	client := NewClient(5*time.Second, 2*time.Second)
	results := client.Submit(context.Background(), []string{ok.URL, bad.URL}, payloads)
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	if results[0].Status != http.StatusAccepted || results[0].Error != "" {
		t.Fatalf("first endpoint: %+v", results[0])
	}
	if results[1].Status != http.StatusForbidden || results[1].Error == "" {
		t.Fatalf("second endpoint: %+v", results[1])
	}
	if got.Key != "abc" || len(got.URLList) != 1 {
		t.Fatalf("server received %+v", got)
	}
}

func TestNewKey(t *testing.T) {
	k := NewKey()
	if len(k) != 32 {
		t.Fatalf("key %q has length %d", k, len(k))
	}
	if NewKey() == k {
		t.Fatal("keys should differ")
	}
}
