package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pthana/linkshort/pkg/adapters/handler"
	"github.com/pthana/linkshort/pkg/adapters/repository/sqlite"
	"github.com/pthana/linkshort/pkg/config"
	"github.com/pthana/linkshort/pkg/core/services"
)

func TestIntegration(t *testing.T) {
	repo, err := sqlite.NewSQLiteRepository("file:e2edb?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to init db: %v", err)
	}
	defer repo.Close()

	cfg := &config.Config{BaseURL: "http://short.test"}
	service := services.NewLinkService(repo, nil)
	cleanup := services.NewCleanupService(repo)
	router := handler.NewRouter(cfg, service, cleanup)

	server := httptest.NewServer(router)
	defer server.Close()

	client := server.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	// Create
	body, _ := json.Marshal(map[string]string{"original_url": "https://example.com"})
	resp, err := client.Post(server.URL+"/create", "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("Failed JSON POST: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}
	var created struct {
		ShortCode string `json:"short_code"`
		ShortURL  string `json:"short_url"`
	}
	json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()
	if created.ShortCode == "" {
		t.Fatal("Short code is empty")
	}
	if created.ShortURL != "http://short.test/"+created.ShortCode {
		t.Errorf("Short url mismatch: %s", created.ShortURL)
	}

	// Validation failures
	for _, bad := range []string{`{"original_url":""}`, `{"original_url":"ftp://x"}`} {
		resp, err = client.Post(server.URL+"/create", "application/json", bytes.NewBufferString(bad))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400 for %s, got %d", bad, resp.StatusCode)
		}
	}

	// Redirect
	resp, err = client.Get(server.URL + "/" + created.ShortCode)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusTemporaryRedirect {
		t.Errorf("Redirect expected 307, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "https://example.com" {
		t.Errorf("Redirect location mismatch: %s", loc)
	}

	// Unknown and malformed aliases are both 404
	for _, path := range []string{"/zzzz", "/not-valid!"} {
		resp, err = client.Get(server.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected 404 for %s, got %d", path, resp.StatusCode)
		}
	}

	// Click count reflects the redirect
	resp, err = client.Get(server.URL + "/clicks/" + created.ShortCode)
	if err != nil {
		t.Fatal(err)
	}
	var clicks struct {
		ClickCount int64 `json:"click_count"`
	}
	json.NewDecoder(resp.Body).Decode(&clicks)
	resp.Body.Close()
	if clicks.ClickCount != 1 {
		t.Errorf("Click count = %d, want 1", clicks.ClickCount)
	}

	// List
	resp, err = client.Get(server.URL + "/urls?limit=10&offset=0")
	if err != nil {
		t.Fatal(err)
	}
	var links []struct {
		ShortCode string `json:"short_code"`
	}
	json.NewDecoder(resp.Body).Decode(&links)
	resp.Body.Close()
	if len(links) != 1 || links[0].ShortCode != created.ShortCode {
		t.Errorf("List returned %+v", links)
	}

	// Cleanup validation
	req, _ := http.NewRequest(http.MethodDelete, server.URL+"/cleanup?days=0", nil)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Cleanup days=0 expected 400, got %d", resp.StatusCode)
	}

	// Cleanup with a sane window keeps the fresh link
	req, _ = http.NewRequest(http.MethodDelete, server.URL+"/cleanup?days=30", nil)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	var result struct {
		Deleted int64 `json:"deleted"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || result.Deleted != 0 {
		t.Errorf("Cleanup expected 200/0 deleted, got %d/%d", resp.StatusCode, result.Deleted)
	}
}
