package webapp

import (
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestHandlerRoutes tests that the go-app handler serves the home page and its resources
func TestHandlerRoutes(t *testing.T) {
	handler := Handler("notfound-test")

	tests := []struct {
		name string
		path string
	}{
		{name: "Home page", path: "/"},
		{name: "App script", path: "/app.js"},
		{name: "Manifest", path: "/manifest.webmanifest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("Route %s returned status %d, want 200", tt.path, rec.Code)
			}
			t.Logf("Route %s returned status %d", tt.path, rec.Code)
		})
	}
}

// TestHandlerLinksStylesheet tests that the rendered page pulls in webapp.css
func TestHandlerLinksStylesheet(t *testing.T) {
	handler := Handler("notfound-test")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), StylesheetPath) {
		t.Errorf("Expected page to reference %s", StylesheetPath)
	}
}

// TestHandlerRendersNotFoundPageForUnknownPaths tests that go-app hands every path to App
func TestHandlerRendersNotFoundPageForUnknownPaths(t *testing.T) {
	handler := Handler("notfound-test")

	for _, path := range []string{"/missing", "/a/b/c", "/foo/"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("Route %s returned status %d, want 200 from the App route", path, rec.Code)
			}
			body := rec.Body.String()
			if !strings.Contains(body, "not-found-page") {
				t.Errorf("Route %s did not prerender NotFoundPage", path)
			}
			if !strings.Contains(html.UnescapeString(body), NotFoundMessage) {
				t.Errorf("Route %s missing the not found message", path)
			}
		})
	}
}

// TestHandlerHomeIsNotNotFound tests that "/" prerenders the home page
func TestHandlerHomeIsNotNotFound(t *testing.T) {
	handler := Handler("notfound-test")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "home-page") {
		t.Error("Expected / to prerender HomePage")
	}
	if strings.Contains(body, "not-found-page") {
		t.Error("Did not expect / to prerender NotFoundPage")
	}
}
