package server

import (
	"net/http/httptest"
	"testing"
)

func TestParseRenderRequest(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		iterations int
		wantErr    bool
	}{
		{"Defaults", "/render", 200, false},
		{"CornellByName", "/render?scene=cornell", 200, false},
		{"DefaultScene", "/render?scene=default", 200, false},
		{"CustomIterations", "/render?iterations=50", 50, false},
		{"UnknownScene", "/render?scene=teapot", 0, true},
		{"NonNumericIterations", "/render?iterations=abc", 0, true},
		{"ZeroIterations", "/render?iterations=0", 0, true},
		{"NegativeIterations", "/render?iterations=-5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			sc, iterations, err := parseRenderRequest(r)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %s", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if sc == nil {
				t.Fatal("Expected a scene")
			}
			if iterations != tt.iterations {
				t.Errorf("Expected %d iterations, got %d", tt.iterations, iterations)
			}
		})
	}
}
