package routing

import (
	"maps"
	"testing"
)

func TestParseRoutePattern_Match(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		path       string
		wantMatch  bool
		wantParams map[string]string
	}{
		{name: "static exact", pattern: "/", path: "/", wantMatch: true},
		{name: "static miss", pattern: "/files", path: "/user-agent", wantMatch: false},
		{name: "trailing slash optional", pattern: "/files", path: "/files/", wantMatch: true},
		{
			name:       "named param",
			pattern:    "/users/{id}",
			path:       "/users/42",
			wantMatch:  true,
			wantParams: map[string]string{"id": "42"},
		},
		{name: "named param rejects slash", pattern: "/users/{id}", path: "/users/42/posts", wantMatch: false},
		{
			name:       "custom regex matches",
			pattern:    `/posts/{year:\d{4}}`,
			path:       "/posts/2024",
			wantMatch:  true,
			wantParams: map[string]string{"year": "2024"},
		},
		{name: "custom regex rejects", pattern: `/posts/{year:\d{4}}`, path: "/posts/abcd", wantMatch: false},
		{
			name:       "wildcard captures slashes",
			pattern:    "/echo/{*}",
			path:       "/echo/a/b/c",
			wantMatch:  true,
			wantParams: map[string]string{"*": "a/b/c"},
		},
		{
			name:       "wildcard strips trailing slash",
			pattern:    "/echo/{*}",
			path:       "/echo/abc/",
			wantMatch:  true,
			wantParams: map[string]string{"*": "abc"},
		},
		{
			name:       "multiple params",
			pattern:    "/repos/{owner}/{name}",
			path:       "/repos/oxbow/furrow",
			wantMatch:  true,
			wantParams: map[string]string{"owner": "oxbow", "name": "furrow"},
		},
		{name: "prefix alone is not a match", pattern: "/users/{id}", path: "/users", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rp, err := ParseRoutePattern(tt.pattern)
			if err != nil {
				t.Fatalf("ParseRoutePattern(%q) error = %v", tt.pattern, err)
			}

			ok, params := rp.Match(tt.path)
			if ok != tt.wantMatch {
				t.Fatalf("Match(%q) = %v, want %v", tt.path, ok, tt.wantMatch)
			}
			if tt.wantParams != nil && !maps.Equal(params, tt.wantParams) {
				t.Errorf("Match(%q) params = %v, want %v", tt.path, params, tt.wantParams)
			}
		})
	}
}

func TestParseRoutePattern_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{name: "empty pattern", pattern: ""},
		{name: "empty param name", pattern: "/users/{}"},
		{name: "duplicate param name", pattern: "/pair/{id}/{id}"},
		{name: "bad custom regex", pattern: "/bad/{x:[}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRoutePattern(tt.pattern); err == nil {
				t.Errorf("ParseRoutePattern(%q) expected error", tt.pattern)
			}
		})
	}
}
