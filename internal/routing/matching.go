package routing

import (
	"fmt"
	"regexp"
	"strings"
)

// RoutePattern is a compiled route template with its parameter names.
type RoutePattern struct {
	Original   string
	Regex      *regexp.Regexp
	ParamNames []string
}

// ParseRoutePattern compiles a route template into a regex and parameter
// names. Supported placeholder forms:
//   - /users/{id}
//   - /posts/{year:\d{4}}/{slug:[^/]+}
//   - /echo/{*} (wildcard, may match slashes)
//
// Everything outside {…} is regex-escaped. A single trailing slash is
// ignored at compile time and optional at match time.
func ParseRoutePattern(pattern string) (*RoutePattern, error) {
	if pattern == "" {
		return nil, fmt.Errorf("route pattern cannot be empty")
	}

	normalized := strings.TrimSuffix(pattern, "/")
	spans := findPlaceholders(normalized)

	var paramNames []string
	var b strings.Builder
	b.WriteByte('^')

	last := 0
	for _, span := range spans {
		start, end := span[0], span[1]
		if start > last {
			b.WriteString(regexp.QuoteMeta(normalized[last:start]))
		}

		content := normalized[start+1 : end-1]
		name, custom, hasCustom := strings.Cut(content, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("route parameter name cannot be empty")
		}
		for _, n := range paramNames {
			if n == name {
				return nil, fmt.Errorf("duplicate route parameter name: %s", name)
			}
		}
		paramNames = append(paramNames, name)

		var expr string
		if hasCustom {
			expr = custom
		} else if name == "*" {
			expr = ".*?"
		} else {
			expr = "[^/]+"
		}

		b.WriteByte('(')
		b.WriteString(expr)
		b.WriteByte(')')
		last = end
	}
	if last < len(normalized) {
		b.WriteString(regexp.QuoteMeta(normalized[last:]))
	}
	b.WriteString("/?$")

	compiled, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("failed to compile route pattern: %w", err)
	}

	return &RoutePattern{
		Original:   normalized,
		Regex:      compiled,
		ParamNames: paramNames,
	}, nil
}

// findPlaceholders returns [start,end) ranges of balanced {...} spans.
func findPlaceholders(s string) [][2]int {
	var res [][2]int
	depth := 0
	start := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start >= 0 {
					res = append(res, [2]int{start, i + 1})
					start = -1
				}
			}
		}
	}
	return res
}

// Match tests the path against the pattern, returning captured parameters.
func (rp *RoutePattern) Match(path string) (bool, map[string]string) {
	if rp.Regex == nil {
		return false, nil
	}

	matches := rp.Regex.FindStringSubmatch(path)
	if matches == nil {
		return false, nil
	}

	var params map[string]string
	if len(rp.ParamNames) > 0 {
		params = make(map[string]string, len(rp.ParamNames))
		for i, name := range rp.ParamNames {
			if i+1 < len(matches) {
				value := matches[i+1]
				if name == "*" {
					value = strings.TrimSuffix(value, "/")
				}
				params[name] = value
			}
		}
	}
	return true, params
}
