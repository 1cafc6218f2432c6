// Package gateway forwards API requests to the backend services by path prefix.
package gateway

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Prefixes served by the gateway.
const (
	PrefixUsers     = "/api/users"
	PrefixPortfolio = "/api/portfolio"
	PrefixGoals     = "/api/goals"
	PrefixAI        = "/api/ai"
)

// Route maps a path prefix to an upstream base URL.
type Route struct {
	Prefix   string
	Upstream *url.URL
}

// NewRoute validates the prefix and upstream of a route.
func NewRoute(prefix, upstream string) (Route, error) {
	if !strings.HasPrefix(prefix, "/") || strings.HasSuffix(prefix, "/") {
		return Route{}, fmt.Errorf("invalid route prefix %q: must start and not end with /", prefix)
	}
	u, err := url.Parse(upstream)
	if err != nil {
		return Route{}, fmt.Errorf("invalid upstream for %s: %w", prefix, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Route{}, fmt.Errorf("invalid upstream for %s: %q must be an absolute http(s) URL", prefix, upstream)
	}
	u.RawQuery, u.Fragment = "", ""
	return Route{Prefix: prefix, Upstream: u}, nil
}

// target builds the upstream URL for the remaining escaped path and raw query.
func (r Route) target(rest, rawQuery string) string {
	target := strings.TrimRight(r.Upstream.String(), "/") + rest
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return target
}

// RouteTable is a fixed set of routes.
type RouteTable struct {
	routes []Route
}

// NewRouteTable creates a table. Longer prefixes are matched first.
func NewRouteTable(routes ...Route) *RouteTable {
	sorted := append([]Route(nil), routes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Prefix) > len(sorted[j].Prefix)
	})
	return &RouteTable{routes: sorted}
}

// DefaultRoutes builds the table for the four backend services.
func DefaultRoutes(usersURL, portfolioURL, goalsURL, aiURL string) (*RouteTable, error) {
	upstreams := []struct{ prefix, url string }{
		{PrefixUsers, usersURL},
		{PrefixPortfolio, portfolioURL},
		{PrefixGoals, goalsURL},
		{PrefixAI, aiURL},
	}
	routes := make([]Route, 0, len(upstreams))
	for _, u := range upstreams {
		r, err := NewRoute(u.prefix, u.url)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return NewRouteTable(routes...), nil
}

// Match finds the route for path. A prefix only matches whole path segments,
// so /api/users matches /api/users and /api/users/1 but not /api/usersx.
// rest is the path after the prefix, "/" when nothing remains.
func (t *RouteTable) Match(path string) (route Route, rest string, ok bool) {
	for _, r := range t.routes {
		if path == r.Prefix {
			return r, "/", true
		}
		if strings.HasPrefix(path, r.Prefix+"/") {
			return r, path[len(r.Prefix):], true
		}
	}
	return Route{}, "", false
}

// Routes returns the routes in match order.
func (t *RouteTable) Routes() []Route {
	return append([]Route(nil), t.routes...)
}
