// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/MKhiriev/go-shop/models"
	"github.com/go-chi/chi/v5"
)

// Routes reachable without a token.
const (
	loginPath  = "/login"
	signupPath = "/api/user/create"
)

// DefaultRoutePolicy returns the built-in policy table: account creation and
// login are public, everything else requires authentication.
func DefaultRoutePolicy() []models.RoutePolicyEntry {
	return []models.RoutePolicyEntry{
		{Method: http.MethodPost, Pattern: signupPath, Access: models.AccessPublic},
		{Method: http.MethodPost, Pattern: loginPath, Access: models.AccessPublic},
	}
}

// RoutePolicy decides the access level of a request from an ordered list of
// entries. The first entry matching the method and path wins; a request that
// matches nothing requires authentication.
//
// A RoutePolicy is immutable after NewRoutePolicy returns and may be shared
// by concurrent requests.
type RoutePolicy struct {
	entries  []models.RoutePolicyEntry
	matchers []*chi.Mux
}

// NewRoutePolicy compiles entries into a RoutePolicy. Patterns use chi
// syntax. An entry with an empty Method matches every method.
//
// It fails if a pattern or method is rejected by chi.
func NewRoutePolicy(entries []models.RoutePolicyEntry) (*RoutePolicy, error) {
	policy := &RoutePolicy{
		entries:  slices.Clone(entries),
		matchers: make([]*chi.Mux, 0, len(entries)),
	}

	for _, entry := range entries {
		matcher, err := newMatcher(entry)
		if err != nil {
			return nil, err
		}
		policy.matchers = append(policy.matchers, matcher)
	}

	return policy, nil
}

// newMatcher registers entry on a private mux so that chi's own tree does
// the pattern matching. chi reports bad patterns by panicking.
func newMatcher(entry models.RoutePolicyEntry) (mux *chi.Mux, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid route policy entry %q %q: %v", entry.Method, entry.Pattern, r)
		}
	}()

	mux = chi.NewMux()
	if entry.Method == "" {
		mux.Handle(entry.Pattern, http.NotFoundHandler())
	} else {
		mux.Method(entry.Method, entry.Pattern, http.NotFoundHandler())
	}

	return mux, nil
}

// AccessLevel returns the access level of method and path.
func (p *RoutePolicy) AccessLevel(method, path string) models.AccessLevel {
	for i, matcher := range p.matchers {
		if matcher.Match(chi.NewRouteContext(), method, path) {
			return p.entries[i].Access
		}
	}

	return models.AccessAuthenticated
}

// Entries returns a copy of the policy table in evaluation order.
func (p *RoutePolicy) Entries() []models.RoutePolicyEntry {
	return slices.Clone(p.entries)
}
