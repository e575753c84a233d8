// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// AccessLevel is the access requirement of a route.
type AccessLevel int

const (
	// AccessAuthenticated requires an installed identity. It is the default
	// for every route not listed in the policy.
	AccessAuthenticated AccessLevel = iota

	// AccessPublic admits anonymous requests.
	AccessPublic
)

// String implements fmt.Stringer.
func (a AccessLevel) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("AccessLevel(%d)", int(a))
	}
}

// RoutePolicyEntry maps a method and a chi-style path pattern to an access
// level. An empty Method matches every method.
//
// Entries are loaded once at startup and never mutated.
type RoutePolicyEntry struct {
	Method  string
	Pattern string
	Access  AccessLevel
}

// ParsePublicRoute parses "METHOD /pattern" or "/pattern" into a public
// entry. It is used for routes supplied through configuration.
func ParsePublicRoute(s string) (RoutePolicyEntry, error) {
	fields := strings.Fields(s)

	switch len(fields) {
	case 1:
		if !strings.HasPrefix(fields[0], "/") {
			return RoutePolicyEntry{}, fmt.Errorf("invalid route %q: pattern must start with '/'", s)
		}
		return RoutePolicyEntry{Pattern: fields[0], Access: AccessPublic}, nil
	case 2:
		if !strings.HasPrefix(fields[1], "/") {
			return RoutePolicyEntry{}, fmt.Errorf("invalid route %q: pattern must start with '/'", s)
		}
		return RoutePolicyEntry{Method: strings.ToUpper(fields[0]), Pattern: fields[1], Access: AccessPublic}, nil
	default:
		return RoutePolicyEntry{}, fmt.Errorf("invalid route %q: expected \"METHOD /pattern\"", s)
	}
}
