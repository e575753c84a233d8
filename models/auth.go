// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Authority is a granted-permission tag carried by an authenticated request.
type Authority string

// AuthorityUser is the only authority granted by the service: the holder
// presented a valid token.
const AuthorityUser Authority = "ROLE_USER"

// AuthenticationContext is the request-scoped result of authenticating a
// request. The zero value is the anonymous context.
//
// A context is created for exactly one request and must not be retained
// after that request completes.
type AuthenticationContext struct {
	// Identity is the username recovered from the bearer token.
	// Empty for anonymous requests.
	Identity string

	// Authorities holds the permissions granted to Identity.
	Authorities []Authority
}

// Anonymous returns the context of a request that carried no valid token.
func Anonymous() AuthenticationContext {
	return AuthenticationContext{}
}

// NewAuthenticationContext returns a context for identity with the default
// authority set.
func NewAuthenticationContext(identity string) AuthenticationContext {
	return AuthenticationContext{
		Identity:    identity,
		Authorities: []Authority{AuthorityUser},
	}
}

// IsAuthenticated reports whether an identity was installed.
func (a AuthenticationContext) IsAuthenticated() bool {
	return a.Identity != ""
}

// HasAuthority reports whether authority was granted.
func (a AuthenticationContext) HasAuthority(authority Authority) bool {
	return slices.Contains(a.Authorities, authority)
}
