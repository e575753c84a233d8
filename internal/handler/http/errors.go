// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrMalformedRequestBody is reported when a request body cannot be decoded
// into credentials or lacks a username or password.
var ErrMalformedRequestBody = errors.New("invalid request body")
