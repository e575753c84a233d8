// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Every request passes through panic recovery, request tracing, access
// logging, bearer authentication and the route policy before it is
// delegated to the service layer.
package http
