// Package server wires and runs the application's transport servers.
//
// It binds the HTTP router and the gRPC server built by the handler layer,
// runs them until SIGINT, SIGTERM or SIGQUIT, and shuts both down
// gracefully.
package server
