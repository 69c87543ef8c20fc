// Package server wires and runs the application's transport server.
//
// It orchestrates the HTTP server lifecycle together with the background
// workers, including startup, signal handling, and graceful shutdown.
package server
