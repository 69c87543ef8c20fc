// Package client implements the terminal client application runtime.
//
// It wires the API adapter and the chat UI into a single process
// lifecycle.
package client
