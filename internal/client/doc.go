// Package client implements the interactive client application runtime.
//
// It wires the review terminal UI, client services, and the background
// sync worker into a single process lifecycle.
package client
