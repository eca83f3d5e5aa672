// Package server runs the HTTP settings API and the gRPC health endpoint as
// one unit: they start together, and the first one to fail or a cancelled
// context stops both.
package server
