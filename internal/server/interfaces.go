package server

import "context"

// Server runs every configured transport of the settings API.
type Server interface {
	// Run serves until ctx is cancelled or one transport fails, then shuts
	// all of them down. The error of the failed transport is returned.
	Run(ctx context.Context) error
}
