// Package server holds the configuration section for the HTTP server.
//
// The actual Fiber application is assembled in the start command; this package
// only carries the settings (port, API key) that the config loader binds.
package server
