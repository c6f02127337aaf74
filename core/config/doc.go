// Package config handles loading and binding of application configuration.
//
// Configuration is assembled from three layers, in increasing precedence:
//
//  1. Struct tag defaults ('default' tags on the partial config structs)
//  2. A .env file in the working directory (via godotenv)
//  3. Environment variables (SERVER_PORT -> server.port, DATA_DIR -> data.dir)
//
// Each subsystem owns its partial config (server.Config, logger.Config,
// dataset.Config); this package only composes and binds them.
package config
