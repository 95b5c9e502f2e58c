// Package config holds the process-wide configuration slot (Store) and the
// settings file format used by the dynurl CLI and server.
package config
