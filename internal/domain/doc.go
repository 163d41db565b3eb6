// Package domain holds the error vocabulary shared by the rendering core and its callers.
// Keep this package free of transport (HTTP) and infrastructure (Redis, files) concerns.
package domain
