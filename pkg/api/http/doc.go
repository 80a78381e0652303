// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Greeting with the deployed version
//   - Health checks
//   - Prometheus metrics
package http
