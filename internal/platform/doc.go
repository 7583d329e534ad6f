package platform

// Package platform contains integration with the remote catalog service:
// the HTTP client that fetches products and the wire-format mapping.
