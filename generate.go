// Package jewelstore holds code generation directives for the API server.
package jewelstore

//go:generate go run github.com/ogen-go/ogen/cmd/ogen --target gen/oas --package oas --clean api/openapi.yaml
