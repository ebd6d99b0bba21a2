// Package api embeds the OpenAPI contract served by the HTTP adapter.
package api

import _ "embed"

//go:embed openapi.yml
var OpenAPI []byte
