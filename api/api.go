// Package api embeds the OpenAPI document of the server browser.
package api

import _ "embed"

// Spec is the OpenAPI 3 document served by handlers and used for request validation.
//
//go:embed serverbrowser.openapi.yaml
var Spec []byte
