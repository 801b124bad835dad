/* models.go
 * Contains the configuration and server structs plus the JSON response shapes for the web package
 */

package web

import (
	"cf-faceoff/api/api"
	"cf-faceoff/api/shared"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that serves the dashboard JSON API
type Server struct {
	api *api.API
}

// errorResponse is the body returned for every non-2xx response
type errorResponse struct {
	Error string `json:"error"`
}

// tagMatch reports the result of an optional ?tag= fuzzy lookup on the stats
// endpoint
type tagMatch struct {
	Query string `json:"query"`
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// statsResponse wraps UserStats with the optional tag lookup result
type statsResponse struct {
	*shared.UserStats
	TagMatch *tagMatch `json:"tagMatch,omitempty"`
}
