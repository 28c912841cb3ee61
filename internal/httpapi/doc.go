// Package httpapi exposes the search engine over HTTP with gin.
//
// Routes, all under the router's base URL:
//
//	GET  /healthz             liveness probe
//	GET  /v1/algorithms       supported algorithm labels
//	POST /v1/search           run one algorithm, return the whole result
//	POST /v1/search/stream    run one algorithm, stream events as SSE
//	POST /v1/compare          run every algorithm on the same board
//
// Boards travel as text layouts (see grid.Parse). Every run gets a fresh
// UUID so log lines and stream events can be correlated.
package httpapi
