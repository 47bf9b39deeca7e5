// SPDX-License-Identifier: MIT

package openapi_server

type GraphEdge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

type GraphSummary struct {
	Nodes       int         `json:"nodes"`
	Arcs        int         `json:"arcs"`
	Symmetric   bool        `json:"symmetric"`
	Fingerprint string      `json:"fingerprint"`
	CacheHits   int         `json:"cacheHits"`
	CacheMisses int         `json:"cacheMisses"`
	Edges       []GraphEdge `json:"edges"`
}
