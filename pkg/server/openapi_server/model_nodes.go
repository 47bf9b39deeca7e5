// SPDX-License-Identifier: MIT

package openapi_server

type Nodes struct {
	Points []Point `json:"points"`
}
