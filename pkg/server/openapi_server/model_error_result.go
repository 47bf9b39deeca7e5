// SPDX-License-Identifier: MIT

package openapi_server

type ErrorResult struct {
	Error string `json:"error"`
}
