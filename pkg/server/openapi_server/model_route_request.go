// SPDX-License-Identifier: MIT

package openapi_server

type RouteRequest struct {
	From            string `json:"from"`
	To              string `json:"to,omitempty"`
	DestinationRoom string `json:"destinationRoom,omitempty"`
}

// AssertRouteRequestRequired checks if the required fields are not zero-ed
func AssertRouteRequestRequired(obj RouteRequest) error {
	elements := map[string]interface{}{
		"from": obj.From,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	if IsZeroValue(obj.To) && IsZeroValue(obj.DestinationRoom) {
		return &RequiredError{Field: "to"}
	}
	return nil
}
