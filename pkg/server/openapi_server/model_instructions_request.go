// SPDX-License-Identifier: MIT

package openapi_server

type InstructionsRequest struct {
	Building        string `json:"building"`
	Level           int    `json:"level"`
	DestinationRoom string `json:"destinationRoom,omitempty"`
}

// AssertInstructionsRequestRequired checks if the required fields are not zero-ed
func AssertInstructionsRequestRequired(obj InstructionsRequest) error {
	elements := map[string]interface{}{
		"building": obj.Building,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}
