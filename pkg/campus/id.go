package campus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ID is the canonical identifier of points and rooms.
// Authored data mixes numeric and textual identifiers for the same value (7 and "7"),
// so every identifier is normalized once on ingestion and compared with == afterwards.
type ID string

// Normalize an identifier given as text.
// Integer text is rewritten without sign noise and leading zeros ("07", "+7", "7.0" and "7" become "7").
// Everything else is kept verbatim, so "1e3" and "1000" stay distinct.
func NormalizeID(raw string) ID {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if canonical, ok := canonicalInteger(s); ok {
		return ID(canonical)
	}
	return ID(s)
}

// Canonical form of integer text. A fraction is accepted if it only holds zeros.
// Works on the digits, so arbitrary long ids keep every digit.
func canonicalInteger(s string) (string, bool) {
	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	intPart, fraction, hasFraction := strings.Cut(s, ".")
	if !isDigits(intPart) || (hasFraction && (fraction == "" || strings.Trim(fraction, "0") != "")) {
		return "", false
	}
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		return "0", true
	}
	if negative {
		return "-" + intPart, true
	}
	return intPart, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = NormalizeID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier %s is neither string nor number: %w", data, err)
	}
	*id = NormalizeID(n.String())
	return nil
}

func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("identifier at line %d is not a scalar", value.Line)
	}
	if value.Tag == "!!null" {
		*id = ""
		return nil
	}
	*id = NormalizeID(value.Value)
	return nil
}
