package enhance

import "encoding/json"

// Classification is the validator's verdict on a raw backend response body.
type Classification int

const (
	// WellFormed means the envelope can be processed record by record.
	WellFormed Classification = iota
	// ParseFailure means the body is not valid JSON.
	ParseFailure
	// MissingResourceList means the body parsed but carries no
	// enhanced_resources field (or is not an object at all).
	MissingResourceList
	// NotAnArray means enhanced_resources is present but is not an
	// ordered sequence.
	NotAnArray
)

// Cause is the human-readable failure cause embedded in fallback records
// for this classification.
func (c Classification) Cause() string {
	switch c {
	case ParseFailure:
		return "JSON parse error"
	case MissingResourceList, NotAnArray:
		return "Unexpected response structure"
	default:
		return ""
	}
}

func (c Classification) String() string {
	switch c {
	case WellFormed:
		return "well_formed"
	case ParseFailure:
		return "parse_failure"
	case MissingResourceList:
		return "missing_resource_list"
	case NotAnArray:
		return "not_an_array"
	default:
		return "unknown"
	}
}

// envelope is the validated backend response. Records are kept raw; element
// shape is the mapper's problem, not the validator's.
type envelope struct {
	success *bool
	records []json.RawMessage
}

// Success reports the backend-declared success flag, defaulting to true
// when absent.
func (e envelope) Success() bool {
	return e.success == nil || *e.success
}

// classifyResponse checks the two envelope invariants: the body must be a
// JSON object and its enhanced_resources field must be an array. Element
// shape is deliberately not inspected here.
func classifyResponse(body []byte) (envelope, Classification) {
	if !json.Valid(body) {
		return envelope{}, ParseFailure
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return envelope{}, MissingResourceList
	}

	listRaw, ok := top["enhanced_resources"]
	if !ok {
		return envelope{}, MissingResourceList
	}

	// Unmarshal accepts a JSON null into a slice, leaving it nil. A null
	// list is not an ordered sequence, so reject it explicitly.
	if string(listRaw) == "null" {
		return envelope{}, NotAnArray
	}
	var records []json.RawMessage
	if err := json.Unmarshal(listRaw, &records); err != nil {
		return envelope{}, NotAnArray
	}

	env := envelope{records: records}
	if successRaw, ok := top["success"]; ok {
		var success bool
		if err := json.Unmarshal(successRaw, &success); err == nil {
			env.success = &success
		}
	}
	return env, WellFormed
}
