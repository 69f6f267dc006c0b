package scan

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Request is one fully-specified scan invocation. Every external wire
// shape is adapted into this form before any classification runs;
// policy code never sees the original shape.
type Request struct {
	Path   string
	Mode   Mode
	Params Params
}

// extensionField accepts extensions either as a comma-separated string
// or as an already-split array, the two shapes callers actually send.
type extensionField []string

func (e *extensionField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*e = extensionField(SplitExtensions(s))
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*e = extensionField(list)
	return nil
}

type jsonRequest struct {
	Path       string         `json:"path"`
	ScanType   string         `json:"scan_type"`
	MinSizeMB  *float64       `json:"min_size_mb"`
	Extensions extensionField `json:"extensions"`
	AgeDays    *int           `json:"age_days"`
	Limit      *int           `json:"limit"`
}

// RequestFromJSON adapts a JSON object request.
func RequestFromJSON(data []byte) (Request, error) {
	var raw jsonRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		return Request{}, newInvalidParameter("request", "malformed JSON: "+err.Error())
	}

	req := Request{
		Path:   raw.Path,
		Mode:   ModeLargeFiles,
		Params: DefaultParams(),
	}

	if raw.ScanType != "" {
		mode, err := ParseMode(raw.ScanType)
		if err != nil {
			return Request{}, err
		}
		req.Mode = mode
	}
	if raw.MinSizeMB != nil {
		req.Params.MinSizeMB = *raw.MinSizeMB
	}
	if raw.AgeDays != nil {
		req.Params.AgeDays = *raw.AgeDays
	}
	if raw.Limit != nil {
		req.Params.Limit = *raw.Limit
	}
	req.Params.Extensions = []string(raw.Extensions)

	return req, nil
}

// RequestFromKeyValues adapts a flat key/value request, the shape a
// keyword-style caller produces.
func RequestFromKeyValues(kv map[string]string) (Request, error) {
	req := Request{
		Path:   kv["path"],
		Mode:   ModeLargeFiles,
		Params: DefaultParams(),
	}

	if s, ok := kv["scan_type"]; ok && s != "" {
		mode, err := ParseMode(s)
		if err != nil {
			return Request{}, err
		}
		req.Mode = mode
	}
	if s, ok := kv["min_size_mb"]; ok && s != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Request{}, newInvalidParameter("min_size_mb", "not a number: "+s)
		}
		req.Params.MinSizeMB = v
	}
	if s, ok := kv["age_days"]; ok && s != "" {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return Request{}, newInvalidParameter("age_days", "not a number: "+s)
		}
		req.Params.AgeDays = v
	}
	if s, ok := kv["limit"]; ok && s != "" {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return Request{}, newInvalidParameter("limit", "not a number: "+s)
		}
		req.Params.Limit = v
	}
	req.Params.Extensions = SplitExtensions(kv["extensions"])

	return req, nil
}

// RequestFromDelimited adapts the comma-delimited fallback shape:
// path, extension, mode. Later fields are optional and only a single
// extension token fits this shape; callers needing more use JSON.
func RequestFromDelimited(s string) (Request, error) {
	req := Request{
		Mode:   ModeLargeFiles,
		Params: DefaultParams(),
	}

	parts := strings.Split(s, ",")
	if len(parts) > 0 {
		req.Path = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		req.Params.Extensions = []string{parts[1]}
	}
	if len(parts) > 2 {
		modeStr := strings.TrimSpace(parts[2])
		if modeStr != "" {
			mode, err := ParseMode(modeStr)
			if err != nil {
				return Request{}, err
			}
			req.Mode = mode
		}
	}

	return req, nil
}

// ParseRequest adapts a free-form request string: JSON objects are
// parsed as such, anything else falls back to the delimited form.
func ParseRequest(s string) (Request, error) {
	if strings.HasPrefix(strings.TrimSpace(s), "{") {
		return RequestFromJSON([]byte(s))
	}
	return RequestFromDelimited(s)
}
