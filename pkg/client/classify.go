package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// classify maps a raw (status, body) pair onto exactly one outcome: a parsed
// JSON payload on 2xx, or one case of the error taxonomy. This is the only
// place raw status codes are interpreted.
func classify(status int, body []byte) (json.RawMessage, *Error) {
	switch {
	case status >= 200 && status <= 299:
		if !json.Valid(body) {
			return nil, parseError(fmt.Sprintf("status %d body is not valid JSON", status), nil)
		}
		return json.RawMessage(body), nil
	case status == 400:
		return nil, invalidParamsStatus(string(body))
	case status == 401:
		return nil, authError()
	case status == 402:
		return nil, paymentError()
	default:
		return nil, serverError(status, string(body))
	}
}

// collection locates the array payload inside a success body. List endpoints
// answer either {"<field>": [...]} or a bare top-level array; anything else
// is a parse failure rather than a silent empty result, since an empty
// fallback would mask genuine upstream errors.
func (c *Client) collection(raw json.RawMessage, field string) (json.RawMessage, *Error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		c.logger.Debug().
			Str("field", field).
			Msg("Response is a bare array, skipping named field lookup")
		return trimmed, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, parseError(fmt.Sprintf("expected object with %q field or bare array", field), err)
	}

	arr, ok := envelope[field]
	if !ok {
		c.logger.Warn().
			Str("field", field).
			Msg("Response object is missing the expected collection field")
		return nil, parseError(fmt.Sprintf("response has neither a %q field nor a top-level array", field), nil)
	}

	arrTrimmed := bytes.TrimSpace(arr)
	if len(arrTrimmed) == 0 || arrTrimmed[0] != '[' {
		return nil, parseError(fmt.Sprintf("field %q is not an array", field), nil)
	}
	return arrTrimmed, nil
}

// decodeList extracts and decodes a typed collection from a success body.
func decodeList[T any](c *Client, raw json.RawMessage, field string) ([]T, error) {
	arr, cerr := c.collection(raw, field)
	if cerr != nil {
		return nil, cerr
	}
	var items []T
	if err := json.Unmarshal(arr, &items); err != nil {
		return nil, parseError(fmt.Sprintf("decode %q collection", field), err)
	}
	return items, nil
}

// decodeDetail decodes a whole success body into one entity.
func decodeDetail[T any](raw json.RawMessage, what string) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, parseError(fmt.Sprintf("decode %s detail", what), err)
	}
	return out, nil
}
