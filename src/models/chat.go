package models

import "encoding/json"

// MChatResult carries either a model reply or an error message, never both.
type MChatResult struct {
	Response string
	Err      string
}

// -----------------------------------------------------------------------------

func ChatResponse(text string) MChatResult {
	return MChatResult{Response: text}
}

// -----------------------------------------------------------------------------

func ChatError(err error) MChatResult {
	msg := "unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return MChatResult{Err: msg}
}

// -----------------------------------------------------------------------------

func (r MChatResult) IsError() bool {
	return r.Err != ""
}

// -----------------------------------------------------------------------------

// MarshalJSON emits {"error": ...} when Err is set, {"response": ...} otherwise.
func (r MChatResult) MarshalJSON() ([]byte, error) {
	if r.IsError() {
		return json.Marshal(map[string]string{"error": r.Err})
	}
	return json.Marshal(map[string]string{"response": r.Response})
}
