package graphqlerrors

import (
	"encoding/json"
)

// Response is the GraphQL response object for errors raised before any execution, e.g. syntax errors.
type Response struct {
	Errors RequestErrors `json:"errors,omitempty"`
	Data   any           `json:"data"`
}

func (r Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
