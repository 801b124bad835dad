/* models.go
 * This file contains the response envelope and error types used by the external package when
 * fetching data from the Codeforces API
 */

package external

import (
	"encoding/json"
	"errors"
	"fmt"
)

// envelope is the wrapper every Codeforces API response arrives in. Status is
// "OK" or "FAILED"; Comment is only set on failure; Result is left raw so each
// endpoint can decode its own list type.
type envelope struct {
	Status  string          `json:"status"`
	Comment string          `json:"comment"`
	Result  json.RawMessage `json:"result"`
}

const statusOK = "OK"

// ErrUserNotFound is returned when a requested handle has no matching account.
// Callers should check with errors.Is.
var ErrUserNotFound = errors.New("user not found")

// UpstreamError reports a FAILED envelope for a reason other than a missing
// user. Comment carries the upstream message when one was provided.
type UpstreamError struct {
	Method  string
	Comment string
}

func (e *UpstreamError) Error() string {
	if e.Comment == "" {
		return fmt.Sprintf("codeforces %s request failed", e.Method)
	}
	return fmt.Sprintf("codeforces %s request failed: %s", e.Method, e.Comment)
}
