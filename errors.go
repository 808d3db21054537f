package contribgif

import (
	"errors"
	"fmt"
)

// ErrGraphQL is returned when the API answers 200 but reports query errors.
var ErrGraphQL = errors.New("graphql query failed")

// ConfigError reports a missing or invalid setting. It is always returned
// before any network activity.
type ConfigError struct {
	Var    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Var, e.Reason)
}

// StatusError is a non-2xx response from the API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api responded %d", e.Code)
	}
	return fmt.Sprintf("api responded %d: %s", e.Code, e.Body)
}

// LookupError means the response JSON did not have the expected shape.
type LookupError struct {
	Path string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("response has no %q", e.Path)
}
