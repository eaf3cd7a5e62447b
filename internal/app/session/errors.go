package session

// Error is a client-side validation failure, surfaced inline near the
// offending control. It never corresponds to a network exchange.
type Error struct {
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}
