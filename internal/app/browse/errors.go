package browse

// Error is the browsing layer's user-facing failure. Code follows the error
// taxonomy:
//
//   - VALIDATION_ERROR: client-side, pre-network; no call was issued
//   - NOT_FOUND: the server answered 404; "no results" / "not found", never a
//     generic failure
//   - AUTH_FAILED: missing/expired credential on a protected call, surfaced as
//     a generic failure
//   - NETWORK_ERROR: anything else; retry is manual
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
