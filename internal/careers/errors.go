package careers

// The three failure kinds a fetch cycle can surface. Each wraps its cause and
// is matched at the HTTP boundary with errors.As. None of them leaves a
// partial graph behind.

type MissingCredentialError struct {
	Err error
}

func (e *MissingCredentialError) Error() string {
	if e.Err != nil {
		return "completion credential unavailable: " + e.Err.Error()
	}
	return "completion credential unavailable"
}

func (e *MissingCredentialError) Unwrap() error { return e.Err }

type CompletionServiceError struct {
	Err error
}

func (e *CompletionServiceError) Error() string {
	if e.Err != nil {
		return "completion service call failed: " + e.Err.Error()
	}
	return "completion service call failed"
}

func (e *CompletionServiceError) Unwrap() error { return e.Err }

type MalformedGraphError struct {
	Err error
}

func (e *MalformedGraphError) Error() string {
	if e.Err != nil {
		return "completion response is not a career graph: " + e.Err.Error()
	}
	return "completion response is not a career graph"
}

func (e *MalformedGraphError) Unwrap() error { return e.Err }
