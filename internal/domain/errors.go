package domain

// ErrorKind classifies a failed fetch cycle. Every failure carries exactly
// one kind; the values double as metrics outcome labels.
type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid_input"
	KindNetworkError ErrorKind = "network_error"
	KindNotFound     ErrorKind = "not_found"
	KindUnauthorized ErrorKind = "unauthorized"
	KindServerError  ErrorKind = "server_error"
	KindParseError   ErrorKind = "parse_error"
)

// FetchError is the classified outcome of a failed fetch. Message is the
// user-facing text shown verbatim in the error region; Err retains the
// underlying cause for logs.
type FetchError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *FetchError) Error() string { return e.Message }

func (e *FetchError) Unwrap() error { return e.Err }
