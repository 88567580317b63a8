package entity

// RequestError is a domain failure that already knows how it must surface to
// the caller: an HTTP status and the public message for that status. The
// response pipeline forwards both verbatim and never exposes anything else.
type RequestError struct {
	Status int
	Msg    string
}

// Error returns the public message.
func (e *RequestError) Error() string {
	return e.Msg
}
