package wire

// Result is the response envelope shared by every remote endpoint.
// An errcode of zero is the only success signal; any other value is a
// remote-side failure and errmsg carries the server's explanation.
//
// Response types embed Result so the envelope fields survive in the
// typed record exactly as the server returned them.
type Result struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

// OK reports whether the envelope signals success.
func (r Result) OK() bool {
	return r.ErrCode == 0
}

// Err returns a *RemoteError for a failed envelope and nil otherwise.
func (r Result) Err() error {
	if r.ErrCode == 0 {
		return nil
	}
	return &RemoteError{Code: r.ErrCode, Message: r.ErrMsg}
}

// RemoteError is the single error kind produced by the remote service
// contract: a non-zero errcode with the server-supplied errmsg.
// Transport-level failures are never converted into RemoteError; they
// propagate unchanged from the HTTP client.
type RemoteError struct {
	Code    int
	Message string
}

// Error returns the server-supplied message verbatim. Callers matching
// on error text rely on this being exactly errmsg, nothing prepended.
func (e *RemoteError) Error() string {
	return e.Message
}
