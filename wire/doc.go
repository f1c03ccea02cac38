// Package wire implements the request/response contract of the remote
// suite service: one HTTP POST per call, the credential passed as a
// query parameter, a JSON body in, and a JSON body out carrying the
// {errcode, errmsg} envelope.
//
// wire owns envelope unwrapping and nothing else. It performs no
// retries, no backoff, and no schema validation beyond the errcode
// discriminator. Timeouts and cancellation belong to the injected
// *http.Client and the caller's context.
package wire
