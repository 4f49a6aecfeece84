// Package client is the transport layer between the terminal client and the
// diarykeeper backend.
//
// Client describes the Diary API (entries and AI requests) and AuthClient the
// identity service. GRPCClient implements both over a single gRPC
// connection using the JSON codec from internal/proto.
//
// Diary API calls carry the bearer token obtained from the configured
// TokenSource (normally the session manager); identity calls carry the
// identity API key instead. Every call is bounded by the configured request
// timeout.
//
// Failures are reported as *common.Error values whose kind is one of the
// common sentinels (ErrNotFound, ErrUnauthorized, ErrNetwork, ErrValidation,
// ErrServer). The server's status message is kept as the detail so callers
// can show it verbatim.
package client
