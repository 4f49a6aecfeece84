// Package common contains shared constants, sentinel errors and small
// helpers used by both the diarykeeper client and server.
package common

// Metadata keys carried on outbound gRPC calls.
const (
	// AuthorizationHeaderName carries "Bearer <access token>" on DiaryService calls.
	AuthorizationHeaderName = "authorization"

	// APIKeyHeaderName carries the identity API key on IdentityService calls.
	APIKeyHeaderName = "x-api-key"

	// BearerPrefix precedes the access token in the authorization header.
	BearerPrefix = "Bearer "
)
