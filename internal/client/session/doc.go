// Package session owns the client's authentication state.
//
// A Manager subscribes once to a Provider and exposes the current Session,
// a loading flag that is true only until the first provider notification,
// and a token source for the Diary API client. Sign-in, sign-up and
// sign-out are delegated to the provider; the manager learns their effect
// only from the notification that follows.
//
// Two providers exist. MockProvider is selected when no identity API key is
// configured: it starts signed in as a fixed development user, delivered
// after a short delay measured on an injectable clock, and accepts any
// credentials. RemoteProvider talks to the identity service, reads the
// principal from the access token's claims, renews the access token shortly
// before it expires and persists the refresh token in a TokenStore.
//
// Listeners are notified in subscription order. Each round delivers to the
// listeners registered when it started, so unsubscribing from inside a
// listener does not affect the round in progress.
package session
