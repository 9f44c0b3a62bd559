package common

// AuthorizationHeaderName is the HTTP header carrying the bearer credential
// on authenticated requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the scheme prefix expected in the authorization header.
const BearerPrefix = "Bearer "

// SharedKeySize is the required length, in bytes, of the pre-shared
// envelope key (AES-256).
const SharedKeySize = 32
