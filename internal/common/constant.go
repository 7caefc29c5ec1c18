package common

// AuthorizationHeaderName is the HTTP header that carries the bearer token
// on protected requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the expected scheme prefix inside the authorization header.
const BearerPrefix = "Bearer "
