package common

// SessionTokenHeaderName is the gRPC metadata key used to carry the
// session token on requests.
const SessionTokenHeaderName = "session_token"

// LoginEntryPoint is where unauthenticated callers are sent.
const LoginEntryPoint = "/teamboard.v1.TeamBoard/Login"
