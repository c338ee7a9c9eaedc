package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix prefixes the token value inside the Authorization header.
const BearerPrefix = "Bearer "

// Article publication statuses. The status field is a closed enum; anything
// else is rejected before submission.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)
