package http

// Messages returned in response bodies.
const (
	msgUserAlreadyExists    = "user already exists"
	msgSignupSucceeded      = "signup succeeded"
	msgSigninSucceeded      = "signin succeeded"
	msgWrongCredentials     = "wrong user id or password"
	msgUserDoesNotExist     = "user does not exist"
	msgUpdateSucceeded      = "update succeeded"
	msgEndpointDoesNotExist = "endpoint does not exist"
	msgInvalidRequest       = "Invalid request"
	msgTooManyRequests      = "too many requests"
	msgAIServiceUnavailable = "AI service unavailable"
	msgInternalServerError  = "internal server error"
)
