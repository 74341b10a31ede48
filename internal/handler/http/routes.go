package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route paths served by the hub.
const (
	PathSignup  = "/signup"
	PathSignin  = "/signin"
	PathGetUser = "/get"
	PathUpdate  = "/update"
	PathChat    = "/api/chat"
	PathVersion = "/api/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withCORS, h.withLogging, middleware.Recoverer, withGZip)

	// account endpoints
	router.Post(PathSignup, h.signup)
	router.Post(PathSignin, h.signin)
	router.Get(PathGetUser, h.getUser)
	router.Post(PathUpdate, h.updateUser)

	// assistant endpoints
	router.With(h.withChatRateLimit).Post(PathChat, h.chat)
	router.Get(PathVersion, h.getServerVersion)

	router.NotFound(endpointNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// Endpoints lists the served routes for the start-up banner.
func Endpoints() []string {
	return []string{
		"POST " + PathSignup,
		"POST " + PathSignin,
		"GET  " + PathGetUser + "?uid=",
		"POST " + PathUpdate,
		"POST " + PathChat,
		"GET  " + PathVersion,
	}
}
