// Package http implements the HTTP transport layer of the mission hub.
//
// It exposes the account endpoints (/signup, /signin, /get, /update), the
// assistant endpoints under /api and the middleware chain shared by all of
// them: trace ids, CORS, access logging, panic recovery, gzip and the chat
// rate limit.
//
// The account endpoints keep their historical contract: failures are
// reported inside a 200 body, and unparsable bodies are treated as empty
// objects instead of being rejected.
package http
