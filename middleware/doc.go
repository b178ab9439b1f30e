// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request id comes from X-Request-ID or is a
fresh UUID, and is echoed in the response header.

# Rate Limiting

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	mux.HandleFunc("POST /rooms/{room}/polls", limiter.Middleware(handler))

One token bucket per X-User-ID, or per client IP when the header is
missing. Over the limit responds 429 with Retry-After.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

router.NewHandler applies it to every route.

Allows methods GET, POST, OPTIONS with headers Content-Type, X-User-ID,
X-Request-ID.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse and validate request bodies:

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := middleware.Validate(&req); err != nil {
		// err wraps models.ErrValidation
	}

# Identity

	requester := middleware.RequesterID(r)  // trimmed X-User-ID, or ""

	ip := middleware.GetClientIP(r)  // X-Forwarded-For, X-Real-IP, RemoteAddr
*/
package middleware
