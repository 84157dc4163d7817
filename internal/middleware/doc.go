// Package middleware provides HTTP middleware for the Waypost API.
//
// Middlewares compose with Chain, which applies them in the order given:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(origins),
//	)
//
// Auth validates Bearer tokens and stores the caller's identity in the
// request context for handlers to read with GetUserID / GetUserEmail.
package middleware
