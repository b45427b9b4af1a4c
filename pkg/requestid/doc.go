// Package requestid attaches a correlation identifier to every HTTP request.
//
// The middleware reuses a well-formed X-Request-ID header sent by the client
// and otherwise generates a UUID. The identifier is stored in the request
// context, echoed in the response header and, through LoggerExtractor, added
// to every log record written with that context.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	handler := requestid.Middleware(mux)
package requestid
