// Package errs defines the error shapes returned to API clients.
//
// Every failure that reaches the HTTP boundary is rendered either as an
// HTTPError (status, machine code, message and optional field errors) or,
// for the route guard, as the bare Message body.
package errs
