// Package api exposes reference generation and validation over HTTP using a
// chi router.
//
// Endpoints:
//
//	GET  /references/{kind}?length=8&prefix=ORD-&count=3
//	     200 {"kind":"numeric","references":["ORD-40971233", ...]}
//	GET  /guid
//	     200 {"guid":"6ba7b810-9dad-41d1-80b4-00c04fd430c8"}
//	POST /references/validate  {"kind":"numeric","reference":"ORD-40971233","length":8,"prefix":"ORD-"}
//	     200 {"valid":true} or 422 {"valid":false,"error":"..."}
//	GET  /healthz, /readyz
//
// {kind} accepts any name understood by reference.ParseKind; unknown kinds
// return 404. Lengths and counts beyond RouterOptions limits return 400.
// Every response carries an X-Request-ID header; see RequestID.
package api
