// Package response implements the HTTP response contract of the update
// endpoint.
package response

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Response represents an API response.
type Response interface {
	Render(w http.ResponseWriter) error
	String() string
	Code() int
}

// Empty response.
type emptyResponse struct {
	code int
}

// NotFound returns a not found response (404) with an empty body.
func NotFound() Response {
	return &emptyResponse{http.StatusNotFound}
}

// NoContent returns a no content response (204) with an empty body.
func NoContent() Response {
	return &emptyResponse{http.StatusNoContent}
}

func (r *emptyResponse) Render(w http.ResponseWriter) error {
	w.WriteHeader(r.code)

	return nil
}

func (r *emptyResponse) String() string {
	return http.StatusText(r.code)
}

// Code returns the HTTP code.
func (r *emptyResponse) Code() int {
	return r.code
}

// Raw response, passing pre-serialized JSON through verbatim.
type rawResponse struct {
	body json.RawMessage
}

// RawJSON returns a success response (200) serving the provided JSON as-is.
func RawJSON(body json.RawMessage) Response {
	return &rawResponse{body: body}
}

func (r *rawResponse) Render(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(r.body)))
	w.WriteHeader(http.StatusOK)

	_, err := w.Write(r.body)
	if err != nil {
		return err
	}

	return nil
}

func (*rawResponse) String() string {
	return "success"
}

// Code returns the HTTP code.
func (*rawResponse) Code() int {
	return http.StatusOK
}

// Sync response, serializing the provided value as JSON.
type syncResponse struct {
	metadata any
}

// SyncResponse returns a success response (200) serializing the provided value.
func SyncResponse(metadata any) Response {
	return &syncResponse{metadata: metadata}
}

func (r *syncResponse) Render(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	err := enc.Encode(r.metadata)
	if err != nil {
		return err
	}

	return nil
}

func (*syncResponse) String() string {
	return "success"
}

// Code returns the HTTP code.
func (*syncResponse) Code() int {
	return http.StatusOK
}

// Error response.
type errorResponse struct {
	code    int
	msg     string
	headers map[string]string
}

// MethodNotAllowed returns a method not allowed response (405) advertising
// the allowed method.
func MethodNotAllowed(allowed string) Response {
	return &errorResponse{
		code:    http.StatusMethodNotAllowed,
		msg:     "Method Not Allowed",
		headers: map[string]string{"Allow": allowed},
	}
}

// InternalError returns an internal error response (500) with a generic
// message. Diagnostic detail never travels in the response body.
func InternalError() Response {
	return &errorResponse{
		code: http.StatusInternalServerError,
		msg:  "Internal Server Error",
	}
}

func (r *errorResponse) Render(w http.ResponseWriter) error {
	resp := struct {
		Error string `json:"error"`
	}{
		Error: r.msg,
	}

	for h, v := range r.headers {
		w.Header().Set(h, v)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(r.code)

	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		return err
	}

	return nil
}

func (r *errorResponse) String() string {
	return r.msg
}

// Code returns the HTTP code.
func (r *errorResponse) Code() int {
	return r.code
}
