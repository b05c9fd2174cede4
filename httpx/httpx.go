/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package httpx writes statuses as HTTP responses.
//
// The response status comes from an apis.Mapper; the body is a
// google.rpc.Status encoded with protojson, the same shape gRPC-JSON
// gateways produce.
package httpx

import (
	"net/http"

	"dirpx.dev/status"
	"dirpx.dev/status/adapter"
	"dirpx.dev/status/apis"
	"dirpx.dev/status/logx"
	"dirpx.dev/status/mapper"
	"go.uber.org/zap"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

// ContentType is the media type of error bodies.
const ContentType = "application/json"

// Writer is a thin adapter that knows how to turn a Status into an HTTP
// response. The zero value is usable: it maps with mapper.Default() and
// does not log.
type Writer struct {
	// Mapper resolves the HTTP status. Nil means mapper.Default().
	Mapper apis.Mapper

	// Logger, when set, receives one entry per written failure at the level
	// suggested by logx.Level.
	Logger *zap.Logger

	// Domain, when set, adds a google.rpc.ErrorInfo detail naming the
	// canonical code.
	Domain string
}

// Write writes st to rw. Ok statuses write nothing, leaving the response to
// the caller.
func (w Writer) Write(rw http.ResponseWriter, st status.Status) {
	if st.OK() {
		return
	}

	m := w.Mapper
	if m == nil {
		m = mapper.Default()
	}
	code := m.HTTPStatus(st.Code())

	if w.Logger != nil {
		if ce := w.Logger.Check(logx.Level(st.Code()), "http request failed"); ce != nil {
			ce.Write(zap.Int("http.status", code), logx.Field("status", st))
		}
	}

	// protojson keeps field names and well-known types in their canonical
	// JSON form.
	b, err := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(w.body(st))
	if err != nil {
		// Send the status code without a body.
		if w.Logger != nil {
			w.Logger.Error("http error body not encoded", zap.Error(err), logx.Field("status", st))
		}
		rw.WriteHeader(code)
		return
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.Header().Set("X-Content-Type-Options", "nosniff")
	rw.WriteHeader(code)
	_, _ = rw.Write(b)
}

// WriteError converts err with status.FromError and writes it. A nil error
// writes nothing.
func (w Writer) WriteError(rw http.ResponseWriter, err error) {
	w.Write(rw, status.FromError(err))
}

// Handler adapts an error-returning handler: a returned error is written
// with WriteError.
func (w Writer) Handler(h func(http.ResponseWriter, *http.Request) error) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.WriteError(rw, err)
		}
	})
}

func (w Writer) body(st status.Status) *spb.Status {
	if w.Domain == "" {
		return adapter.ToProto(st)
	}
	p, err := adapter.WithDetails(st, w.Domain)
	if err != nil {
		return adapter.ToProto(st)
	}
	return p
}
