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

package httpx

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/status"
	"dirpx.dev/status/code"
	"dirpx.dev/status/mapper"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/testing/protocmp"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) *spb.Status {
	t.Helper()
	b, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var p spb.Status
	if err := protojson.Unmarshal(b, &p); err != nil {
		t.Fatalf("body %q is not a google.rpc.Status: %v", b, err)
	}
	return &p
}

func TestWrite_Failure(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, status.NotFoundError("no user 7"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != ContentType {
		t.Fatalf("Content-Type = %q", ct)
	}
	want := &spb.Status{Code: int32(code.NotFound), Message: "no user 7"}
	if diff := cmp.Diff(want, decode(t, rec), protocmp.Transform()); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_OKWritesNothing(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, status.OK())
	Writer{}.WriteError(rec, nil)

	if rec.Body.Len() != 0 || len(rec.Header()) != 0 {
		t.Fatalf("ok status wrote a response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestWrite_UsesMapper(t *testing.T) {
	m, err := mapper.New(mapper.WithHTTPOverride(code.Cancelled, http.StatusRequestTimeout))
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	rec := httptest.NewRecorder()
	Writer{Mapper: m}.Write(rec, status.CancelledError("client went away"))

	if rec.Code != http.StatusRequestTimeout {
		t.Fatalf("status = %d, want 408", rec.Code)
	}
}

func TestWrite_Domain(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{Domain: "users.example.com"}.Write(rec, status.PermissionDeniedError("admin only"))

	p := decode(t, rec)
	if len(p.GetDetails()) != 1 {
		t.Fatalf("got %d details, want 1", len(p.GetDetails()))
	}
	var info errdetails.ErrorInfo
	if err := p.GetDetails()[0].UnmarshalTo(&info); err != nil {
		t.Fatalf("UnmarshalTo: %v", err)
	}
	if info.GetReason() != "PERMISSION_DENIED" || info.GetDomain() != "users.example.com" {
		t.Fatalf("ErrorInfo = %v", &info)
	}
}

func TestWriteError_ForeignError(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.WriteError(rec, errors.New("boom"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if p := decode(t, rec); p.GetCode() != int32(code.Unknown) || p.GetMessage() != "boom" {
		t.Fatalf("body = %v", p)
	}
}

func TestWrite_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	w := Writer{Logger: zap.New(core)}

	w.Write(httptest.NewRecorder(), status.UnavailableError("draining"))

	if logs.Len() != 1 {
		t.Fatalf("got %d entries, want 1", logs.Len())
	}
	e := logs.All()[0]
	if e.Level != zapcore.WarnLevel {
		t.Fatalf("Level = %v, want warn", e.Level)
	}
	if got := e.ContextMap()["http.status"]; got != int64(http.StatusServiceUnavailable) {
		t.Fatalf("http.status = %v (%T)", got, got)
	}
}

func TestHandler(t *testing.T) {
	h := Writer{}.Handler(func(rw http.ResponseWriter, r *http.Request) error {
		if r.URL.Query().Get("id") == "" {
			return status.InvalidArgumentError("id is required")
		}
		rw.WriteHeader(http.StatusNoContent)
		return nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users?id=7", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestHandler_OKStatusAsErrorIsAFailure(t *testing.T) {
	h := Writer{}.Handler(func(http.ResponseWriter, *http.Request) error {
		return status.OK()
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if p := decode(t, rec); p.GetCode() != int32(code.Unknown) {
		t.Fatalf("body = %v", p)
	}
}

func TestWrite_UnencodableBody(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	rec := httptest.NewRecorder()

	// protojson rejects invalid UTF-8 in string fields.
	Writer{Logger: zap.New(core)}.Write(rec, status.NotFoundError("bad \xff name"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if rec.Body.Len() != 0 || rec.Header().Get("Content-Type") != "" {
		t.Fatalf("no body expected, got %q (%q)", rec.Body.String(), rec.Header().Get("Content-Type"))
	}
	entries := logs.FilterMessage("http error body not encoded").All()
	if len(entries) != 1 {
		t.Fatalf("got %d encode errors logged, want 1", len(entries))
	}
}
