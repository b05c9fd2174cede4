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

package status

import (
	"context"
	"errors"

	"dirpx.dev/status/apis"
	"dirpx.dev/status/code"
	gstatus "google.golang.org/grpc/status"
)

// Status is the result of an operation: either OK or a failure with a
// canonical code and a message.
//
// The zero value is OK. A failure holds a pointer to an immutable
// representation; an OK status holds none, so "ok" and "no representation"
// are the same thing.
//
// Status is copied by value. Copies share the immutable representation, and
// the only mutator (SetErrorMessage) replaces it rather than writing through
// it, so changing one copy never changes another.
//
// Comparing two statuses with == compares representation identity: all OK
// statuses are equal, two independently built failures are not. Use Equal
// to compare code and message.
type Status struct {
	rep *rep
}

// rep is the failure representation. It is never modified after creation.
type rep struct {
	code    code.Code
	message string
}

// Ensure Status can travel as an error and is understood by gRPC.
var _ error = Status{}

var _ interface{ GRPCStatus() *gstatus.Status } = Status{}

// OK returns the success status.
func OK() Status {
	return Status{}
}

// New returns a failure with the given code and message.
//
// New(code.OK, msg) returns OK and drops msg: an OK status never has a
// representation.
func New(c code.Code, msg string) Status {
	if c == code.OK {
		return Status{}
	}
	return Status{rep: &rep{code: c, message: msg}}
}

// OK reports whether s is the success status.
func (s Status) OK() bool {
	return s.rep == nil
}

// Code returns code.OK for an OK status and the stored code otherwise.
func (s Status) Code() code.Code {
	if s.rep == nil {
		return code.OK
	}
	return s.rep.code
}

// Message returns "" for an OK status and the stored message otherwise.
func (s Status) Message() string {
	if s.rep == nil {
		return ""
	}
	return s.rep.message
}

// SetErrorMessage replaces the message of s.
//
// On an OK status this turns s into a failure with code.Unknown: a status
// with a message is never OK.
func (s *Status) SetErrorMessage(msg string) {
	c := code.Unknown
	if s.rep != nil {
		c = s.rep.code
	}
	s.rep = &rep{code: c, message: msg}
}

// IgnoreError marks a failure as deliberately discarded. It does nothing.
func (s Status) IgnoreError() {}

// String renders the status for humans and logs.
//
// The format is:
//
//	OK
//
// or, for failures:
//
//	<code label>: <message>
//
// e.g. "Not found: missing key". Codes outside the canonical set render as
// "Unknown code: <message>".
func (s Status) String() string {
	if s.rep == nil {
		return "OK"
	}
	return s.rep.code.String() + ": " + s.rep.message
}

// Error implements the built-in error interface. It returns String.
func (s Status) Error() string {
	return s.String()
}

// Err returns nil for an OK status and s otherwise.
func (s Status) Err() error {
	if s.rep == nil {
		return nil
	}
	return s
}

// Equal reports whether s and other have the same code and message.
func (s Status) Equal(other Status) bool {
	if s.rep == nil || other.rep == nil {
		return s.rep == other.rep
	}
	return s.rep.code == other.rep.code && s.rep.message == other.rep.message
}

// Is makes errors.Is match on codes: a Status target matches any error in
// the chain that is a Status with the same code. Messages are ignored.
func (s Status) Is(target error) bool {
	t, ok := target.(Status)
	if !ok {
		return false
	}
	return s.Code() == t.Code()
}

// GRPCStatus converts s to a gRPC status with the same code and message.
// It lets grpc/status.FromError and grpc/status.Code understand a returned
// Status directly.
func (s Status) GRPCStatus() *gstatus.Status {
	return gstatus.New(s.Code().GRPC(), s.Message())
}

// MarshalLog implements logr.Marshaler.
func (s Status) MarshalLog() any {
	return struct {
		Code    string `json:"code"`
		Message string `json:"message,omitempty"`
	}{
		Code:    s.Code().Name(),
		Message: s.Message(),
	}
}

// FromError converts an arbitrary error into a Status.
//
// The first matching rule wins:
//
//   - nil is OK;
//   - a Status anywhere in the chain is returned as-is, except that an OK
//     Status passed as a non-nil error becomes Unknown;
//   - an apis.CodedError in the chain keeps its code, with err.Error() as
//     message;
//   - a gRPC status error keeps its code and message;
//   - context.Canceled and context.DeadlineExceeded map to Cancelled and
//     DeadlineExceeded;
//   - anything else is Unknown with err.Error() as message.
//
// No cause is retained.
func FromError(err error) Status {
	if err == nil {
		return OK()
	}

	var st Status
	if errors.As(err, &st) {
		if st.OK() {
			// An OK Status used as an error value is still an error.
			return New(code.Unknown, err.Error())
		}
		return st
	}

	var ce apis.CodedError
	if errors.As(err, &ce) {
		return New(failureCode(ce.StatusCode()), err.Error())
	}

	if gs, ok := gstatus.FromError(err); ok {
		return New(failureCode(code.FromGRPC(gs.Code())), gs.Message())
	}

	switch {
	case errors.Is(err, context.Canceled):
		return New(code.Cancelled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return New(code.DeadlineExceeded, err.Error())
	}

	return New(code.Unknown, err.Error())
}

// CodeOf returns the code FromError would assign to err.
func CodeOf(err error) code.Code {
	return FromError(err).Code()
}

// First returns the first failure in sts, or OK when every status is OK.
func First(sts ...Status) Status {
	for _, st := range sts {
		if !st.OK() {
			return st
		}
	}
	return OK()
}

// failureCode keeps a non-nil error from turning into OK.
func failureCode(c code.Code) code.Code {
	if c == code.OK || !c.Known() {
		return code.Unknown
	}
	return c
}
