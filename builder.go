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
	"fmt"
	"strings"

	"dirpx.dev/status/code"
)

// Builder assembles the message of a failure piece by piece.
//
// Usage:
//
//	return status.NewBuilder(code.Internal).
//	    Append("a=", a).
//	    Append(" b=", b).
//	    Status()
//
// The code is fixed at construction. A Builder is a one-shot, expression
// scoped value and is not safe for concurrent use.
type Builder struct {
	code     code.Code
	location string
	buf      strings.Builder
}

// NewBuilder returns an empty Builder for the given code and applies all
// provided options in order.
func NewBuilder(c code.Code, opts ...BuilderOption) *Builder {
	b := &Builder{code: c}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Append writes the default text form (as fmt.Print would) of each value to
// the message. No separators are inserted between values.
func (b *Builder) Append(vals ...any) *Builder {
	for _, v := range vals {
		_, _ = fmt.Fprint(&b.buf, v)
	}
	return b
}

// Appendf writes a formatted piece to the message.
func (b *Builder) Appendf(format string, args ...any) *Builder {
	_, _ = fmt.Fprintf(&b.buf, format, args...)
	return b
}

// Code returns the code the Builder was created with.
func (b *Builder) Code() code.Code { return b.code }

// Location returns the recorded origin, or "" if none was recorded.
func (b *Builder) Location() string { return b.location }

// Message returns the message accumulated so far.
func (b *Builder) Message() string { return b.buf.String() }

// Status returns New(code, message). It can be called any number of times
// and does not reset the Builder.
func (b *Builder) Status() Status {
	return New(b.code, b.buf.String())
}

// Err is shorthand for b.Status().Err().
func (b *Builder) Err() error {
	return b.Status().Err()
}

// Check returns OK when cond holds. Otherwise it returns an Internal failure
// naming the caller location and the failed expression, followed by msg:
//
//	if st := status.Check(n > 0, "n > 0", "empty batch"); !st.OK() {
//	    return st
//	}
//
// renders as "Internal: batch.go:17 [n > 0] empty batch".
func Check(cond bool, expr string, msg ...any) Status {
	if cond {
		return OK()
	}
	b := NewBuilder(code.Internal, WithCallerLocation(1))
	return b.Append(b.Location(), " [", expr, "] ").Append(msg...).Status()
}
