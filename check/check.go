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

// Package check asserts that statuses are (or are not) ok.
//
// A violated assertion is a programming error: it is logged and the process
// aborts, by default with a panic. Use it where a failure cannot be handled,
// such as in initialization code or after an operation that must not fail.
package check

import (
	"fmt"

	"dirpx.dev/status"
	"dirpx.dev/status/code"
	"dirpx.dev/status/logx"
	"go.uber.org/zap"
)

// Option configures a Checker.
type Option func(*Checker)

// WithLogger logs every violation to l before aborting. A nil l disables
// logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Checker) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}

// WithAbort replaces the abort action. The default panics with msg.
func WithAbort(abort func(msg string)) Option {
	return func(c *Checker) { c.abort = abort }
}

// Checker runs assertions on statuses.
type Checker struct {
	logger *zap.Logger
	abort  func(msg string)
}

// New returns a Checker. Without options it does not log and panics on
// violation.
func New(opts ...Option) *Checker {
	c := &Checker{
		logger: zap.NewNop(),
		abort:  func(msg string) { panic(msg) },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OK aborts unless st is ok.
func (c *Checker) OK(st status.Status) {
	if !st.OK() {
		c.fail(2, "expected ok status", st)
	}
}

// NotOK aborts if st is ok.
func (c *Checker) NotOK(st status.Status) {
	if st.OK() {
		c.fail(2, "expected failure status", st)
	}
}

// fail reports a violation. skip counts frames above fail: 2 is the caller
// of an assertion method.
func (c *Checker) fail(skip int, what string, st status.Status) {
	loc := status.NewBuilder(code.Internal, status.WithCallerLocation(skip)).Location()
	msg := fmt.Sprintf("check failed: %s", st)
	if loc != "" {
		msg = fmt.Sprintf("check failed at %s: %s", loc, st)
	}
	c.logger.Error(what, zap.String("location", loc), logx.Field("status", st))
	c.abort(msg)
}

var std = New()

// OK aborts unless st is ok, using the default Checker.
func OK(st status.Status) {
	if !st.OK() {
		std.fail(2, "expected ok status", st)
	}
}

// NotOK aborts if st is ok, using the default Checker.
func NotOK(st status.Status) {
	if st.OK() {
		std.fail(2, "expected failure status", st)
	}
}
