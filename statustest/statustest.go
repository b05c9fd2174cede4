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

// Package statustest provides test assertions for statuses, built on
// testify.
//
// Require* helpers stop the test on failure; Assert* helpers report and
// return whether the assertion held.
package statustest

import (
	"fmt"

	"dirpx.dev/status"
	"dirpx.dev/status/code"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertOK asserts that err converts to an ok status.
func AssertOK(t assert.TestingT, err error, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if st := status.FromError(err); !st.OK() {
		return assert.Fail(t, fmt.Sprintf("expected ok status, got %q", st), msgAndArgs...)
	}
	return true
}

// AssertCode asserts that err converts to a status with code want.
func AssertCode(t assert.TestingT, want code.Code, err error, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	st := status.FromError(err)
	return assert.Equal(t, want.Name(), st.Code().Name(), msgAndArgs...)
}

// AssertMessage asserts that err converts to a status with code want and
// message msg.
func AssertMessage(t assert.TestingT, want code.Code, msg string, err error, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	st := status.FromError(err)
	return assert.Equal(t, status.New(want, msg).String(), st.String(), msgAndArgs...)
}

// RequireOK is AssertOK that stops the test on failure.
func RequireOK(t require.TestingT, err error, msgAndArgs ...any) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !AssertOK(t, err, msgAndArgs...) {
		t.FailNow()
	}
}

// RequireNotOK stops the test unless err converts to a failure status.
func RequireNotOK(t require.TestingT, err error, msgAndArgs ...any) status.Status {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	st := status.FromError(err)
	if st.OK() {
		require.Fail(t, "expected failure status, got OK", msgAndArgs...)
	}
	return st
}

// RequireCode is AssertCode that stops the test on failure.
func RequireCode(t require.TestingT, want code.Code, err error, msgAndArgs ...any) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !AssertCode(t, want, err, msgAndArgs...) {
		t.FailNow()
	}
}
