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

package mapper

import (
	"net/http"

	"dirpx.dev/status/code"
	"google.golang.org/grpc/codes"
)

// statusClientClosedRequest is the non-standard but widely used (nginx)
// "client closed request" status.
const statusClientClosedRequest = 499

// defaultHTTP defines the library's built-in HTTP mappings for the canonical
// codes. These are only defaults: callers are expected to adjust them at the
// boundary where HTTP is actually produced (REST gateway, HTTP handler, etc.).
var defaultHTTP = map[code.Code]int{
	code.OK: http.StatusOK,

	// 5xx — server / dependency / transient issues.
	code.Unknown:          http.StatusInternalServerError, // No better classification; do not expose internals.
	code.Internal:         http.StatusInternalServerError, // Broken invariant.
	code.DataLoss:         http.StatusInternalServerError, // Unrecoverable corruption.
	code.Unimplemented:    http.StatusNotImplemented,      // Operation not supported by this server.
	code.Unavailable:      http.StatusServiceUnavailable,  // Retry the same call later.
	code.DeadlineExceeded: http.StatusGatewayTimeout,      // Time budget exceeded.

	// 4xx — client / state issues.
	code.Cancelled:          statusClientClosedRequest,     // Caller went away; integrators may switch to 408.
	code.InvalidArgument:    http.StatusBadRequest,         // Malformed input regardless of state.
	code.FailedPrecondition: http.StatusBadRequest,         // System not in the required state.
	code.OutOfRange:         http.StatusBadRequest,         // Past the valid range.
	code.NotFound:           http.StatusNotFound,           // Entity does not exist (or is not visible).
	code.AlreadyExists:      http.StatusConflict,           // Creation clash.
	code.Aborted:            http.StatusConflict,           // Concurrency conflict; retry at a higher level.
	code.Unauthenticated:    http.StatusUnauthorized,       // No valid credentials.
	code.PermissionDenied:   http.StatusForbidden,          // Identified but not allowed.
	code.ResourceExhausted:  http.StatusTooManyRequests,    // Quota or rate limit.
}

// defaultGRPC maps every canonical code to the gRPC code with the same
// number. Callers may override entries at the transport edge, e.g. to hide
// DataLoss behind Internal.
var defaultGRPC = func() map[code.Code]codes.Code {
	m := make(map[code.Code]codes.Code, len(code.All()))
	for _, c := range code.All() {
		m[c] = c.GRPC()
	}
	return m
}()
