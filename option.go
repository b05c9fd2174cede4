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
	"path/filepath"
	"runtime"
	"strconv"
)

// BuilderOption is a functional option for constructing a Builder.
type BuilderOption func(*Builder)

// WithLocation records where the status originates, e.g. "store.go:42".
// The location is metadata only and never becomes part of the message.
func WithLocation(loc string) BuilderOption {
	return func(b *Builder) { b.location = loc }
}

// WithCallerLocation records the location of a caller as "file.go:line".
// With skip 0 it is the function that calls WithCallerLocation; each
// increment moves one frame up the stack.
//
// The location is captured when WithCallerLocation is evaluated, not when
// the option is applied.
func WithCallerLocation(skip int) BuilderOption {
	loc := callerLocation(skip + 1)
	return WithLocation(loc)
}

// callerLocation formats the caller skip frames above callerLocation's
// caller. It returns "" when the frame is not available.
func callerLocation(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
