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

	"dirpx.dev/status/code"
)

// The canonical constructors (NotFoundError, ...) and predicates
// (IsNotFound, ...) live in canonical_gen.go, one pair per non-OK code.
//go:generate go run ./internal/gen/canonical -out canonical_gen.go

// Errorf returns a failure with the given code and a formatted message.
// It is the generic form of the canonical constructors.
func Errorf(c code.Code, format string, args ...any) Status {
	return New(c, fmt.Sprintf(format, args...))
}
