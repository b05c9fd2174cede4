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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
)

// Code is a canonical status code.
//
// It is defined as a separate type (not just an integer) so that other
// packages can explicitly declare which values they expect and to avoid
// accidental mixing with HTTP statuses or process exit codes.
type Code uint32

var (
	// ErrCodeInvalid is returned when a value cannot be parsed or validated
	// as a canonical code.
	ErrCodeInvalid = errors.New("status: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// All returns every known code in numeric order, OK first.
// The returned slice is a fresh copy and may be modified by the caller.
func All() []Code {
	out := make([]Code, 0, maxCode)
	for c := Code(0); c < maxCode; c++ {
		out = append(out, c)
	}
	return out
}

// Known reports whether c is one of the canonical codes.
func (c Code) Known() bool {
	return c < maxCode
}

// String returns the human-readable label of the code, e.g. "Not found".
// Values outside the canonical set render as "Unknown code".
func (c Code) String() string {
	if !c.Known() {
		return "Unknown code"
	}
	return labels[c]
}

// Name returns the canonical identifier of the code, e.g. "NOT_FOUND".
// Values outside the canonical set render as "CODE(<n>)".
func (c Code) Name() string {
	if !c.Known() {
		return "CODE(" + strconv.FormatUint(uint64(c), 10) + ")"
	}
	return names[c]
}

// GRPC returns the gRPC code with the same meaning. The canonical codes share
// their numbering with gRPC, so this is a plain conversion.
func (c Code) GRPC() codes.Code {
	if !c.Known() {
		return codes.Unknown
	}
	return codes.Code(c)
}

// FromGRPC converts a gRPC code to a canonical code. gRPC values outside the
// canonical set become Unknown.
func FromGRPC(gc codes.Code) Code {
	c := Code(gc)
	if !c.Known() {
		return Unknown
	}
	return c
}

// Parse takes a user-provided string, normalizes it and resolves it to a
// code.
//
// Accepted forms:
//
//   - canonical identifiers: "NOT_FOUND", "not-found";
//   - human labels: "Not found", "Invalid argument";
//   - the "CANCELED" spelling used by gRPC;
//   - decimal values of known codes: "5".
func Parse(s string) (Code, error) {
	n := Normalize(s)
	if n == "" {
		return OK, ErrCodeInvalid
	}
	for c, name := range names {
		if name == n {
			return Code(c), nil
		}
	}
	if c, ok := aliases[n]; ok {
		return c, nil
	}
	if v, err := strconv.ParseUint(n, 10, 32); err == nil && Code(v).Known() {
		return Code(v), nil
	}
	return OK, ErrCodeInvalid
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// package-level var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings an arbitrary string closer to the canonical identifier
// form:
//
//   - trims surrounding spaces;
//   - upper-cases the value;
//   - replaces '-' and ' ' with '_'.
//
// It does NOT guarantee that the result is a known code; use Parse for that.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	return s
}

// Validate checks whether c is one of the canonical codes.
func Validate(c Code) error {
	if !c.Known() {
		return ErrCodeInvalid
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical identifier.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(names[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It accepts every form Parse accepts.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
