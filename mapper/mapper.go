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
	"fmt"
	"strings"

	"dirpx.dev/status/apis"
	"dirpx.dev/status/code"
	"go.uber.org/multierr"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance: no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, fallbacks).
//  3. Validate every rule; all problems are reported together.
//  4. Freeze all maps into immutable copies (fresh allocations).
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}

	// (2)
	for _, opt := range opts {
		opt(b)
	}

	// (3)
	if err := b.validate(); err != nil {
		return nil, err
	}

	// (4)
	return &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// Default returns a mapper holding only the library defaults.
func Default() apis.Mapper {
	m, err := New()
	if err != nil {
		// Library defaults are static and always valid.
		panic(fmt.Sprintf("mapper: invalid library defaults: %v", err))
	}
	return m
}

// mapper combines per-code defaults and per-code exact overrides.
// Lookups are two map reads and safe for concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given canonical code.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a given canonical code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over defaults.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// fallbackHTTP is used for codes outside the canonical set.
	fallbackHTTP int

	// fallbackGRPC is used for codes outside the canonical set.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. per-code default (library or user overridden);
//  3. fallback (500 unless configured).
func (m *mapper) HTTPStatus(c code.Code) int {
	v, _ := m.resolveHTTP(c)
	return v
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	v, _ := m.resolveGRPC(c)
	return v
}

// Resolve resolves both HTTP and gRPC using the same input.
func (m *mapper) Resolve(c code.Code) apis.Resolved {
	return apis.Resolved{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// Example output:
//
//	code="UNAVAILABLE"
//	http: source=override -> 502
//	grpc: source=default -> UNAVAILABLE(14)
//
// source is one of override, default or fallback.
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c.Name())

	hv, hsrc := m.resolveHTTP(c)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", hsrc, hv)

	gv, gsrc := m.resolveGRPC(c)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", gsrc, grpcName(gv), int(gv))

	return b.String()
}

func (m *mapper) resolveHTTP(c code.Code) (int, source) {
	if v, ok := m.httpOverride[c]; ok {
		return v, sourceOverride
	}
	if v, ok := m.httpDefault[c]; ok {
		return v, sourceDefault
	}
	return m.fallbackHTTP, sourceFallback
}

func (m *mapper) resolveGRPC(c code.Code) (codes.Code, source) {
	if v, ok := m.grpcOverride[c]; ok {
		return v, sourceOverride
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v, sourceDefault
	}
	return m.fallbackGRPC, sourceFallback
}

// source names the tier that produced a resolved value.
type source string

const (
	sourceOverride source = "override"
	sourceDefault  source = "default"
	sourceFallback source = "fallback"
)

// grpcName renders a gRPC code as its upper-case wire name, e.g. NOT_FOUND.
func grpcName(gc codes.Code) string {
	return code.Code(gc).Name()
}

// validate checks every rule collected by options and reports all problems
// at once.
func (b *builder) validate() error {
	var err error
	for c, v := range b.httpDefaults {
		err = multierr.Append(err, checkHTTPRule("default", c, v))
	}
	for c, v := range b.httpOverride {
		err = multierr.Append(err, checkHTTPRule("override", c, v))
	}
	for c, v := range b.grpcDefaults {
		err = multierr.Append(err, checkGRPCRule("default", c, v))
	}
	for c, v := range b.grpcOverride {
		err = multierr.Append(err, checkGRPCRule("override", c, v))
	}
	if !validHTTP(b.fallbackHTTP) {
		err = multierr.Append(err, fmt.Errorf("mapper: fallback HTTP status %d out of range", b.fallbackHTTP))
	}
	if !code.Code(b.fallbackGRPC).Known() {
		err = multierr.Append(err, fmt.Errorf("mapper: fallback gRPC code %d is not a gRPC code", int(b.fallbackGRPC)))
	}
	return err
}

func checkHTTPRule(kind string, c code.Code, v int) error {
	if err := code.Validate(c); err != nil {
		return fmt.Errorf("mapper: HTTP %s for code %d: %w", kind, uint32(c), err)
	}
	if !validHTTP(v) {
		return fmt.Errorf("mapper: HTTP %s for code %s: status %d out of range", kind, c.Name(), v)
	}
	return nil
}

func checkGRPCRule(kind string, c code.Code, v codes.Code) error {
	if err := code.Validate(c); err != nil {
		return fmt.Errorf("mapper: gRPC %s for code %d: %w", kind, uint32(c), err)
	}
	if !code.Code(v).Known() {
		return fmt.Errorf("mapper: gRPC %s for code %s: %d is not a gRPC code", kind, c.Name(), int(v))
	}
	return nil
}

// validHTTP reports whether v is a three-digit HTTP status.
func validHTTP(v int) bool {
	return v >= 100 && v <= 599
}
