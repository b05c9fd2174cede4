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
	"encoding"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestNumericValuesAreStable(t *testing.T) {
	tests := []struct {
		c    Code
		want uint32
	}{
		{OK, 0},
		{Cancelled, 1},
		{Unknown, 2},
		{InvalidArgument, 3},
		{DeadlineExceeded, 4},
		{NotFound, 5},
		{AlreadyExists, 6},
		{PermissionDenied, 7},
		{ResourceExhausted, 8},
		{FailedPrecondition, 9},
		{Aborted, 10},
		{OutOfRange, 11},
		{Unimplemented, 12},
		{Internal, 13},
		{Unavailable, 14},
		{DataLoss, 15},
		{Unauthenticated, 16},
	}
	for _, tt := range tests {
		if uint32(tt.c) != tt.want {
			t.Fatalf("%s = %d, want %d", tt.c.Name(), uint32(tt.c), tt.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		c    Code
		want string
	}{
		{OK, "OK"},
		{Cancelled, "Cancelled"},
		{Unknown, "Unknown"},
		{InvalidArgument, "Invalid argument"},
		{DeadlineExceeded, "Deadline exceeded"},
		{NotFound, "Not found"},
		{AlreadyExists, "Already exists"},
		{PermissionDenied, "Permission denied"},
		{Unauthenticated, "Unauthenticated"},
		{ResourceExhausted, "Resource exhausted"},
		{FailedPrecondition, "Failed precondition"},
		{Aborted, "Aborted"},
		{OutOfRange, "Out of range"},
		{Unimplemented, "Unimplemented"},
		{Internal, "Internal"},
		{Unavailable, "Unavailable"},
		{DataLoss, "Data loss"},
		{Code(42), "Unknown code"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Fatalf("Code(%d).String() = %q, want %q", uint32(tt.c), got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	if got := NotFound.Name(); got != "NOT_FOUND" {
		t.Fatalf("Name() = %q, want %q", got, "NOT_FOUND")
	}
	if got := Code(99).Name(); got != "CODE(99)" {
		t.Fatalf("Name() = %q, want %q", got, "CODE(99)")
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 17 {
		t.Fatalf("len(All()) = %d, want 17", len(all))
	}
	for i, c := range all {
		if uint32(c) != uint32(i) {
			t.Fatalf("All()[%d] = %d, want numeric order", i, c)
		}
	}

	// the returned slice is a copy
	all[0] = Internal
	if All()[0] != OK {
		t.Fatal("All() must return a fresh slice")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  internal  ", "INTERNAL"},
		{"to upper", "NoT_fOuNd", "NOT_FOUND"},
		{"dash to underscore", "not-found", "NOT_FOUND"},
		{"space to underscore", "Invalid argument", "INVALID_ARGUMENT"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"canonical", "NOT_FOUND", NotFound},
		{"lower dash", "already-exists", AlreadyExists},
		{"human label", "Deadline exceeded", DeadlineExceeded},
		{"ok", "ok", OK},
		{"grpc spelling", "canceled", Cancelled},
		{"british spelling", "cancelled", Cancelled},
		{"numeric", "16", Unauthenticated},
		{"numeric zero", "0", OK},
		{"with spaces", "  data loss ", DataLoss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got.Name(), tt.want.Name())
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "nope", "17", "-1", "NOT__FOUND", "Unknown code"} {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			if !errors.Is(err, ErrCodeInvalid) {
				t.Fatalf("Parse(%q) = %v, %v; want ErrCodeInvalid", in, got, err)
			}
		})
	}
}

func TestParse_RoundTripsEveryForm(t *testing.T) {
	for _, c := range All() {
		for _, form := range []string{c.Name(), c.String()} {
			got, err := Parse(form)
			if err != nil || got != c {
				t.Fatalf("Parse(%q) = %v, %v; want %v", form, got, err, c.Name())
			}
		}
	}
}

func TestMustParse(t *testing.T) {
	if c := MustParse("internal"); c != Internal {
		t.Fatalf("MustParse(valid) = %v, want %v", c.Name(), Internal.Name())
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("INVALID CODE ??")
}

func TestValidate(t *testing.T) {
	for _, c := range All() {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%v) unexpected error: %v", c.Name(), err)
		}
	}
	if err := Validate(Code(17)); err == nil {
		t.Fatal("Validate(17) expected error")
	}
}

func TestMarshalText(t *testing.T) {
	text, err := PermissionDenied.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "PERMISSION_DENIED" {
		t.Fatalf("MarshalText() = %q, want %q", text, "PERMISSION_DENIED")
	}

	if _, err := Code(100).MarshalText(); err == nil {
		t.Fatal("MarshalText() on unknown code must return error")
	}
}

func TestUnmarshalText(t *testing.T) {
	var c Code
	if err := c.UnmarshalText([]byte("  resource-exhausted  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != ResourceExhausted {
		t.Fatalf("UnmarshalText() = %v, want %v", c.Name(), ResourceExhausted.Name())
	}

	bad := Internal
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatal("UnmarshalText() expected error for invalid input")
	}
	if bad != Internal {
		t.Fatal("UnmarshalText() must not modify the receiver on error")
	}
}

func TestImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)
}

func TestGRPC(t *testing.T) {
	tests := []struct {
		c    Code
		want codes.Code
	}{
		{OK, codes.OK},
		{Cancelled, codes.Canceled},
		{NotFound, codes.NotFound},
		{DataLoss, codes.DataLoss},
		{Unauthenticated, codes.Unauthenticated},
		{Code(77), codes.Unknown},
	}
	for _, tt := range tests {
		if got := tt.c.GRPC(); got != tt.want {
			t.Fatalf("%v.GRPC() = %v, want %v", tt.c.Name(), got, tt.want)
		}
	}

	for _, c := range All() {
		if got := FromGRPC(c.GRPC()); got != c {
			t.Fatalf("FromGRPC(%v.GRPC()) = %v", c.Name(), got.Name())
		}
	}
	if got := FromGRPC(codes.Code(1234)); got != Unknown {
		t.Fatalf("FromGRPC(1234) = %v, want UNKNOWN", got.Name())
	}
}
