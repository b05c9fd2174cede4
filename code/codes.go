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

// Canonical codes.
//
// The numeric values are part of the contract: downstream code may persist
// or forward them, so they never change between versions.
const (
	// OK indicates success. A status with this code carries no message.
	OK Code = 0

	// Cancelled indicates that the operation was cancelled, typically by
	// the caller.
	Cancelled Code = 1

	// Unknown is the catch-all for failures that carry no better
	// classification, for example errors coming from another error space.
	Unknown Code = 2

	// InvalidArgument indicates that the caller supplied an invalid
	// argument, independent of the state of the system.
	InvalidArgument Code = 3

	// DeadlineExceeded indicates that the deadline expired before the
	// operation could complete.
	DeadlineExceeded Code = 4

	// NotFound indicates that a requested entity was not found.
	NotFound Code = 5

	// AlreadyExists indicates that an entity the caller attempted to
	// create already exists.
	AlreadyExists Code = 6

	// PermissionDenied indicates that the caller is identified but not
	// allowed to perform the operation.
	PermissionDenied Code = 7

	// ResourceExhausted indicates that some resource (quota, memory,
	// disk space) has been exhausted.
	ResourceExhausted Code = 8

	// FailedPrecondition indicates that the system is not in the state
	// required for the operation. The caller should not retry until the
	// state has been fixed.
	FailedPrecondition Code = 9

	// Aborted indicates that the operation was aborted, typically because
	// of a concurrency conflict. The caller may retry at a higher level.
	Aborted Code = 10

	// OutOfRange indicates that the operation was attempted past the valid
	// range, e.g. reading past the end of input.
	OutOfRange Code = 11

	// Unimplemented indicates that the operation is not implemented or
	// not supported.
	Unimplemented Code = 12

	// Internal indicates that an invariant expected by the implementation
	// has been broken.
	Internal Code = 13

	// Unavailable indicates that the service is currently unavailable. The
	// caller may retry the same call.
	Unavailable Code = 14

	// DataLoss indicates unrecoverable data loss or corruption.
	DataLoss Code = 15

	// Unauthenticated indicates that the request does not carry valid
	// authentication credentials.
	Unauthenticated Code = 16
)

// maxCode is one past the highest known code.
const maxCode = 17

// names holds the canonical identifiers, indexed by code value.
var names = [maxCode]string{
	OK:                 "OK",
	Cancelled:          "CANCELLED",
	Unknown:            "UNKNOWN",
	InvalidArgument:    "INVALID_ARGUMENT",
	DeadlineExceeded:   "DEADLINE_EXCEEDED",
	NotFound:           "NOT_FOUND",
	AlreadyExists:      "ALREADY_EXISTS",
	PermissionDenied:   "PERMISSION_DENIED",
	ResourceExhausted:  "RESOURCE_EXHAUSTED",
	FailedPrecondition: "FAILED_PRECONDITION",
	Aborted:            "ABORTED",
	OutOfRange:         "OUT_OF_RANGE",
	Unimplemented:      "UNIMPLEMENTED",
	Internal:           "INTERNAL",
	Unavailable:        "UNAVAILABLE",
	DataLoss:           "DATA_LOSS",
	Unauthenticated:    "UNAUTHENTICATED",
}

// labels holds the human-readable labels, indexed by code value.
//
// IMPORTANT: these strings are what Status renders in front of its message.
// Callers compare and grep for them, so they must stay exactly as they are.
var labels = [maxCode]string{
	OK:                 "OK",
	Cancelled:          "Cancelled",
	Unknown:            "Unknown",
	InvalidArgument:    "Invalid argument",
	DeadlineExceeded:   "Deadline exceeded",
	NotFound:           "Not found",
	AlreadyExists:      "Already exists",
	PermissionDenied:   "Permission denied",
	ResourceExhausted:  "Resource exhausted",
	FailedPrecondition: "Failed precondition",
	Aborted:            "Aborted",
	OutOfRange:         "Out of range",
	Unimplemented:      "Unimplemented",
	Internal:           "Internal",
	Unavailable:        "Unavailable",
	DataLoss:           "Data loss",
	Unauthenticated:    "Unauthenticated",
}

// aliases maps alternative spellings (after Normalize) to codes.
var aliases = map[string]Code{
	"CANCELED": Cancelled,
}
