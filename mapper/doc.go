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

// Package mapper provides deterministic, immutable mappings from canonical
// status codes (dirpx.dev/status/code) to transport-level statuses for HTTP
// and gRPC.
//
// # Overview
//
// Transport layers (HTTP handlers, REST gateways, gRPC servers) need to turn
// a Status into concrete transport codes. Package mapper does that in a way
// that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per code;
//   - dual — HTTP and gRPC are resolved with the same logic;
//   - configurable — rules can come from options or from a YAML file.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. per-code default (library or user-adjusted);
//  3. global fallback (500 / codes.Internal).
//
// Every canonical code has a library default, so the fallback only applies
// to values outside the canonical set.
//
// # Library defaults
//
// HTTP defaults follow the common REST projection of the canonical codes
// (NotFound -> 404, PermissionDenied -> 403, Unavailable -> 503, ...). gRPC
// defaults are the identity: canonical codes share their numbers with gRPC.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Cancelled, 408),
//	    mapper.WithGRPCOverride(code.DataLoss, codes.Internal),
//	)
//	if err != nil {
//	    // unknown code, out-of-range HTTP status, etc.
//	}
//
//	r := m.Resolve(code.NotFound)
//	// r.HTTP == 404, r.GRPC == codes.NotFound
//
// # Configuration
//
// LoadConfig reads the same rules from YAML:
//
//	http:
//	  CANCELLED: 408
//	grpc:
//	  DATA_LOSS: INTERNAL
//	fallback_http: 500
//
// and FromConfig turns them into a Mapper.
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of how
// a particular code was resolved, including which tier matched.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the Mapper
// does not observe further changes to the caller's maps. This makes it safe to
// share a single instance across handlers, goroutines, and requests.
package mapper
