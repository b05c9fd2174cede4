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

// Package apis defines the small Go-level contracts shared by the status
// packages.
//
// Transport adapters (grpcx, httpx) depend on these interfaces instead of on
// the concrete mapper implementation, and foreign error types can implement
// CodedError to be classified by status.FromError without importing the
// status package itself.
//
// This package must remain lightweight and should not introduce heavy
// dependencies, so it only contains interfaces and very small value types.
package apis
