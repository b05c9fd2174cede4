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

// Package code defines the closed set of canonical status codes.
//
// A code is the machine-readable classification of a status, such as
// NotFound, InvalidArgument or Unavailable. Codes are:
//
//   - small, stable integers (the same numbers gRPC uses on the wire);
//   - comparable with ==, never by message text;
//   - rendered in two forms: a canonical identifier ("NOT_FOUND", see Name)
//     and a human-readable label ("Not found", see String).
//
// OK (0) is the only success code. Every other value describes a failure.
//
// This package also provides the functions that convert user input (config
// files, flags, headers) to a Code.
package code
