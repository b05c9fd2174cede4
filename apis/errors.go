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

package apis

import "dirpx.dev/status/code"

// CodedError represents an error that is classified into one of the
// canonical status codes.
//
// status.FromError recognizes any error in the chain implementing this
// interface and converts it into a Status with the reported code and the
// error text as message.
//
// Implementations SHOULD return a known code (see code.Code.Known). Unknown
// values are treated as code.Unknown at the boundary.
type CodedError interface {
	error

	// StatusCode returns the canonical code of the error.
	StatusCode() code.Code
}
