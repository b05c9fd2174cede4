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

// Package status provides Status, a small value type that reports either
// success or a failure classified by a canonical code (see package code)
// together with a human-readable message.
//
// The zero Status is OK. Failures are built with New, with one of the
// canonical constructors (NotFoundError, InvalidArgumentError, ...) or with a
// Builder when the message is assembled piece by piece:
//
//	func (s *Store) Get(key string) (Item, status.Status) {
//	    it, ok := s.items[key]
//	    if !ok {
//	        return Item{}, status.NotFoundError("missing key " + key)
//	    }
//	    return it, status.OK()
//	}
//
// Callers check OK and handle, translate or forward the failure. Status also
// implements error, and Err returns nil for OK so the usual
//
//	if err := st.Err(); err != nil { ... }
//
// works without the typed-nil trap. Codes are the contract between
// components; messages are meant for humans and logs only.
//
// A Status carries no structured payload and no cause chain. FromError
// flattens arbitrary errors into a Status when crossing into this model.
package status
