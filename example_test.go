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

package status_test

import (
	"fmt"

	"dirpx.dev/status"
	"dirpx.dev/status/code"
)

func lookup(items map[string]int, key string) (int, status.Status) {
	v, ok := items[key]
	if !ok {
		return 0, status.NotFoundError("missing key " + key)
	}
	return v, status.OK()
}

func Example() {
	items := map[string]int{"a": 1}

	if _, st := lookup(items, "b"); !st.OK() {
		fmt.Println(st)
		fmt.Println(status.IsNotFound(st))
	}
	// Output:
	// Not found: missing key b
	// true
}

func ExampleBuilder() {
	st := status.NewBuilder(code.Internal).Append("a=", 1).Append(" b=", 2).Status()
	fmt.Println(st)
	// Output: Internal: a=1 b=2
}

func ExampleStatus_SetErrorMessage() {
	a := status.NotFoundError("x")
	b := a
	b.SetErrorMessage("y")
	fmt.Println(a.Message(), b.Message())
	// Output: x y
}
