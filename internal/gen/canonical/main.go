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

// Command canonical generates the canonical constructors and predicates of
// package status, one pair per non-OK code.
//
// It is run through go generate from the repository root:
//
//	go generate ./...
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"dirpx.dev/status/code"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// entry is one generated constructor/predicate pair.
type entry struct {
	// Ident is the Go identifier of the code constant, e.g. "NotFound".
	Ident string
	// Label is the human-readable label, e.g. "Not found".
	Label string
}

var tmpl = template.Must(template.New("canonical").Parse(`/*
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

// Code generated by internal/gen/canonical; DO NOT EDIT.

package status

import "dirpx.dev/status/code"
{{ range . }}
// {{ .Ident }}Error returns a failure with code.{{ .Ident }} ("{{ .Label }}").
func {{ .Ident }}Error(msg string) Status { return New(code.{{ .Ident }}, msg) }

// Is{{ .Ident }} reports whether err carries code.{{ .Ident }}.
func Is{{ .Ident }}(err error) bool { return CodeOf(err) == code.{{ .Ident }} }
{{ end }}`))

func main() {
	out := flag.String("out", "canonical_gen.go", "output file")
	flag.Parse()

	src, err := render(code.All())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// render produces the gofmt-ed source for the given codes. OK is skipped:
// there is no "OK error".
func render(all []code.Code) ([]byte, error) {
	title := cases.Title(language.Und)

	entries := make([]entry, 0, len(all))
	for _, c := range all {
		if c == code.OK {
			continue
		}
		entries = append(entries, entry{Ident: identifier(title, c), Label: c.String()})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, entries); err != nil {
		return nil, fmt.Errorf("canonical: execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("canonical: format source: %w", err)
	}
	return src, nil
}

// identifier derives the Go identifier from the human label:
// "Invalid argument" becomes "InvalidArgument".
func identifier(title cases.Caser, c code.Code) string {
	return strings.ReplaceAll(title.String(c.String()), " ", "")
}
