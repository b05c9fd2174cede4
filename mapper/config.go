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
	"errors"
	"fmt"
	"io"
	"sort"

	"dirpx.dev/status/apis"
	"dirpx.dev/status/code"
	"go.uber.org/multierr"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// Config is the serializable form of mapper rules.
//
// Keys of HTTP and GRPC are canonical code spellings accepted by code.Parse
// ("NOT_FOUND", "Not found", "5"). GRPC values and FallbackGRPC use the same
// spellings, since canonical codes share their numbers with gRPC.
// Entries become overrides.
type Config struct {
	HTTP         map[string]int    `yaml:"http,omitempty"`
	GRPC         map[string]string `yaml:"grpc,omitempty"`
	FallbackHTTP int               `yaml:"fallback_http,omitempty"`
	FallbackGRPC string            `yaml:"fallback_grpc,omitempty"`
}

// LoadConfig decodes a YAML mapper configuration from r.
// Unknown fields are rejected. An empty document yields an empty Config.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("mapper: decode config: %w", err)
	}
	return &cfg, nil
}

// Options converts the configuration into build options.
// Every invalid entry is reported; keys are processed in sorted order so the
// resulting error is deterministic.
func (c *Config) Options() ([]Option, error) {
	if c == nil {
		return nil, nil
	}
	var (
		opts []Option
		err  error
	)

	for _, k := range sortedKeys(c.HTTP) {
		cc, perr := code.Parse(k)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("mapper: config http key %q: %w", k, perr))
			continue
		}
		opts = append(opts, WithHTTPOverride(cc, c.HTTP[k]))
	}

	for _, k := range sortedKeys(c.GRPC) {
		cc, perr := code.Parse(k)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("mapper: config grpc key %q: %w", k, perr))
			continue
		}
		gc, perr := parseGRPC(c.GRPC[k])
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("mapper: config grpc value for %q: %w", k, perr))
			continue
		}
		opts = append(opts, WithGRPCOverride(cc, gc))
	}

	if c.FallbackHTTP != 0 {
		opts = append(opts, WithFallbackHTTP(c.FallbackHTTP))
	}
	if c.FallbackGRPC != "" {
		gc, perr := parseGRPC(c.FallbackGRPC)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("mapper: config fallback_grpc: %w", perr))
		} else {
			opts = append(opts, WithFallbackGRPC(gc))
		}
	}

	if err != nil {
		return nil, err
	}
	return opts, nil
}

// FromConfig builds a Mapper from cfg on top of the library defaults.
// Extra options are applied after the configuration.
func FromConfig(cfg *Config, extra ...Option) (apis.Mapper, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(opts, extra...)...)
}

func parseGRPC(s string) (codes.Code, error) {
	c, err := code.Parse(s)
	if err != nil {
		return 0, err
	}
	return c.GRPC(), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
