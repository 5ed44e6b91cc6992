// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package jsonbody

import "github.com/inhies/go-bytesize"

// Options control how the serializer engine maps JSON text to Go values. They
// are passed to the engine as is.
type Options struct {
	// UseNumber lets the engine decode JSON numbers into json.Number instead
	// of float64 if the target does not mandate a type.
	UseNumber bool `koanf:"use_number" mapstructure:"use_number"`
	// DisallowUnknownFields lets the engine reject JSON objects carrying
	// properties without a counterpart in the target type.
	DisallowUnknownFields bool `koanf:"disallow_unknown_fields" mapstructure:"disallow_unknown_fields"`
}

// DefaultOptions apply if no explicit options are given and no options
// provider delivers any.
var DefaultOptions = Options{} //nolint:gochecknoglobals

// OptionsProvider supplies serializer options configured in the hosting
// framework. Implementations report absence of such configuration via the
// second return value. Absence is not an error.
type OptionsProvider interface {
	JSONOptions() (Options, bool)
}

// OptionsProviderFunc allows plain functions to act as OptionsProvider.
type OptionsProviderFunc func() (Options, bool)

func (f OptionsProviderFunc) JSONOptions() (Options, bool) { return f() }

// resolveOptions implements the precedence explicit > provider > default.
// Only the first tier delivering a value is used, there is no merging.
func resolveOptions(explicit *Options, provider OptionsProvider) Options {
	if explicit != nil {
		return *explicit
	}

	if provider != nil {
		if opts, present := provider.JSONOptions(); present {
			return opts
		}
	}

	return DefaultOptions
}

type decoderOpts struct {
	engine      Engine
	provider    OptionsProvider
	maxBodySize bytesize.ByteSize
}

type DecoderOption func(*decoderOpts)

// WithEngine replaces the serializer engine used for deserialization.
func WithEngine(engine Engine) DecoderOption {
	return func(o *decoderOpts) {
		if engine != nil {
			o.engine = engine
		}
	}
}

// WithOptionsProvider registers the source for framework configured
// serializer options.
func WithOptionsProvider(provider OptionsProvider) DecoderOption {
	return func(o *decoderOpts) {
		if provider != nil {
			o.provider = provider
		}
	}
}

// WithMaxBodySize limits the amount of request body bytes read during
// deserialization. Zero disables the limit.
func WithMaxBodySize(size bytesize.ByteSize) DecoderOption {
	return func(o *decoderOpts) {
		o.maxBodySize = size
	}
}
