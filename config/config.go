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

// Package config loads decoder settings from framework supplied configuration.
package config

import (
	"github.com/inhies/go-bytesize"

	"github.com/calyptra/jsonbody"
)

// SerializerConfig carries configured serializer options.
type SerializerConfig struct {
	UseNumber             bool `koanf:"use_number"              mapstructure:"use_number"`
	DisallowUnknownFields bool `koanf:"disallow_unknown_fields" mapstructure:"disallow_unknown_fields"`
}

// Config is the decoder configuration as delivered by the hosting framework.
// A missing serializer section means no serializer options are configured, in
// which case the decoder falls back to jsonbody.DefaultOptions.
type Config struct {
	MaxBodySize bytesize.ByteSize `koanf:"max_body_size" mapstructure:"max_body_size" validate:"omitempty,max=1073741824"`
	Serializer  *SerializerConfig `koanf:"serializer"    mapstructure:"serializer"`
}

// DecoderOptions converts the configuration into decoder options. The
// serializer section, if present, becomes the provider tier of the options
// resolution.
func (c Config) DecoderOptions() []jsonbody.DecoderOption {
	opts := []jsonbody.DecoderOption{
		jsonbody.WithMaxBodySize(c.MaxBodySize),
	}

	if c.Serializer != nil {
		configured := jsonbody.Options{
			UseNumber:             c.Serializer.UseNumber,
			DisallowUnknownFields: c.Serializer.DisallowUnknownFields,
		}

		opts = append(opts, jsonbody.WithOptionsProvider(
			jsonbody.OptionsProviderFunc(func() (jsonbody.Options, bool) {
				return configured, true
			})))
	}

	return opts
}
