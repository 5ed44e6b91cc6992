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

package config

import (
	"strings"

	"github.com/drone/envsubst/v2"
	"github.com/go-viper/mapstructure/v2"
	"github.com/inhies/go-bytesize"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/calyptra/jsonbody"
	"github.com/calyptra/jsonbody/internal/x/errorchain"
	"github.com/calyptra/jsonbody/internal/x/stringx"
)

const defaultEnvPrefix = "JSONBODY_"

// nolint: gochecknoglobals
var defaultConfig = map[string]any{
	"max_body_size": 10 * bytesize.MB,
}

// Load parses the given raw yaml configuration, applies environment based
// overrides and returns the resulting decoder configuration. Environment
// variables use the configured prefix, with a double underscore separating
// the hierarchy levels, e.g. JSONBODY_SERIALIZER__USE_NUMBER.
func Load(rawYAML []byte, options ...Option) (*Config, error) {
	o := opts{envPrefix: defaultEnvPrefix, validator: noopValidator{}}

	for _, option := range options {
		option(&o)
	}

	if o.substituteEnvVars {
		content, err := envsubst.EvalEnv(stringx.ToString(rawYAML))
		if err != nil {
			return nil, errorchain.NewWithMessage(jsonbody.ErrConfiguration,
				"substitution of environment variables failed").CausedBy(err)
		}

		rawYAML = stringx.ToBytes(content)
	}

	parser := koanf.New(".")

	if err := parser.Load(confmap.Provider(defaultConfig, "."), nil); err != nil {
		return nil, errorchain.NewWithMessage(jsonbody.ErrConfiguration,
			"failed to load configuration defaults").CausedBy(err)
	}

	if err := parser.Load(rawbytes.Provider(rawYAML), yaml.Parser()); err != nil {
		return nil, errorchain.NewWithMessage(jsonbody.ErrConfiguration,
			"failed to parse configuration").CausedBy(err)
	}

	if err := parser.Load(env.Provider(".", env.Opt{
		Prefix: o.envPrefix,
		TransformFunc: func(key, val string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, o.envPrefix))

			return strings.ReplaceAll(key, "__", "."), val
		},
	}), nil); err != nil {
		return nil, errorchain.NewWithMessage(jsonbody.ErrConfiguration,
			"failed to load environment variables").CausedBy(err)
	}

	var conf Config

	if err := parser.UnmarshalWithConf("", &conf, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				append([]mapstructure.DecodeHookFunc{byteSizeDecodeHookFunc}, o.decodeHooks...)...,
			),
			Result:           &conf,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, errorchain.NewWithMessage(jsonbody.ErrConfiguration,
			"failed to decode configuration").CausedBy(err)
	}

	if err := o.validator.Validate(&conf); err != nil {
		return nil, err
	}

	return &conf, nil
}

// NewDecoder creates a jsonbody.Decoder from the given raw yaml configuration.
func NewDecoder(rawYAML []byte, options ...Option) (*jsonbody.Decoder, error) {
	conf, err := Load(rawYAML, options...)
	if err != nil {
		return nil, err
	}

	return jsonbody.NewDecoder(conf.DecoderOptions()...), nil
}
