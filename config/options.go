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

	"github.com/go-viper/mapstructure/v2"
)

type opts struct {
	envPrefix         string
	substituteEnvVars bool
	decodeHooks       []mapstructure.DecodeHookFunc
	validator         Validator
}

type Option func(*opts)

// WithEnvPrefix replaces the default JSONBODY_ prefix used for environment
// based configuration overrides.
func WithEnvPrefix(prefix string) Option {
	return func(o *opts) {
		trimmed := strings.TrimSpace(prefix)
		if len(trimmed) != 0 {
			o.envPrefix = trimmed
		}
	}
}

// WithEnvVarSubstitution enables substitution of ${VAR} references in the raw
// configuration before it is parsed.
func WithEnvVarSubstitution(flag bool) Option {
	return func(o *opts) {
		o.substituteEnvVars = flag
	}
}

// WithDecodeHookFunc registers an additional decode hook to allow conversion
// from string values to custom types.
func WithDecodeHookFunc(hook mapstructure.DecodeHookFunc) Option {
	return func(o *opts) {
		if hook != nil {
			o.decodeHooks = append(o.decodeHooks, hook)
		}
	}
}

// WithValidator registers the validator for the loaded configuration.
func WithValidator(validator Validator) Option {
	return func(o *opts) {
		if validator != nil {
			o.validator = validator
		}
	}
}
