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
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/calyptra/jsonbody"
	"github.com/calyptra/jsonbody/internal/x"
	"github.com/calyptra/jsonbody/internal/x/errorchain"
)

// Validator validates the loaded configuration.
type Validator interface {
	Validate(conf any) error
}

// ValidatorFunc allows plain functions to act as Validator.
type ValidatorFunc func(conf any) error

func (f ValidatorFunc) Validate(conf any) error { return f(conf) }

type noopValidator struct{}

func (noopValidator) Validate(_ any) error { return nil }

// NewValidator creates a Validator enforcing the constraints declared via
// validate struct tags on the configuration types.
func NewValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("koanf")

		return "'" + strings.SplitN(x.IfThenElse(len(name) != 0, name, fld.Name), ",", 2)[0] + "'"
	})

	return &structValidator{validate: validate}
}

type structValidator struct {
	validate *validator.Validate
}

func (v *structValidator) Validate(conf any) error {
	if err := v.validate.Struct(conf); err != nil {
		return errorchain.NewWithMessage(jsonbody.ErrConfiguration,
			"configuration validation failed").CausedBy(err)
	}

	return nil
}
