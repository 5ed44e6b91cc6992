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

package errorchain

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

type link struct {
	err error
	msg string
}

type envelope struct { //nolint:musttag
	XMLName xml.Name `json:"-"`
	Code    string   `json:"code"              xml:"code"`
	Message string   `json:"message,omitempty" xml:"message,omitempty"`
}

// ErrorChain is an ordered list of errors. The first entry defines the error
// class, all following entries are its causes, most recent first.
type ErrorChain struct { // nolint: errname
	links []link
}

func New(err error) *ErrorChain {
	return (&ErrorChain{}).causedBy(err, "")
}

func NewWithMessage(err error, message string) *ErrorChain {
	return (&ErrorChain{}).causedBy(err, message)
}

func NewWithMessagef(err error, format string, a ...any) *ErrorChain {
	return (&ErrorChain{}).causedBy(err, fmt.Sprintf(format, a...))
}

func (ec *ErrorChain) causedBy(err error, msg string) *ErrorChain {
	ec.links = append(ec.links, link{err: err, msg: msg})

	return ec
}

func (ec *ErrorChain) CausedBy(err error) *ErrorChain {
	return ec.causedBy(err, "")
}

func (ec *ErrorChain) Error() string {
	parts := make([]string, 0, len(ec.links))

	for _, entry := range ec.links {
		if len(entry.msg) == 0 {
			parts = append(parts, entry.err.Error())
		} else {
			parts = append(parts, entry.err.Error()+": "+entry.msg)
		}
	}

	return strings.Join(parts, ": ")
}

func (ec *ErrorChain) Unwrap() error {
	if len(ec.links) <= 1 {
		return nil
	}

	return &ErrorChain{links: ec.links[1:]}
}

func (ec *ErrorChain) Is(target error) bool {
	if len(ec.links) == 0 {
		return false
	}

	return errors.Is(ec.links[0].err, target)
}

func (ec *ErrorChain) As(target any) bool {
	if len(ec.links) == 0 {
		return false
	}

	return errors.As(ec.links[0].err, target)
}

func (ec *ErrorChain) Errors() []error {
	errs := make([]error, 0, len(ec.links))

	for _, entry := range ec.links {
		errs = append(errs, entry.err)
	}

	return errs
}

func (ec *ErrorChain) MarshalJSON() ([]byte, error) {
	return json.Marshal(
		envelope{
			Code:    strcase.ToLowerCamel(ec.links[0].err.Error()),
			Message: ec.links[0].msg,
		})
}

func (ec *ErrorChain) MarshalXML(encoder *xml.Encoder, _ xml.StartElement) error {
	return encoder.Encode(
		envelope{ //nolint:musttag
			XMLName: xml.Name{Local: "error"},
			Code:    strcase.ToLowerCamel(ec.links[0].err.Error()),
			Message: ec.links[0].msg,
		})
}

func (ec *ErrorChain) String() string {
	return ec.links[0].err.Error() + ": " + ec.links[0].msg
}
