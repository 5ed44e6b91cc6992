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

// Package contenttype classifies declared request media types.
package contenttype

import (
	"strings"

	"github.com/elnormous/contenttype"
)

const (
	typeApplication = "application"
	subtypeJSON     = "json"
	suffixJSON      = "+json"
	charsetParam    = "charset"
)

// JSONType represents a content type already classified as JSON.
type JSONType struct {
	mediaType contenttype.MediaType
	raw       string
}

// ParseJSON parses the given Content-Type header value and reports whether it
// declares a JSON payload. That is the case for application/json itself, as
// well as for any structured syntax suffix usage, like application/problem+json.
// Media type matching is case-insensitive. Parameters do not take part in the
// classification.
func ParseJSON(value string) (JSONType, bool) {
	mediaType := contenttype.NewMediaType(value)
	if len(mediaType.Type) == 0 && len(mediaType.Subtype) == 0 {
		return JSONType{}, false
	}

	mainType := strings.ToLower(mediaType.Type)
	subType := strings.ToLower(mediaType.Subtype)

	if (mainType == typeApplication && subType == subtypeJSON) ||
		strings.HasSuffix(subType, suffixJSON) {
		return JSONType{mediaType: mediaType, raw: value}, true
	}

	return JSONType{}, false
}

// Charset returns the value of the charset parameter in its original spelling.
// The second return value reports its presence. An absent charset is not the
// same as a declared utf-8 one, even though both result in the body being read
// verbatim.
func (t JSONType) Charset() (string, bool) {
	for name, value := range t.mediaType.Parameters {
		if strings.EqualFold(name, charsetParam) {
			return t.literal(value), true
		}
	}

	return "", false
}

// literal recovers the original spelling of the given parameter value from the
// unparsed header. The parser lowercases parameter values, diagnostics however
// have to cite the header verbatim.
func (t JSONType) literal(value string) string {
	lowered := strings.ToLower(t.raw)

	offset := strings.Index(lowered, charsetParam+"=")
	if offset < 0 {
		return value
	}

	idx := strings.Index(lowered[offset:], value)
	if idx < 0 {
		return value
	}

	offset += idx

	return t.raw[offset : offset+len(value)]
}

// String returns the normalized representation of the media type.
func (t JSONType) String() string { return t.mediaType.String() }
