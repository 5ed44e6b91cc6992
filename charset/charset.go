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

// Package charset maps declared charset tokens to text encodings and
// implements the transcoding of request bodies to UTF-8.
package charset

import (
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/calyptra/jsonbody/internal/x/errorchain"
)

var ErrUnsupportedName = errors.New("unsupported charset name")

const nameUTF8 = "utf-8"

// Resolve maps the given charset token to its text encoding using the IANA
// registry. Matching is case-insensitive. utf-8 is resolved without a registry
// lookup to the UTF-8 singleton, as it is by far the most common declaration.
func Resolve(name string) (encoding.Encoding, error) {
	if strings.EqualFold(name, nameUTF8) {
		return unicode.UTF8, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errorchain.NewWithMessagef(ErrUnsupportedName,
			"%q is not a known charset", name).CausedBy(err)
	}

	// the registry knows some names it has no encoding support for
	if enc == nil {
		return nil, errorchain.NewWithMessagef(ErrUnsupportedName,
			"no encoding available for charset %q", name)
	}

	return enc, nil
}

// IsUTF8 reports whether enc requires no transcoding to UTF-8. A nil encoding
// means no charset was declared, in which case the body bytes are expected to
// be UTF-8 already.
func IsUTF8(enc encoding.Encoding) bool {
	return enc == nil || enc == unicode.UTF8
}
