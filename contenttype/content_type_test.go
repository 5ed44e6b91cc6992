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

package contenttype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		header     string
		isJSON     bool
		charset    string
		hasCharset bool
	}{
		"application/json": {
			header: "application/json",
			isJSON: true,
		},
		"application/json with charset": {
			header:     "application/json; charset=utf-8",
			isJSON:     true,
			charset:    "utf-8",
			hasCharset: true,
		},
		"mixed case media type": {
			header: "Application/JSON",
			isJSON: true,
		},
		"structured syntax suffix": {
			header: "application/vnd.api+json",
			isJSON: true,
		},
		"structured syntax suffix with charset": {
			header:     "application/problem+json; charset=iso-8859-1",
			isJSON:     true,
			charset:    "iso-8859-1",
			hasCharset: true,
		},
		"charset spelling is preserved": {
			header:     "application/json; charset=ISO-8859-1",
			isJSON:     true,
			charset:    "ISO-8859-1",
			hasCharset: true,
		},
		"quoted charset spelling is preserved": {
			header:     `application/json; charset="BOGUS-Enc"`,
			isJSON:     true,
			charset:    "BOGUS-Enc",
			hasCharset: true,
		},
		"non json media type": {
			header: "text/plain",
		},
		"text/json is not a json media type": {
			header: "text/json",
		},
		"json like parameter does not classify": {
			header: "text/plain; profile=json",
		},
		"missing header": {
			header: "",
		},
		"malformed header": {
			header: "no-slash",
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// WHEN
			jsonType, isJSON := ParseJSON(tc.header)

			// THEN
			require.Equal(t, tc.isJSON, isJSON)

			if tc.isJSON {
				charset, hasCharset := jsonType.Charset()

				assert.Equal(t, tc.hasCharset, hasCharset)
				assert.Equal(t, tc.charset, charset)
			}
		})
	}
}
