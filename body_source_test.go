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

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/inhies/go-bytesize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/calyptra/jsonbody/charset"
)

func TestAcquireBodySource(t *testing.T) {
	t.Parallel()

	t.Run("borrowed without declared encoding", func(t *testing.T) {
		t.Parallel()

		// GIVEN
		body := strings.NewReader(`{"a":1}`)

		// WHEN
		source := acquireBodySource(body, nil, 0)

		// THEN
		assert.Same(t, body, source.reader)
		assert.Nil(t, source.owned)
		require.NoError(t, source.Release())
	})

	t.Run("borrowed for utf-8", func(t *testing.T) {
		t.Parallel()

		// GIVEN
		body := strings.NewReader(`{"a":1}`)

		// WHEN
		source := acquireBodySource(body, unicode.UTF8, 0)

		// THEN
		assert.Same(t, body, source.reader)
		assert.Nil(t, source.owned)
	})

	t.Run("owned for non utf-8", func(t *testing.T) {
		t.Parallel()

		// GIVEN
		// {"a":"é"} in iso-8859-1
		body := bytes.NewReader([]byte{0x7B, 0x22, 0x61, 0x22, 0x3A, 0x22, 0xE9, 0x22, 0x7D})

		// WHEN
		source := acquireBodySource(body, charmap.ISO8859_1, 0)

		// THEN
		require.NotNil(t, source.owned)

		res, err := io.ReadAll(source.reader)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":"é"}`, string(res))

		require.NoError(t, source.Release())

		_, err = source.reader.Read(make([]byte, 1))
		require.ErrorIs(t, err, charset.ErrReaderClosed)
	})
}

func TestLimitedBody(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		body   string
		limit  bytesize.ByteSize
		assert func(t *testing.T, res []byte, err error)
	}{
		"body below the limit": {
			body:  "1234",
			limit: 8,
			assert: func(t *testing.T, res []byte, err error) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "1234", string(res))
			},
		},
		"body hitting the limit exactly": {
			body:  "12345678",
			limit: 8,
			assert: func(t *testing.T, res []byte, err error) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "12345678", string(res))
			},
		},
		"body exceeding the limit": {
			body:  "123456789",
			limit: 8,
			assert: func(t *testing.T, _ []byte, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, ErrBodyTooLarge)
				require.ErrorContains(t, err, "8.00B")
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			source := acquireBodySource(strings.NewReader(tc.body), nil, tc.limit)

			// WHEN
			res, err := io.ReadAll(source.reader)

			// THEN
			tc.assert(t, res, err)
		})
	}
}
