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
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errTest  = errors.New("test error")
	errCause = errors.New("cause error")
)

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }

func TestErrorChainError(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		chain    *ErrorChain
		expected string
	}{
		"single error": {
			chain:    New(errTest),
			expected: "test error",
		},
		"single error with message": {
			chain:    NewWithMessage(errTest, "foo"),
			expected: "test error: foo",
		},
		"error with formatted message": {
			chain:    NewWithMessagef(errTest, "foo %s", "bar"),
			expected: "test error: foo bar",
		},
		"error with cause": {
			chain:    NewWithMessage(errTest, "foo").CausedBy(errCause),
			expected: "test error: foo: cause error",
		},
	} {
		t.Run(uc, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.chain.Error())
		})
	}
}

func TestErrorChainIs(t *testing.T) {
	t.Parallel()

	// GIVEN
	err := NewWithMessage(errTest, "foo").CausedBy(errCause)

	// THEN
	require.ErrorIs(t, err, errTest)
	require.ErrorIs(t, err, errCause)
	require.NotErrorIs(t, err, errors.New("test error"))
}

func TestErrorChainAs(t *testing.T) {
	t.Parallel()

	// GIVEN
	cause := &testError{msg: "bar"}
	err := New(errTest).CausedBy(cause)

	// WHEN
	var target *testError
	ok := errors.As(err, &target)

	// THEN
	require.True(t, ok)
	assert.Equal(t, cause, target)
}

func TestErrorChainErrors(t *testing.T) {
	t.Parallel()

	// GIVEN
	err := New(errTest).CausedBy(errCause)

	// WHEN
	errs := err.Errors()

	// THEN
	assert.Equal(t, []error{errTest, errCause}, errs)
}

func TestErrorChainMarshalJSON(t *testing.T) {
	t.Parallel()

	// GIVEN
	err := NewWithMessage(errTest, "foo").CausedBy(errCause)

	// WHEN
	res, marshalErr := json.Marshal(err)

	// THEN
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"code":"testError","message":"foo"}`, string(res))
}

func TestErrorChainMarshalXML(t *testing.T) {
	t.Parallel()

	// GIVEN
	err := NewWithMessage(errTest, "foo").CausedBy(errCause)

	// WHEN
	res, marshalErr := xml.Marshal(err)

	// THEN
	require.NoError(t, marshalErr)
	assert.Equal(t, "<error><code>testError</code><message>foo</message></error>", string(res))
}
