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

package charset

import (
	"errors"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var ErrReaderClosed = errors.New("transcoding reader is closed")

// NewUTF8Reader returns a reader translating body from enc to UTF-8 while it
// is read. Closing the returned reader releases the transcoder only. body
// stays open, its lifetime is owned by the caller.
func NewUTF8Reader(body io.Reader, enc encoding.Encoding) io.ReadCloser {
	return &utf8Reader{source: transform.NewReader(body, enc.NewDecoder())}
}

type utf8Reader struct {
	source io.Reader
}

func (r *utf8Reader) Read(p []byte) (int, error) {
	if r.source == nil {
		return 0, ErrReaderClosed
	}

	return r.source.Read(p)
}

func (r *utf8Reader) Close() error {
	r.source = nil

	return nil
}
