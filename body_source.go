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
	"io"

	"github.com/inhies/go-bytesize"
	"golang.org/x/text/encoding"

	"github.com/calyptra/jsonbody/charset"
	"github.com/calyptra/jsonbody/internal/x/errorchain"
)

// bodySource is the stream fed into the serializer engine together with the
// ownership information for it. An owned source wraps the request body in a
// transcoder, which must be released after use. A borrowed source is the
// request body itself. That one belongs to the server and is never closed
// here.
type bodySource struct {
	reader io.Reader
	owned  io.Closer
}

func (s bodySource) Release() error {
	if s.owned == nil {
		return nil
	}

	return s.owned.Close()
}

func acquireBodySource(body io.Reader, enc encoding.Encoding, limit bytesize.ByteSize) bodySource {
	if limit > 0 {
		body = &limitedBody{source: body, available: int64(limit), limit: limit}
	}

	if charset.IsUTF8(enc) {
		return bodySource{reader: body}
	}

	transcoder := charset.NewUTF8Reader(body, enc)

	return bodySource{reader: transcoder, owned: transcoder}
}

type limitedBody struct {
	source    io.Reader
	available int64
	limit     bytesize.ByteSize
	exceeded  bool
}

func (l *limitedBody) Read(p []byte) (int, error) {
	if l.exceeded {
		return 0, errorchain.NewWithMessagef(ErrBodyTooLarge,
			"request body exceeds %s", l.limit)
	}

	if len(p) == 0 {
		return 0, nil
	}

	// one byte beyond the limit to be able to tell a body hitting the limit
	// exactly from one exceeding it
	if int64(len(p)) > l.available+1 {
		p = p[:l.available+1]
	}

	size, err := l.source.Read(p)
	if int64(size) <= l.available {
		l.available -= int64(size)

		return size, err
	}

	size = int(l.available)
	l.available = 0
	l.exceeded = true

	return size, errorchain.NewWithMessagef(ErrBodyTooLarge,
		"request body exceeds %s", l.limit)
}
