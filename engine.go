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
	"context"
	"io"

	"github.com/goccy/go-json"
)

// Engine deserializes a UTF-8 encoded JSON byte stream into target. It is the
// boundary to the actual serializer implementation. Implementations observe
// ctx while reading and report its cancellation as error.
type Engine interface {
	Decode(ctx context.Context, reader io.Reader, target any, opts Options) error
}

type goJSONEngine struct{}

func (goJSONEngine) Decode(ctx context.Context, reader io.Reader, target any, opts Options) error {
	dec := json.NewDecoder(&contextReader{ctx: ctx, source: reader})

	if opts.UseNumber {
		dec.UseNumber()
	}

	if opts.DisallowUnknownFields {
		dec.DisallowUnknownFields()
	}

	return dec.DecodeContext(ctx, target)
}

// contextReader stops delivering body bytes as soon as ctx is done. Without
// it a cancellation between two reads would go unnoticed until the underlying
// stream fails or ends.
type contextReader struct {
	ctx    context.Context
	source io.Reader
}

func (r *contextReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}

	return r.source.Read(p)
}
