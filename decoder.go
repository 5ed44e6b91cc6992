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

// Package jsonbody implements deserialization of JSON request bodies. It
// validates the declared content type, transcodes the body to UTF-8 if a
// different charset is declared and hands the resulting byte stream over to
// a serializer engine.
package jsonbody

import (
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"

	"github.com/calyptra/jsonbody/charset"
	"github.com/calyptra/jsonbody/contenttype"
	"github.com/calyptra/jsonbody/internal/x/errorchain"
)

// Decoder deserializes JSON request bodies. It does not hold any per request
// state and is safe for concurrent use.
type Decoder struct {
	decoderOpts
}

func NewDecoder(opts ...DecoderOption) *Decoder {
	dec := &Decoder{
		decoderOpts: decoderOpts{engine: goJSONEngine{}},
	}

	for _, opt := range opts {
		opt(&dec.decoderOpts)
	}

	return dec
}

// Decode deserializes the body of req into target. Serializer options are
// taken from the configured options provider, falling back to DefaultOptions.
func (d *Decoder) Decode(ctx context.Context, req *http.Request, target any) error {
	return d.decode(ctx, req, target, nil)
}

// DecodeWithOptions behaves like Decode, but uses the given serializer
// options, taking precedence over provider supplied and default ones.
func (d *Decoder) DecodeWithOptions(
	ctx context.Context, req *http.Request, target any, opts Options,
) error {
	return d.decode(ctx, req, target, &opts)
}

func (d *Decoder) decode(ctx context.Context, req *http.Request, target any, explicit *Options) error {
	if req == nil {
		return errorchain.NewWithMessage(ErrArgument, "no request given")
	}

	if target == nil {
		return errorchain.NewWithMessage(ErrArgument, "no target given")
	}

	header := req.Header.Get("Content-Type")

	jsonType, isJSON := contenttype.ParseJSON(header)
	if !isJSON {
		return errorchain.NewWithMessagef(ErrUnsupportedContentType,
			"%s cannot be decoded as json", header)
	}

	opts := resolveOptions(explicit, d.provider)

	var enc encoding.Encoding

	if declared, present := jsonType.Charset(); present {
		var err error

		enc, err = charset.Resolve(declared)
		if err != nil {
			return errorchain.NewWithMessagef(ErrUnknownCharset,
				"unsupported charset: %s", declared).CausedBy(err)
		}
	}

	var body io.Reader = req.Body
	if req.Body == nil {
		body = http.NoBody
	}

	source := acquireBodySource(body, enc, d.maxBodySize)

	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("_content_type", header).
		Bool("_transcoded", source.owned != nil).
		Msg("Decoding request body")

	defer func() {
		if err := source.Release(); err != nil {
			logger.Warn().Err(err).Msg("Failed releasing transcoding reader")
		}
	}()

	// engine errors, cancellation included, are reported unchanged
	return d.engine.Decode(ctx, source.reader, target, opts)
}

// Decode deserializes the body of req into a value of type T using dec.
func Decode[T any](ctx context.Context, dec *Decoder, req *http.Request) (T, error) {
	var value T

	err := dec.Decode(ctx, req, &value)

	return value, err
}

// DecodeWithOptions deserializes the body of req into a value of type T using
// dec and the given serializer options.
func DecodeWithOptions[T any](
	ctx context.Context, dec *Decoder, req *http.Request, opts Options,
) (T, error) {
	var value T

	err := dec.DecodeWithOptions(ctx, req, &value, opts)

	return value, err
}
