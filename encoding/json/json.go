// Copyright 2026 The jsgen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package json decodes JSON documents into values accepted by
// [gocodec.Encode]. Objects keep the order of their keys and numbers keep
// their exact text.
package json

import (
	"bytes"
	"encoding/json"
	"io"

	"jsgen.dev/go/encoding/gocodec"
	"jsgen.dev/go/internal/source"
	"jsgen.dev/go/js/errors"
	"jsgen.dev/go/js/token"
)

// Valid reports whether data is a valid JSON encoding.
func Valid(b []byte) bool {
	return json.Valid(b)
}

// Decode decodes the single JSON value in src. The path is used for error
// messages and for reading src if it is nil. See [source.ReadAll] for the
// accepted types of src.
//
// Objects are decoded as *gocodec.Object, arrays as []any, and numbers as
// json.Number.
func Decode(path string, src any) (any, error) {
	d := NewDecoder(path, src)
	v, err := d.Decode()
	if err == io.EOF {
		return nil, d.errorf(err, "invalid JSON for file %q: empty input", path)
	}
	if err != nil {
		return nil, err
	}
	if _, err := d.dec.Token(); err != io.EOF {
		return nil, d.errorf(err, "invalid JSON for file %q: trailing data", path)
	}
	return v, nil
}

// A Decoder reads a stream of JSON values.
type Decoder struct {
	path string
	dec  *json.Decoder

	tokFile    *token.File
	readAllErr error
}

// NewDecoder returns a decoder for the JSON values in src. The path is
// used for error messages and for reading src if it is nil.
func NewDecoder(path string, src any) *Decoder {
	b, err := source.ReadAll(path, src)
	tokFile := token.NewFile(path, len(b))
	tokFile.SetLinesForContent(b)
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return &Decoder{
		path:       path,
		dec:        dec,
		tokFile:    tokFile,
		readAllErr: err,
	}
}

// Decode returns the next JSON value. It returns io.EOF if the input has
// been exhausted.
func (d *Decoder) Decode() (any, error) {
	if d.readAllErr != nil {
		return nil, d.readAllErr
	}
	tok, err := d.dec.Token()
	if err == io.EOF {
		return nil, err
	}
	if err != nil {
		return nil, d.errorf(err, "invalid JSON for file %q", d.path)
	}
	v, err := d.value(tok)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, d.errorf(err, "invalid JSON for file %q", d.path)
	}
	return v, nil
}

func (d *Decoder) value(tok json.Token) (any, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool, or nil
		return tok, nil
	}
	switch delim {
	case '[':
		a := []any{}
		for d.dec.More() {
			v, err := d.next()
			if err != nil {
				return nil, err
			}
			a = append(a, v)
		}
		_, err := d.dec.Token()
		return a, err

	case '{':
		obj := gocodec.NewObject()
		for d.dec.More() {
			k, err := d.dec.Token()
			if err != nil {
				return nil, err
			}
			v, err := d.next()
			if err != nil {
				return nil, err
			}
			// Later duplicates replace the value but keep the first position.
			obj.Set(k.(string), v)
		}
		_, err := d.dec.Token()
		return obj, err
	}
	return nil, errors.Newf(token.NoPos, "unexpected delimiter %v", delim)
}

func (d *Decoder) next() (any, error) {
	tok, err := d.dec.Token()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}
	return d.value(tok)
}

func (d *Decoder) errorf(err error, format string, args ...any) error {
	offset := d.dec.InputOffset()
	if synErr, ok := err.(*json.SyntaxError); ok {
		offset = synErr.Offset
	}
	offset = max(0, min(offset, int64(d.tokFile.Size())))
	pos := d.tokFile.Pos(int(offset), token.NoRelPos)
	if err == nil || err == io.EOF {
		return errors.Newf(pos, format, args...)
	}
	return errors.Wrapf(err, pos, format, args...)
}
