// Copyright 2014 The Cayley Authors. All rights reserved.
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

package decompressor

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const doc = "<http://example.org/a> <http://example.org/b> <http://example.org/c> .\n"

func gzipped(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	var testDecompressor = []struct {
		message string
		input   io.Reader
		kind    Kind
		expect  string
		err     error
		readErr bool
	}{
		{
			message: "text input",
			input:   strings.NewReader(doc),
			kind:    None,
			expect:  doc,
		},
		{
			message: "short input",
			input:   strings.NewReader("x"),
			kind:    None,
			expect:  "x",
		},
		{
			message: "empty input",
			input:   strings.NewReader(""),
			kind:    None,
			expect:  "",
		},
		{
			message: "gzip input",
			input:   bytes.NewReader(gzipped(t, doc)),
			kind:    Gzip,
			expect:  doc,
		},
		{
			message: "bzip2 input",
			input: bytes.NewReader([]byte{
				0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0xb5, 0x4b, 0xe3, 0xc4, 0x00, 0x00,
				0x02, 0xd1, 0x80, 0x00, 0x10, 0x40, 0x00, 0x2e, 0x04, 0x04, 0x20, 0x20, 0x00, 0x31, 0x06, 0x4c,
				0x41, 0x4c, 0x1e, 0xa7, 0xa9, 0x2a, 0x18, 0x26, 0xb1, 0xc2, 0xee, 0x48, 0xa7, 0x0a, 0x12, 0x16,
				0xa9, 0x7c, 0x78, 0x80,
			}),
			kind:   Bzip2,
			expect: "cayley data\n",
		},
		{
			message: "bad gzip input",
			input:   strings.NewReader("\x1f\x8bnot gzip at all\n"),
			kind:    Gzip,
			err:     gzip.ErrHeader,
		},
		{
			message: "bad bzip2 input",
			input:   strings.NewReader("\x42\x5a\x68not bzip2\n"),
			kind:    Bzip2,
			readErr: true,
		},
	}
	for _, c := range testDecompressor {
		t.Run(c.message, func(t *testing.T) {
			r, kind, err := Detect(c.input)
			require.Equal(t, c.kind, kind)
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				return
			}
			require.NoError(t, err)
			data, err := io.ReadAll(r)
			if c.readErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.expect, string(data))
		})
	}
}
