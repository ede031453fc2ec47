// Copyright 2017 The Cayley Authors. All rights reserved.
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

// Package rdfio reads and writes triple stores in standard RDF serializations.
package rdfio

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/voc"
)

// Reader streams triples decoded from a document. ReadQuad returns io.EOF at the end.
type Reader interface {
	ReadQuad() (quad.Quad, error)
	io.Closer
}

// Writer receives triples to serialize. Output may be buffered until Close.
type Writer interface {
	WriteQuad(quad.Quad) error
	io.Closer
}

// Format is a description for RDF document formats.
type Format struct {
	// Name is a short format name used as identifier for RegisterFormat.
	Name string
	// Aliases are alternative names accepted by FormatByName.
	Aliases []string
	// Ext is a list of file extensions, allowed for file format. Can be used to detect file format, given a path.
	Ext []string
	// Mime is a list of MIME (content) types, allowed for file format.
	Mime []string
	// Reader is a function for creating format reader, that reads serialized data from io.Reader.
	Reader func(io.Reader) Reader
	// Writer is a function for creating format writer. Prefix bindings are used
	// for compact names where the format supports them and may be nil.
	Writer func(io.Writer, *voc.Namespaces) Writer
}

var (
	mu            sync.RWMutex
	formatsByName = make(map[string]*Format)
	formatsByExt  = make(map[string]*Format)
	formatsByMime = make(map[string]*Format)
)

// RegisterFormat registers a new RDF document format.
func RegisterFormat(f Format) {
	mu.Lock()
	defer mu.Unlock()
	for _, name := range append([]string{f.Name}, f.Aliases...) {
		if _, ok := formatsByName[name]; ok {
			panic(fmt.Errorf("format %s is already registered", name))
		}
		formatsByName[name] = &f
	}
	for _, m := range f.Ext {
		if sf, ok := formatsByExt[m]; ok {
			panic(fmt.Errorf("format %s is already registered with extension %s", sf.Name, m))
		}
		formatsByExt[m] = &f
	}
	for _, m := range f.Mime {
		if sf, ok := formatsByMime[m]; ok {
			panic(fmt.Errorf("format %s is already registered with MIME %s", sf.Name, m))
		}
		formatsByMime[m] = &f
	}
}

// FormatByName returns a registered format by its name or alias.
// Will return nil if format is not found.
func FormatByName(name string) *Format {
	mu.RLock()
	defer mu.RUnlock()
	return formatsByName[strings.ToLower(name)]
}

// FormatByExt returns a registered format by its file extension, with the leading dot.
// Will return nil if format is not found.
func FormatByExt(ext string) *Format {
	mu.RLock()
	defer mu.RUnlock()
	return formatsByExt[strings.ToLower(ext)]
}

// FormatByMime returns a registered format by its MIME type.
// Will return nil if format is not found.
func FormatByMime(name string) *Format {
	mu.RLock()
	defer mu.RUnlock()
	return formatsByMime[name]
}

// FormatByFileName guesses the format from a file name, ignoring a trailing ".gz".
func FormatByFileName(name string) *Format {
	name = strings.TrimSuffix(strings.ToLower(name), ".gz")
	return FormatByExt(filepath.Ext(name))
}

// Formats returns a list of all supported formats, sorted by name.
func Formats() []Format {
	mu.RLock()
	defer mu.RUnlock()
	list := make([]Format, 0, len(formatsByName))
	for name, f := range formatsByName {
		if name != f.Name {
			continue
		}
		list = append(list, *f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
