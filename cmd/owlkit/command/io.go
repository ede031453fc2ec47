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

package command

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"

	"github.com/owlkit/owlkit/clog"
	"github.com/owlkit/owlkit/internal/decompressor"
	"github.com/owlkit/owlkit/ontology"
	"github.com/owlkit/owlkit/rdfio"
)

const defaultDumpFormat = "turtle"

var errNoInput = errors.New("at least one input file must be specified")

// inputs collects the files given with -i followed by positional arguments.
func inputs(cmd *cobra.Command, args []string) []string {
	files, _ := cmd.Flags().GetStringArray(flagLoad)
	return append(files, args...)
}

// openInput opens a local file, an http(s) resource or stdin ("-").
// The returned reader is decompressed.
func openInput(cmd *cobra.Command, path string) (io.Reader, io.Closer, error) {
	var rc io.ReadCloser
	u, err := url.Parse(path)
	switch {
	case path == "-":
		rc = io.NopCloser(cmd.InOrStdin())
	case err == nil && (u.Scheme == "http" || u.Scheme == "https"):
		res, err := http.Get(path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not get resource <%s>: %w", u, err)
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, nil, fmt.Errorf("could not get resource <%s>: %s", u, res.Status)
		}
		rc = res.Body
	default:
		if err == nil && u.Scheme == "file" {
			path = filepath.Join(u.Host, u.Path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open file %q: %w", path, err)
		}
		rc = f
	}
	r, err := decompressor.New(rc)
	if err != nil {
		rc.Close()
		return nil, nil, err
	}
	return r, rc, nil
}

// inputFormat picks the explicit format if any, else the one matching the
// file name.
func inputFormat(path, format string) (string, error) {
	if format != "" {
		return format, nil
	}
	if u, err := url.Parse(path); err == nil && u.Path != "" {
		path = u.Path
	}
	if f := rdfio.FormatByFileName(path); f != nil && f.Reader != nil {
		return f.Name, nil
	}
	return "", fmt.Errorf("cannot detect the format of %q; use --%s", path, flagLoadFormat)
}

// load reads every input into a new ontology. The first input replaces the
// empty graph and decides the base namespace; the rest are merged into it.
func (e *env) load(cmd *cobra.Command, paths []string) (*ontology.Ontology, error) {
	if len(paths) == 0 {
		return nil, errNoInput
	}
	o := ontology.New(e.cfg.BaseURI)
	for i, path := range paths {
		format, err := inputFormat(path, e.cfg.LoadFormat)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		r, c, err := openInput(cmd, path)
		if err != nil {
			return nil, err
		}
		var n int
		if i == 0 {
			n, err = o.Load(r, format)
		} else {
			n, err = o.Merge(r, format)
		}
		c.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		clog.Infof("loaded %q (%d triples) in %v", path, n, time.Since(start))
	}
	return o, nil
}

// dump writes o to path, or to the command output when path is "-".
func (e *env) dump(cmd *cobra.Command, o *ontology.Ontology, path string) error {
	format := e.cfg.DumpFormat
	if path == "-" || path == "" {
		if format == "" {
			format = defaultDumpFormat
		}
		clog.Infof("writing %s to stdout", format)
		_, err := o.Export(cmd.OutOrStdout(), format)
		return err
	}
	if format == "" {
		if f := rdfio.FormatByFileName(path); f == nil || f.Writer == nil {
			clog.Warningf("file %q has an unknown extension; defaulting to %s", path, defaultDumpFormat)
			format = defaultDumpFormat
		}
	}
	clog.Infof("writing ontology to file %q", path)
	return o.ExportFile(path, format)
}

// printJSON writes v as JSON, indented when the pretty option is set.
func (e *env) printJSON(cmd *cobra.Command, v any) error {
	opts := []json.Options{json.Deterministic(true)}
	if e.cfg.Pretty {
		opts = append(opts, jsontext.WithIndent("  "))
	}
	w := cmd.OutOrStdout()
	if err := json.MarshalWrite(w, v, opts...); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
