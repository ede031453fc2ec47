package ontology

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/owlkit/owlkit/clog"
	"github.com/owlkit/owlkit/graph"
	"github.com/owlkit/owlkit/internal/decompressor"
	"github.com/owlkit/owlkit/rdfio"
	"github.com/owlkit/owlkit/voc"
)

// formats whose prefix declarations are kept for display
func declaresPrefixes(format string) bool {
	f := rdfio.FormatByName(format)
	return f != nil && (f.Name == "turtle" || f.Name == "n3")
}

// Load replaces the content of the ontology with a parsed document and
// derives the base URI from its ontology node. On error nothing changes.
// It returns the number of loaded triples.
func (o *Ontology) Load(r io.Reader, format string) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, &rdfio.ParseError{Format: format, Err: err}
	}
	g := graph.New()
	n, err := rdfio.Load(g, bytes.NewReader(data), format)
	if err != nil {
		return 0, err
	}
	var prefixes []voc.Binding
	if declaresPrefixes(format) {
		prefixes = rdfio.ExtractPrefixes(data)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.g = g
	o.loaded = prefixes
	o.ns = voc.NewNamespaces()
	for _, b := range prefixes {
		p := b.Prefix
		if p == voc.DefaultPrefix {
			p = ""
		}
		o.ns.Bind(p, b.Namespace)
	}
	o.deriveNamespace()
	if _, ok := o.ns.Lookup(""); !ok {
		o.ns.Bind("", o.base)
	}
	return n, nil
}

// LoadString is Load from a string.
func (o *Ontology) LoadString(data, format string) (int, error) {
	return o.Load(strings.NewReader(data), format)
}

// LoadFile loads a file, transparently decompressing gzip and bzip2 content.
// An empty format is chosen from the file name.
func (o *Ontology) LoadFile(path, format string) (int, error) {
	if format == "" {
		f := rdfio.FormatByFileName(path)
		if f == nil {
			return 0, &rdfio.ParseError{Format: filepath.Ext(path), Err: rdfio.ErrUnknownFormat}
		}
		format = f.Name
	}
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	r, err := decompressor.New(file)
	if err != nil {
		return 0, &rdfio.ParseError{Format: format, Err: err}
	}
	n, err := o.Load(r, format)
	if err == nil && clog.V(1) {
		clog.Infof("ontology: loaded %d triples from %s", n, path)
	}
	return n, err
}

// Merge adds the triples of a document to the ontology without touching the
// base URI. Anonymous nodes of the document never collide with existing ones.
func (o *Ontology) Merge(r io.Reader, format string) (int, error) {
	quads, err := rdfio.ReadAll(r, format)
	if err != nil {
		return 0, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, q := range quads {
		if o.g.AddQuad(q) {
			n++
		}
	}
	return n, nil
}

// Export writes every triple in the given format using the bound prefixes.
func (o *Ontology) Export(w io.Writer, format string) (int, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return rdfio.Dump(o.g, w, format, o.ns)
}

// ExportString is Export into a string.
func (o *Ontology) ExportString(format string) (string, error) {
	var buf bytes.Buffer
	if _, err := o.Export(&buf, format); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportFile writes the ontology to path, gzip compressed when the name ends
// in ".gz". An empty format is chosen from the file name.
func (o *Ontology) ExportFile(path, format string) (err error) {
	if format == "" {
		f := rdfio.FormatByFileName(path)
		if f == nil {
			return &rdfio.SerializeError{Format: filepath.Ext(path), Err: rdfio.ErrUnknownFormat}
		}
		format = f.Name
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	var w io.Writer = file
	if strings.HasSuffix(path, ".gz") {
		zw := gzip.NewWriter(file)
		defer func() {
			if cerr := zw.Close(); err == nil {
				err = cerr
			}
		}()
		w = zw
	}
	_, err = o.Export(w, format)
	return err
}
