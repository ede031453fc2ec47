package rdfio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/cayleygraph/quad"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/piprate/json-gold/ld"

	"github.com/owlkit/owlkit/voc"
)

func init() {
	RegisterFormat(Format{
		Name:    "json-ld",
		Aliases: []string{"jsonld"},
		Ext:     []string{".jsonld"},
		Mime:    []string{"application/ld+json"},
		Reader: func(r io.Reader) Reader {
			return NewJSONLDReader(r)
		},
		Writer: func(w io.Writer, ns *voc.Namespaces) Writer {
			return NewJSONLDWriter(w, ns)
		},
	})
}

// JSONLDReader expands a JSON-LD document into triples. Named graphs are merged.
type JSONLDReader struct {
	r     io.Reader
	quads []quad.Quad
	n     int
	err   error
	read  bool
}

func NewJSONLDReader(r io.Reader) *JSONLDReader {
	return &JSONLDReader{r: r}
}

func (r *JSONLDReader) decode() error {
	data, err := io.ReadAll(r.r)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	out, err := proc.ToRDF(doc, opts)
	if err != nil {
		return err
	}
	dataset, ok := out.(*ld.RDFDataset)
	if !ok {
		return fmt.Errorf("unexpected RDF dataset type: %T", out)
	}
	names := make([]string, 0, len(dataset.Graphs))
	for name := range dataset.Graphs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, q := range dataset.Graphs[name] {
			r.quads = append(r.quads, quad.Quad{
				Subject:   fromLD(q.Subject),
				Predicate: fromLD(q.Predicate),
				Object:    fromLD(q.Object),
			})
		}
	}
	return nil
}

func (r *JSONLDReader) ReadQuad() (quad.Quad, error) {
	if !r.read {
		r.read = true
		r.err = r.decode()
	}
	if r.err != nil {
		return quad.Quad{}, r.err
	}
	if r.n >= len(r.quads) {
		return quad.Quad{}, io.EOF
	}
	q := r.quads[r.n]
	r.n++
	return q, nil
}

func (r *JSONLDReader) Close() error { return nil }

// JSONLDWriter writes a compacted JSON-LD document using the bound prefixes as context.
// Triples are buffered until Close.
type JSONLDWriter struct {
	w       io.Writer
	ns      *voc.Namespaces
	dataset *ld.RDFDataset
	bnodes  *bnodeMap
	closed  bool
}

func NewJSONLDWriter(w io.Writer, ns *voc.Namespaces) *JSONLDWriter {
	return &JSONLDWriter{
		w:       w,
		ns:      ns,
		dataset: ld.NewRDFDataset(),
		bnodes:  newBNodeMap("b"),
	}
}

func (w *JSONLDWriter) WriteQuad(q quad.Quad) error {
	if w.closed {
		return errors.New("jsonld: write to closed writer")
	}
	switch q.Subject.(type) {
	case quad.IRI, quad.BNode:
	default:
		return ErrLiteralSubject
	}
	const def = "@default"
	w.dataset.Graphs[def] = append(w.dataset.Graphs[def], ld.NewQuad(
		toLD(q.Subject, w.bnodes),
		toLD(q.Predicate, w.bnodes),
		toLD(q.Object, w.bnodes),
		def,
	))
	return nil
}

func (w *JSONLDWriter) context() map[string]any {
	ctx := make(map[string]any)
	if w.ns == nil {
		return ctx
	}
	for _, b := range w.ns.Bindings() {
		if b.Prefix == "" || b.Namespace == "" {
			continue
		}
		ctx[b.Prefix] = b.Namespace
	}
	return ctx
}

func (w *JSONLDWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	opts := ld.NewJsonLdOptions("")
	// the processor's FromRDF only accepts serialized input
	expanded, err := ld.NewJsonLdApi().FromRDF(w.dataset, opts)
	if err != nil {
		return err
	}
	ctx := w.context()
	var doc any = expanded
	if len(ctx) != 0 {
		compacted, err := ld.NewJsonLdProcessor().Compact(expanded, map[string]any{"@context": ctx}, opts)
		if err != nil {
			return err
		}
		doc = compacted
	}
	bw := bufio.NewWriter(w.w)
	if err := json.MarshalWrite(bw, doc, json.Deterministic(true), jsontext.WithIndent("  ")); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
