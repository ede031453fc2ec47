package rdfio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/cayleygraph/quad"
	knakk "github.com/knakk/rdf"

	"github.com/owlkit/owlkit/voc"
)

func init() {
	RegisterFormat(Format{
		Name:    "turtle",
		Aliases: []string{"ttl"},
		Ext:     []string{".ttl"},
		Mime:    []string{"text/turtle", "application/x-turtle"},
		Reader: func(r io.Reader) Reader {
			return newKnakkReader(r, knakk.Turtle)
		},
		Writer: func(w io.Writer, ns *voc.Namespaces) Writer {
			return NewTurtleWriter(w, ns)
		},
	})
	// N3 documents are read with the Turtle grammar; Turtle output is valid N3.
	RegisterFormat(Format{
		Name: "n3",
		Ext:  []string{".n3"},
		Mime: []string{"text/n3", "text/rdf+n3"},
		Reader: func(r io.Reader) Reader {
			return newKnakkReader(r, knakk.Turtle)
		},
		Writer: func(w io.Writer, ns *voc.Namespaces) Writer {
			return NewTurtleWriter(w, ns)
		},
	})
}

type knakkReader struct {
	dec knakk.TripleDecoder
}

func newKnakkReader(r io.Reader, f knakk.Format) *knakkReader {
	return &knakkReader{dec: knakk.NewTripleDecoder(r, f)}
}

func (r *knakkReader) ReadQuad() (quad.Quad, error) {
	t, err := r.dec.Decode()
	if err != nil {
		return quad.Quad{}, err
	}
	return quad.Quad{
		Subject:   fromKnakk(t.Subj),
		Predicate: fromKnakk(t.Pred),
		Object:    fromKnakk(t.Obj),
	}, nil
}

func (r *knakkReader) Close() error { return nil }

// TurtleWriter writes triples as Turtle. Bound prefixes are declared in the header.
type TurtleWriter struct {
	w       *bufio.Writer
	ns      *voc.Namespaces
	enc     *knakk.TripleEncoder
	filter  *directiveFilter
	bnodes  *bnodeMap
	started bool
	err     error
}

func NewTurtleWriter(w io.Writer, ns *voc.Namespaces) *TurtleWriter {
	bw := bufio.NewWriter(w)
	filter := &directiveFilter{w: bw}
	enc := knakk.NewTripleEncoder(filter, knakk.Turtle)
	enc.GenerateNamespaces = false
	if ns != nil {
		for _, b := range ns.Bindings() {
			if b.Namespace == "" {
				continue
			}
			if _, ok := enc.Namespaces[b.Namespace]; !ok {
				enc.Namespaces[b.Namespace] = b.Prefix
			}
		}
	}
	return &TurtleWriter{
		w:      bw,
		ns:     ns,
		enc:    enc,
		filter: filter,
		bnodes: newBNodeMap("b"),
	}
}

// directiveFilter drops the @prefix lines the encoder emits on the first use
// of a namespace. Every namespace it knows is already in the header.
type directiveFilter struct {
	w    io.Writer
	line []byte
}

var prefixDirective = []byte("@prefix ")

func (f *directiveFilter) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) != 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			f.line = append(f.line, p...)
			break
		}
		f.line = append(f.line, p[:i+1]...)
		p = p[i+1:]
		if err := f.flush(); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func (f *directiveFilter) flush() error {
	line := f.line
	f.line = f.line[:0]
	if len(line) == 0 || bytes.HasPrefix(line, prefixDirective) {
		return nil
	}
	_, err := f.w.Write(line)
	return err
}

func (w *TurtleWriter) header() {
	w.started = true
	if w.ns == nil {
		return
	}
	for _, b := range w.ns.Bindings() {
		if b.Namespace == "" {
			continue
		}
		if _, err := fmt.Fprintf(w.w, "@prefix %s: <%s> .\n", b.Prefix, b.Namespace); err != nil {
			w.err = err
			return
		}
	}
	if w.ns.Len() != 0 {
		_, w.err = w.w.WriteString("\n")
	}
}

func (w *TurtleWriter) WriteQuad(q quad.Quad) error {
	if w.err != nil {
		return w.err
	}
	if !w.started {
		if w.header(); w.err != nil {
			return w.err
		}
	}
	t, err := knakkTriple(q, w.bnodes)
	if err != nil {
		return err
	}
	w.err = w.enc.Encode(t)
	return w.err
}

func (w *TurtleWriter) Close() error {
	if w.err != nil {
		return w.err
	}
	if !w.started {
		w.header()
	}
	if err := w.enc.Close(); err != nil {
		return err
	}
	if err := w.filter.flush(); err != nil {
		return err
	}
	return w.w.Flush()
}

func knakkTriple(q quad.Quad, bnodes *bnodeMap) (knakk.Triple, error) {
	var t knakk.Triple
	switch q.Subject.(type) {
	case quad.IRI, quad.BNode:
	default:
		return t, ErrLiteralSubject
	}
	s, err := toKnakk(q.Subject, bnodes)
	if err != nil {
		return t, err
	}
	p, err := toKnakk(q.Predicate, bnodes)
	if err != nil {
		return t, err
	}
	o, err := toKnakk(q.Object, bnodes)
	if err != nil {
		return t, err
	}
	pred, ok := p.(knakk.IRI)
	if !ok {
		return t, fmt.Errorf("predicate %v is not an IRI", q.Predicate)
	}
	t.Subj = s.(knakk.Subject)
	t.Pred = pred
	t.Obj = o.(knakk.Object)
	return t, nil
}
