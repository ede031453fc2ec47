package rdfio

import (
	"fmt"
	"io"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/clog"
	"github.com/owlkit/owlkit/graph"
	"github.com/owlkit/owlkit/voc"
)

// ReadAll decodes a whole document in the given format. Blank node labels of
// the document are replaced by fresh ones, so the result can be merged into a
// store that already holds anonymous nodes.
func ReadAll(r io.Reader, format string) ([]quad.Quad, error) {
	f := FormatByName(format)
	if f == nil {
		return nil, &ParseError{Format: format, Err: ErrUnknownFormat}
	} else if f.Reader == nil {
		return nil, &ParseError{Format: f.Name, Err: ErrNotSupported}
	}
	qr := f.Reader(r)
	defer qr.Close()

	bnodes := make(map[quad.BNode]quad.BNode)
	fresh := func(v quad.Value) quad.Value {
		b, ok := v.(quad.BNode)
		if !ok {
			return v
		}
		nb, ok := bnodes[b]
		if !ok {
			nb = quad.RandomBlankNode()
			bnodes[b] = nb
		}
		return nb
	}
	var out []quad.Quad
	for {
		q, err := qr.ReadQuad()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, &ParseError{Format: f.Name, Err: err}
		}
		q = normalizeQuad(q)
		if !graph.IsResource(q.Subject) {
			return nil, &ParseError{Format: f.Name, Err: fmt.Errorf("%w: %v", ErrLiteralSubject, q.Subject)}
		}
		if _, ok := q.Predicate.(quad.IRI); !ok || q.Object == nil {
			return nil, &ParseError{Format: f.Name, Err: fmt.Errorf("invalid triple %v", q)}
		}
		q.Subject, q.Object = fresh(q.Subject), fresh(q.Object)
		out = append(out, q)
	}
	return out, nil
}

// Load parses a document and adds its triples to g. On a parse error the store
// is left untouched. It returns the number of triples that were new to g.
func Load(g *graph.Store, r io.Reader, format string) (int, error) {
	quads, err := ReadAll(r, format)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, q := range quads {
		if g.AddQuad(q) {
			n++
		}
	}
	if clog.V(1) {
		clog.Infof("rdfio: loaded %d of %d %s triples", n, len(quads), format)
	}
	return n, nil
}

// Dump writes every triple of g in the given format and returns the number of
// written triples. Prefix bindings may be nil.
func Dump(g *graph.Store, w io.Writer, format string, ns *voc.Namespaces) (int, error) {
	f := FormatByName(format)
	if f == nil {
		return 0, &SerializeError{Format: format, Err: ErrUnknownFormat}
	} else if f.Writer == nil {
		return 0, &SerializeError{Format: f.Name, Err: ErrNotSupported}
	}
	return Copy(f.Writer(w, ns), g.Match(nil, nil, nil), f.Name)
}

// Copy writes all triples of the iterator to qw and closes it.
func Copy(qw Writer, it *graph.Iterator, format string) (int, error) {
	n := 0
	for it.Next() {
		if err := qw.WriteQuad(it.Result()); err != nil {
			qw.Close()
			return n, &SerializeError{Format: format, Err: err}
		}
		n++
	}
	if err := qw.Close(); err != nil {
		return n, &SerializeError{Format: format, Err: err}
	}
	if clog.V(1) {
		clog.Infof("rdfio: wrote %d %s triples", n, format)
	}
	return n, nil
}
