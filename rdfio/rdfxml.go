package rdfio

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/cayleygraph/quad"
	knakk "github.com/knakk/rdf"

	"github.com/owlkit/owlkit/voc"
	rdfvoc "github.com/owlkit/owlkit/voc/rdf"
)

func init() {
	RegisterFormat(Format{
		Name:    "xml",
		Aliases: []string{"rdfxml", "rdf/xml", "owl"},
		Ext:     []string{".owl", ".rdf", ".xml"},
		Mime:    []string{"application/rdf+xml"},
		Reader: func(r io.Reader) Reader {
			return newKnakkReader(r, knakk.RDFXML)
		},
		Writer: func(w io.Writer, ns *voc.Namespaces) Writer {
			return NewRDFXMLWriter(w, ns)
		},
	})
}

// RDFXMLWriter writes triples as striped RDF/XML, one rdf:Description per subject.
// Triples are buffered until Close.
type RDFXMLWriter struct {
	w  io.Writer
	ns *voc.Namespaces

	subjects []quad.Value
	bySubj   map[quad.Value][]quad.Quad
	closed   bool
}

func NewRDFXMLWriter(w io.Writer, ns *voc.Namespaces) *RDFXMLWriter {
	return &RDFXMLWriter{w: w, ns: ns, bySubj: make(map[quad.Value][]quad.Quad)}
}

func (w *RDFXMLWriter) WriteQuad(q quad.Quad) error {
	if w.closed {
		return io.ErrClosedPipe
	}
	switch q.Subject.(type) {
	case quad.IRI, quad.BNode:
	default:
		return ErrLiteralSubject
	}
	if _, ok := q.Predicate.(quad.IRI); !ok {
		return fmt.Errorf("predicate %v is not an IRI", q.Predicate)
	}
	if _, ok := w.bySubj[q.Subject]; !ok {
		w.subjects = append(w.subjects, q.Subject)
	}
	w.bySubj[q.Subject] = append(w.bySubj[q.Subject], q)
	return nil
}

// qnames maps predicate namespaces to XML prefixes.
type qnames struct {
	byNS  map[string]string
	used  map[string]bool
	order []voc.Binding
}

func newQNames(ns *voc.Namespaces) *qnames {
	q := &qnames{byNS: make(map[string]string), used: make(map[string]bool)}
	q.bind("rdf", rdfvoc.NS)
	if ns != nil {
		for _, b := range ns.Bindings() {
			if b.Prefix == "" || !isNCName(b.Prefix) {
				continue
			}
			if _, ok := q.byNS[b.Namespace]; !ok && !q.used[b.Prefix] {
				q.bind(b.Prefix, b.Namespace)
			}
		}
	}
	return q
}

func (q *qnames) bind(prefix, ns string) {
	q.byNS[ns] = prefix
	q.used[prefix] = true
	q.order = append(q.order, voc.Binding{Prefix: prefix, Namespace: ns})
}

// name returns the qualified element name of a predicate, binding a new prefix when needed.
func (q *qnames) name(iri quad.IRI) (string, error) {
	s := string(iri)
	i := len(s)
	for i > 0 && isNameRune(rune(s[i-1])) {
		i--
	}
	// the local part must start with a name start character
	for i < len(s) && !isNameStart(rune(s[i])) {
		i++
	}
	if i == 0 || i == len(s) {
		return "", fmt.Errorf("%w: <%s>", ErrInvalidName, s)
	}
	ns, local := s[:i], s[i:]
	prefix, ok := q.byNS[ns]
	if !ok {
		for n := len(q.order); ; n++ {
			prefix = "ns" + strconv.Itoa(n)
			if !q.used[prefix] {
				break
			}
		}
		q.bind(prefix, ns)
	}
	return prefix + ":" + local, nil
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameRune(r rune) bool {
	return isNameStart(r) || r == '-' || r == '.' || unicode.IsDigit(r)
}

func isNCName(s string) bool {
	for i, r := range s {
		if i == 0 && !isNameStart(r) {
			return false
		}
		if !isNameRune(r) {
			return false
		}
	}
	return s != ""
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func (w *RDFXMLWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	// resolve all element names first; the root element declares every prefix
	names := newQNames(w.ns)
	elems := make(map[quad.IRI]string)
	for _, s := range w.subjects {
		for _, q := range w.bySubj[s] {
			p := q.Predicate.(quad.IRI)
			if _, ok := elems[p]; ok {
				continue
			}
			name, err := names.name(p)
			if err != nil {
				return err
			}
			elems[p] = name
		}
	}

	bw := bufio.NewWriter(w.w)
	if _, err := bw.WriteString(xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(bw)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: "rdf:RDF"}}
	for _, b := range names.order {
		root.Attr = append(root.Attr, attr("xmlns:"+b.Prefix, b.Namespace))
	}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	bnodes := newBNodeMap("b")
	for _, s := range w.subjects {
		desc := xml.StartElement{Name: xml.Name{Local: "rdf:Description"}}
		switch v := s.(type) {
		case quad.IRI:
			desc.Attr = []xml.Attr{attr("rdf:about", string(v))}
		case quad.BNode:
			desc.Attr = []xml.Attr{attr("rdf:nodeID", bnodes.Get(v))}
		}
		if err := enc.EncodeToken(desc); err != nil {
			return err
		}
		for _, q := range w.bySubj[s] {
			if err := encodeProperty(enc, elems[q.Predicate.(quad.IRI)], q.Object, bnodes); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(desc.End()); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	return bw.Flush()
}

func encodeProperty(enc *xml.Encoder, name string, o quad.Value, bnodes *bnodeMap) error {
	el := xml.StartElement{Name: xml.Name{Local: name}}
	var text string
	switch v := o.(type) {
	case quad.IRI:
		el.Attr = []xml.Attr{attr("rdf:resource", string(v))}
	case quad.BNode:
		el.Attr = []xml.Attr{attr("rdf:nodeID", bnodes.Get(v))}
	case quad.String:
		text = string(v)
	case quad.LangString:
		el.Attr = []xml.Attr{attr("xml:lang", v.Lang)}
		text = string(v.Value)
	case quad.TypedString:
		el.Attr = []xml.Attr{attr("rdf:datatype", string(v.Type))}
		text = string(v.Value)
	case nil:
		return fmt.Errorf("missing object for %s", name)
	default:
		return encodeProperty(enc, name, Normalize(o), bnodes)
	}
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	if text != "" {
		if err := enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}
	return enc.EncodeToken(el.End())
}
