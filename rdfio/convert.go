package rdfio

import (
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"
	knakk "github.com/knakk/rdf"
	"github.com/piprate/json-gold/ld"

	rdfvoc "github.com/owlkit/owlkit/voc/rdf"
	"github.com/owlkit/owlkit/voc/xsd"
)

// Normalize returns the canonical term for v: xsd:string typed literals become
// plain literals and native values become typed literals.
func Normalize(v quad.Value) quad.Value {
	switch t := v.(type) {
	case nil:
		return nil
	case quad.IRI, quad.BNode, quad.String:
		return v
	case quad.LangString:
		if t.Lang == "" {
			return t.Value
		}
		return t
	case quad.TypedString:
		if t.Type == xsd.String || t.Type == "" {
			return t.Value
		}
		if t.Type == rdfvoc.LangString {
			return t.Value
		}
		return t
	case quad.TypedStringer:
		return Normalize(t.TypedString())
	}
	return quad.String(v.String())
}

func normalizeQuad(q quad.Quad) quad.Quad {
	return quad.Quad{
		Subject:   Normalize(q.Subject),
		Predicate: Normalize(q.Predicate),
		Object:    Normalize(q.Object),
	}
}

// bnodeMap assigns short sequential labels to blank nodes.
type bnodeMap struct {
	prefix string
	ids    map[quad.BNode]string
}

func newBNodeMap(prefix string) *bnodeMap {
	return &bnodeMap{prefix: prefix, ids: make(map[quad.BNode]string)}
}

func (m *bnodeMap) Get(b quad.BNode) string {
	id, ok := m.ids[b]
	if !ok {
		id = m.prefix + strconv.Itoa(len(m.ids))
		m.ids[b] = id
	}
	return id
}

// fromKnakk converts a term produced by knakk/rdf decoders.
func fromKnakk(t knakk.Term) quad.Value {
	switch v := t.(type) {
	case knakk.IRI:
		return quad.IRI(v.String())
	case knakk.Blank:
		return quad.BNode(strings.TrimPrefix(v.String(), "_:"))
	case knakk.Literal:
		if lang := v.Lang(); lang != "" {
			return quad.LangString{Value: quad.String(v.String()), Lang: lang}
		}
		return Normalize(quad.TypedString{Value: quad.String(v.String()), Type: quad.IRI(v.DataType.String())})
	}
	return nil
}

// toKnakk converts a term for knakk/rdf encoders. Blank node labels are remapped.
func toKnakk(v quad.Value, bnodes *bnodeMap) (knakk.Term, error) {
	switch t := v.(type) {
	case quad.IRI:
		return knakk.NewIRI(string(t))
	case quad.BNode:
		return knakk.NewBlank(bnodes.Get(t))
	case quad.String:
		return knakk.NewLiteral(string(t))
	case quad.LangString:
		return knakk.NewLangLiteral(string(t.Value), t.Lang)
	case quad.TypedString:
		dt, err := knakk.NewIRI(string(t.Type))
		if err != nil {
			return nil, err
		}
		return knakk.NewTypedLiteral(string(t.Value), dt), nil
	}
	return knakk.NewLiteral(v.String())
}

// fromLD converts a json-gold node.
func fromLD(n ld.Node) quad.Value {
	switch {
	case n == nil:
		return nil
	case ld.IsIRI(n):
		return quad.IRI(n.GetValue())
	case ld.IsBlankNode(n):
		return quad.BNode(strings.TrimPrefix(n.GetValue(), "_:"))
	case ld.IsLiteral(n):
		var lit ld.Literal
		switch l := n.(type) {
		case *ld.Literal:
			lit = *l
		case ld.Literal:
			lit = l
		}
		if lit.Language != "" {
			return quad.LangString{Value: quad.String(lit.Value), Lang: lit.Language}
		}
		return Normalize(quad.TypedString{Value: quad.String(lit.Value), Type: quad.IRI(lit.Datatype)})
	}
	return nil
}

// toLD converts a term for json-gold. Blank node labels are remapped.
func toLD(v quad.Value, bnodes *bnodeMap) ld.Node {
	switch t := v.(type) {
	case quad.IRI:
		return ld.NewIRI(string(t))
	case quad.BNode:
		return ld.NewBlankNode("_:" + bnodes.Get(t))
	case quad.String:
		return ld.NewLiteral(string(t), xsd.String, "")
	case quad.LangString:
		return ld.NewLiteral(string(t.Value), rdfvoc.LangString, t.Lang)
	case quad.TypedString:
		return ld.NewLiteral(string(t.Value), string(t.Type), "")
	}
	return ld.NewLiteral(v.String(), xsd.String, "")
}
