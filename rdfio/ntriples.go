package rdfio

import (
	"io"

	"github.com/cayleygraph/quad/nquads"

	"github.com/owlkit/owlkit/voc"
)

func init() {
	RegisterFormat(Format{
		Name:    "nt",
		Aliases: []string{"ntriples", "n-triples"},
		Ext:     []string{".nt"},
		Mime:    []string{"application/n-triples"},
		Reader: func(r io.Reader) Reader {
			// raw keeps typed literals as written
			return nquads.NewReader(r, true)
		},
		Writer: func(w io.Writer, _ *voc.Namespaces) Writer {
			return nquads.NewWriter(w)
		},
	})
}
