// Package dcterms contains constants of the DCMI Metadata Terms
package dcterms

import "github.com/owlkit/owlkit/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://purl.org/dc/terms/`
	Prefix = `dcterms:`
)

const (
	Title       = NS + "title"
	Description = NS + "description"
	Creator     = NS + "creator"
	Contributor = NS + "contributor"
	Date        = NS + "date"
)
