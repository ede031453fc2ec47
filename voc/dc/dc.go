// Package dc contains constants of the Dublin Core Metadata Element Set 1.1
package dc

import "github.com/owlkit/owlkit/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://purl.org/dc/elements/1.1/`
	Prefix = `dc:`
)

const (
	Title   = NS + "title"
	Creator = NS + "creator"
)
