// Package skos contains constants of the Simple Knowledge Organization System (SKOS)
package skos

import "github.com/owlkit/owlkit/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2004/02/skos/core#`
	Prefix = `skos:`
)

const (
	PrefLabel  = NS + "prefLabel"
	AltLabel   = NS + "altLabel"
	Definition = NS + "definition"
	Example    = NS + "example"
	Note       = NS + "note"
)
