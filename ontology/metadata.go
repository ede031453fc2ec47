package ontology

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/voc/dcterms"
	"github.com/owlkit/owlkit/voc/owl"
)

var (
	dctermsCreator = quad.IRI(dcterms.Creator)
	owlVersionIRI  = quad.IRI(owl.VersionIRI)
	owlImports     = quad.IRI(owl.Imports)
)

// Metadata describes the ontology node. Empty fields are unset.
type Metadata struct {
	Label      string `json:"label,omitempty"`
	Comment    string `json:"comment,omitempty"`
	Creator    string `json:"creator,omitempty"`
	VersionIRI string `json:"version_iri,omitempty"`
}

// Canonical metadata keys.
const (
	MetaLabel      = "label"
	MetaComment    = "comment"
	MetaCreator    = "creator"
	MetaVersionIRI = "version_iri"
)

var metadataAliases = map[string]string{
	MetaLabel:      MetaLabel,
	MetaComment:    MetaComment,
	MetaCreator:    MetaCreator,
	MetaVersionIRI: MetaVersionIRI,
	"title":        MetaLabel,
	"description":  MetaComment,
	"version":      MetaVersionIRI,
}

// MetadataField returns the canonical key for a metadata field name. The
// older names title, description and version are accepted as aliases of
// label, comment and version_iri.
func MetadataField(key string) (string, error) {
	if k, ok := metadataAliases[key]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetadata, key)
}

func metadataPredicate(key string) quad.IRI {
	switch key {
	case MetaLabel:
		return rdfsLabel
	case MetaComment:
		return rdfsComment
	case MetaCreator:
		return dctermsCreator
	}
	return owlVersionIRI
}

// SetMetadata replaces the non-empty fields of m on the ontology node.
func (o *Ontology) SetMetadata(m Metadata) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for key, v := range map[string]string{
		MetaLabel: m.Label, MetaComment: m.Comment, MetaCreator: m.Creator, MetaVersionIRI: m.VersionIRI,
	} {
		if v != "" {
			o.setMetadata(key, v)
		}
	}
}

func (o *Ontology) setMetadata(key, v string) {
	p := metadataPredicate(key)
	if key == MetaVersionIRI {
		o.g.Set(o.iri, p, quad.IRI(v))
		return
	}
	o.g.Set(o.iri, p, quad.String(v))
}

// SetMetadataField sets one field by canonical key or alias. An empty value
// removes the field.
func (o *Ontology) SetMetadataField(key, value string) error {
	k, err := MetadataField(key)
	if err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if value == "" {
		o.g.Remove(o.iri, metadataPredicate(k), nil)
		return nil
	}
	o.setMetadata(k, value)
	return nil
}

// Metadata reads the metadata of the ontology node.
func (o *Ontology) Metadata() Metadata {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return Metadata{
		Label:      text(o.g.Value(o.iri, rdfsLabel)),
		Comment:    text(o.g.Value(o.iri, rdfsComment)),
		Creator:    text(o.g.Value(o.iri, dctermsCreator)),
		VersionIRI: text(o.g.Value(o.iri, owlVersionIRI)),
	}
}

// AddImport declares an owl:imports of another ontology.
func (o *Ontology) AddImport(iri string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.g.Add(o.iri, owlImports, quad.IRI(iri))
}

// RemoveImport retracts an owl:imports.
func (o *Ontology) RemoveImport(iri string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.g.Remove(o.iri, owlImports, quad.IRI(iri))
}

// Imports lists the imported ontologies in insertion order.
func (o *Ontology) Imports() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := []string{}
	for _, v := range o.g.Objects(o.iri, owlImports) {
		out = append(out, text(v))
	}
	return out
}
