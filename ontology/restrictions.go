package ontology

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/clog"
	"github.com/owlkit/owlkit/voc/xsd"
)

// Restriction is the flattened view of a property restriction.
type Restriction struct {
	Type      RestrictionKind `json:"type"`
	Property  string          `json:"property"`
	Value     string          `json:"value"`
	OnClass   string          `json:"on_class,omitempty"`
	AppliedTo []string        `json:"applied_to"`
}

// AddRestriction attaches a new restriction on property to class.
//
// The value is a class name for someValuesFrom and allValuesFrom, a
// non-negative integer for the cardinality kinds, and for hasValue either an
// IRI (when it starts with "http") or a plain literal. onClass qualifies the
// qualified cardinality kinds and is ignored otherwise.
func (o *Ontology) AddRestriction(class, property string, kind RestrictionKind, value, onClass string) (quad.BNode, error) {
	pred, ok := kind.Predicate()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRestrictionType, kind)
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	var v quad.Value
	switch {
	case kind == HasValue:
		if strings.HasPrefix(value, "http") {
			v = o.resolve(value)
		} else {
			v = quad.String(value)
		}
	case kind.cardinality():
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 63)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidCardinality, value)
		}
		v = quad.TypedString{Value: quad.String(strconv.FormatUint(n, 10)), Type: xsd.NonNegativeInteger}
	default:
		v = o.resolve(value)
	}

	r := quad.RandomBlankNode()
	o.g.Add(r, rdfType, owlRestrict)
	o.g.Add(r, owlOnProp, o.resolve(property))
	o.g.Add(r, pred, v)
	if kind.qualified() && onClass != "" {
		o.g.Add(r, owlOnClass, o.resolve(onClass))
	}
	o.g.Add(o.resolve(class), subClassOf, r)
	if clog.V(2) {
		clog.Infof("ontology: %s restriction %s on %s", kind, r, class)
	}
	return r, nil
}

// Restrictions lists restrictions in insertion order. A non-empty class, given
// as a name or an IRI, keeps only those applied to a class of the same local
// name. Restriction nodes without owl:onProperty are skipped.
func (o *Ontology) Restrictions(class string) []Restriction {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := []Restriction{}
	want := o.filterName(class)
	for _, r := range o.g.Subjects(rdfType, owlRestrict) {
		prop := o.g.Value(r, owlOnProp)
		if prop == nil {
			continue
		}
		v := Restriction{
			Property:  localName(prop),
			AppliedTo: localNames(o.g.Subjects(subClassOf, r)),
		}
		for _, k := range restrictionKinds {
			if val := o.g.Value(r, k.pred); val != nil {
				v.Type, v.Value = k.kind, localName(val)
				break
			}
		}
		if oc := o.g.Value(r, owlOnClass); oc != nil {
			v.OnClass = localName(oc)
		}
		if want != "" && !contains(v.AppliedTo, want) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DeleteRestriction detaches and removes the first restriction, in insertion
// order, that is applied to class, constrains property and has a value for
// kind. It reports whether one was found.
func (o *Ontology) DeleteRestriction(class, property string, kind RestrictionKind) bool {
	pred, ok := kind.Predicate()
	if !ok {
		return false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	c, p := o.resolve(class), o.resolve(property)
	for _, r := range o.g.Subjects(rdfType, owlRestrict) {
		if o.g.Value(r, owlOnProp) != quad.Value(p) {
			continue
		}
		if !o.g.Contains(c, subClassOf, r) || o.g.Value(r, pred) == nil {
			continue
		}
		o.g.Remove(c, subClassOf, r)
		o.g.Remove(r, nil, nil)
		return true
	}
	return false
}
