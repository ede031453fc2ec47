package ontology

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/voc/owl"
)

// Severity of a validation issue.
type Severity string

const (
	Warning Severity = "warning"
	Info    Severity = "info"
)

// Issue kinds reported by Validate.
const (
	MissingLabel      = "missing_label"
	MissingDomain     = "missing_domain"
	MissingRange      = "missing_range"
	UntypedIndividual = "untyped_individual"
)

// Issue is a structural lint finding.
type Issue struct {
	Severity Severity `json:"severity"`
	Kind     string   `json:"type"`
	Subject  string   `json:"subject"`
	Message  string   `json:"message"`
}

// Validate reports classes without a label, properties without a domain or
// range and individuals without a class. It does not check consistency.
func (o *Ontology) Validate() []Issue {
	o.mu.RLock()
	defer o.mu.RUnlock()
	issues := []Issue{}
	add := func(sev Severity, kind string, s quad.IRI, format string) {
		n := LocalName(s)
		issues = append(issues, Issue{Severity: sev, Kind: kind, Subject: n, Message: fmt.Sprintf(format, n)})
	}
	for _, c := range o.named(owl.Class) {
		if o.g.Value(c, rdfsLabel) == nil {
			add(Warning, MissingLabel, c, "Class '%s' has no label")
		}
	}
	for _, p := range o.named(owl.ObjectProperty) {
		if o.g.Value(p, rdfsDomain) == nil {
			add(Info, MissingDomain, p, "Object property '%s' has no domain")
		}
		if o.g.Value(p, rdfsRange) == nil {
			add(Info, MissingRange, p, "Object property '%s' has no range")
		}
	}
	for _, p := range o.named(owl.DatatypeProperty) {
		if o.g.Value(p, rdfsDomain) == nil {
			add(Info, MissingDomain, p, "Data property '%s' has no domain")
		}
	}
	for _, ind := range o.named(owl.NamedIndividual) {
		typed := false
		for _, c := range o.g.Objects(ind, rdfType) {
			if c != quad.Value(owlNamedInd) {
				typed = true
				break
			}
		}
		if !typed {
			add(Warning, UntypedIndividual, ind, "Individual '%s' has no class type")
		}
	}
	return issues
}
