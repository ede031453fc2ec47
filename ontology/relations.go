package ontology

import (
	"github.com/cayleygraph/quad"
)

// RelationRecord is one binary axiom between two named entities.
type RelationRecord struct {
	Subject  string   `json:"subject"`
	Relation Relation `json:"relation"`
	Object   string   `json:"object"`
}

// Relations groups the relation records by entity kind.
type Relations struct {
	Class      []RelationRecord `json:"class_relations"`
	Property   []RelationRecord `json:"property_relations"`
	Individual []RelationRecord `json:"individual_relations"`
}

func (o *Ontology) addRelation(t relationTable, a string, rel Relation, b string) error {
	p, err := t.lookup(rel)
	if err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.g.Add(o.resolve(a), p, o.resolve(b))
	return nil
}

func (o *Ontology) removeRelation(t relationTable, a string, rel Relation, b string) error {
	p, err := t.lookup(rel)
	if err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.g.Remove(o.resolve(a), p, o.resolve(b))
	return nil
}

// relations lists the relations of t between named resources, in table
// order. A non-empty filter keeps records where it is the subject or object.
func (o *Ontology) relations(t relationTable, filter string) []RelationRecord {
	out := []RelationRecord{}
	for _, e := range t {
		it := o.g.Match(nil, e.pred, nil)
		for it.Next() {
			q := it.Result()
			s, ok1 := q.Subject.(quad.IRI)
			obj, ok2 := q.Object.(quad.IRI)
			if !ok1 || !ok2 {
				continue
			}
			r := RelationRecord{Subject: LocalName(s), Relation: e.rel, Object: LocalName(obj)}
			if filter != "" && r.Subject != filter && r.Object != filter {
				continue
			}
			out = append(out, r)
		}
	}
	return out
}

// AddClassRelation asserts subClassOf, equivalentClass or disjointWith.
func (o *Ontology) AddClassRelation(a string, rel Relation, b string) error {
	return o.addRelation(classRelations, a, rel, b)
}

// RemoveClassRelation retracts a class relation.
func (o *Ontology) RemoveClassRelation(a string, rel Relation, b string) error {
	return o.removeRelation(classRelations, a, rel, b)
}

// ClassRelations lists class relations, optionally only those touching class.
func (o *Ontology) ClassRelations(class string) []RelationRecord {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.relations(classRelations, class)
}

// AddPropertyRelation asserts subPropertyOf, equivalentProperty, inverseOf or
// propertyDisjointWith.
func (o *Ontology) AddPropertyRelation(a string, rel Relation, b string) error {
	return o.addRelation(propertyRelations, a, rel, b)
}

// RemovePropertyRelation retracts a property relation.
func (o *Ontology) RemovePropertyRelation(a string, rel Relation, b string) error {
	return o.removeRelation(propertyRelations, a, rel, b)
}

// PropertyRelations lists property relations, optionally only those touching
// property.
func (o *Ontology) PropertyRelations(property string) []RelationRecord {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.relations(propertyRelations, property)
}

// AddIndividualRelation asserts sameAs or differentFrom.
func (o *Ontology) AddIndividualRelation(a string, rel Relation, b string) error {
	return o.addRelation(individualRelations, a, rel, b)
}

// RemoveIndividualRelation retracts an individual relation.
func (o *Ontology) RemoveIndividualRelation(a string, rel Relation, b string) error {
	return o.removeRelation(individualRelations, a, rel, b)
}

// IndividualRelations lists individual relations, optionally only those
// touching individual.
func (o *Ontology) IndividualRelations(individual string) []RelationRecord {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.relations(individualRelations, individual)
}

// AllRelations returns every relation grouped by entity kind.
func (o *Ontology) AllRelations() Relations {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return Relations{
		Class:      o.relations(classRelations, ""),
		Property:   o.relations(propertyRelations, ""),
		Individual: o.relations(individualRelations, ""),
	}
}
