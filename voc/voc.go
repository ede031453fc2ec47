// Package voc implements an RDF namespace (vocabulary) registry.
package voc

import (
	"sort"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	prefixes map[string]string
)

// RegisterPrefix associates a given prefix with a base vocabulary IRI.
// Prefixes are registered with a trailing colon, e.g. "owl:".
func RegisterPrefix(pref string, ns string) {
	mu.Lock()
	if prefixes == nil {
		prefixes = make(map[string]string)
	}
	prefixes[pref] = ns
	mu.Unlock()
}

// ShortIRI replaces a base IRI of a known vocabulary with it's prefix.
// The longest matching vocabulary wins.
//
//	ShortIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type") // returns "rdf:type"
func ShortIRI(iri string) string {
	mu.RLock()
	defer mu.RUnlock()
	best, bestNS := "", ""
	for pref, ns := range prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > len(bestNS) {
			best, bestNS = pref, ns
		}
	}
	if bestNS == "" {
		return iri
	}
	return best + iri[len(bestNS):]
}

// FullIRI replaces known prefix in IRI with it's full vocabulary IRI.
//
//	FullIRI("rdf:type") // returns "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
func FullIRI(iri string) string {
	mu.RLock()
	defer mu.RUnlock()
	for pref, ns := range prefixes {
		if strings.HasPrefix(iri, pref) {
			return ns + iri[len(pref):]
		}
	}
	return iri
}

// List enumerates all registered prefix-IRI pairs, sorted by prefix.
func List() (out [][2]string) {
	mu.RLock()
	defer mu.RUnlock()
	out = make([][2]string, 0, len(prefixes))
	for pref, ns := range prefixes {
		out = append(out, [2]string{pref, ns})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return
}

// LocalName returns the part of iri after the last '#', or after the last '/'
// when there is no '#'. No percent-decoding is performed.
func LocalName(iri string) string {
	if i := strings.LastIndexByte(iri, '#'); i >= 0 {
		return iri[i+1:]
	}
	if i := strings.LastIndexByte(iri, '/'); i >= 0 {
		return iri[i+1:]
	}
	return iri
}
