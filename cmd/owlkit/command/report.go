// Copyright 2017 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/owlkit/owlkit/ontology"
)

const flagSubject = "subject"

func newValidateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [input...]",
		Short: "Report classes without labels, properties without domain or range and untyped individuals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := e.load(cmd, inputs(cmd, args))
			if err != nil {
				return err
			}
			issues := o.Validate()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				if err := e.printJSON(cmd, issues); err != nil {
					return err
				}
			} else {
				w := cmd.OutOrStdout()
				for _, is := range issues {
					fmt.Fprintf(w, "%s: %s\n", is.Severity, is.Message)
				}
			}
			warnings := 0
			for _, is := range issues {
				if is.Severity == ontology.Warning {
					warnings++
				}
			}
			if strict, _ := cmd.Flags().GetBool("strict"); strict && warnings > 0 {
				return fmt.Errorf("validation found %d warnings", warnings)
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "print issues as JSON")
	cmd.Flags().Bool("strict", false, "fail when any warning is reported")
	registerLoadFlags(cmd)
	return cmd
}

func newStatsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [input...]",
		Short: "Print entity and triple counts as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := e.load(cmd, inputs(cmd, args))
			if err != nil {
				return err
			}
			return e.printJSON(cmd, o.Statistics())
		},
	}
	registerLoadFlags(cmd)
	return cmd
}

// views are the JSON projections printed by inspect. The subject is the
// optional --subject flag.
var views = map[string]func(o *ontology.Ontology, subject string) any{
	"classes":           func(o *ontology.Ontology, _ string) any { return o.Classes() },
	"hierarchy":         func(o *ontology.Ontology, _ string) any { return o.ClassHierarchy() },
	"object-properties": func(o *ontology.Ontology, _ string) any { return o.ObjectProperties() },
	"data-properties":   func(o *ontology.Ontology, _ string) any { return o.DataProperties() },
	"individuals":       func(o *ontology.Ontology, _ string) any { return o.Individuals() },
	"restrictions":      func(o *ontology.Ontology, s string) any { return o.Restrictions(s) },
	"annotations":       func(o *ontology.Ontology, s string) any { return o.Annotations(s) },
	"annotation-predicates": func(o *ontology.Ontology, _ string) any {
		return o.UsedAnnotationPredicates()
	},
	"relations": func(o *ontology.Ontology, s string) any {
		if s == "" {
			return o.AllRelations()
		}
		return ontology.Relations{
			Class:      o.ClassRelations(s),
			Property:   o.PropertyRelations(s),
			Individual: o.IndividualRelations(s),
		}
	},
	"chains":          func(o *ontology.Ontology, _ string) any { return o.PropertyChains() },
	"expressions":     func(o *ontology.Ontology, s string) any { return o.ClassExpressions(s) },
	"keys":            func(o *ontology.Ontology, s string) any { return o.HasKeys(s) },
	"disjoint-unions": func(o *ontology.Ontology, _ string) any { return o.DisjointUnions() },
	"all-different":   func(o *ontology.Ontology, _ string) any { return o.AllDifferent() },
	"metadata":        func(o *ontology.Ontology, _ string) any { return o.Metadata() },
	"imports":         func(o *ontology.Ontology, _ string) any { return o.Imports() },
	"prefixes":        func(o *ontology.Ontology, _ string) any { return o.Prefixes() },
	"stats":           func(o *ontology.Ontology, _ string) any { return o.Statistics() },
}

func viewNames() []string {
	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newInspectCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect view [input...]",
		Short: "Print a JSON view of an ontology.",
		Long:  "Views: " + strings.Join(viewNames(), ", ") + ".",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, ok := views[args[0]]
			if !ok {
				return fmt.Errorf("unknown view %q; expected one of %s", args[0], strings.Join(viewNames(), ", "))
			}
			o, err := e.load(cmd, inputs(cmd, args[1:]))
			if err != nil {
				return err
			}
			subject, _ := cmd.Flags().GetString(flagSubject)
			return e.printJSON(cmd, view(o, subject))
		},
	}
	cmd.Flags().StringP(flagSubject, "s", "", "limit the view to one class, property or individual where supported")
	registerLoadFlags(cmd)
	return cmd
}
