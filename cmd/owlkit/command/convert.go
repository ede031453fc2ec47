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
	"errors"

	"github.com/spf13/cobra"

	"github.com/owlkit/owlkit/clog"
	"github.com/owlkit/owlkit/inference"
)

func newConvertCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert [input...] output",
		Aliases: []string{"conv"},
		Short:   "Convert ontology files between supported formats.",
		Long: "Convert reads every input into one ontology and writes it to the output.\n" +
			"The first input decides the base namespace; later ones are merged into it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dump, _ := cmd.Flags().GetString(flagDump)
			if dump == "" && len(args) > 0 {
				i := len(args) - 1
				dump, args = args[i], args[:i]
			}
			files := inputs(cmd, args)
			if len(files) == 0 || dump == "" {
				return errors.New("both input and output files must be specified")
			}
			o, err := e.load(cmd, files)
			if err != nil {
				return err
			}
			if prune, _ := cmd.Flags().GetBool("prune"); prune {
				o.PruneOrphans()
			}
			return e.dump(cmd, o, dump)
		},
	}
	cmd.Flags().Bool("prune", false, "remove orphaned restriction nodes and list cells before writing")
	registerLoadFlags(cmd)
	registerDumpFlags(cmd)
	return cmd
}

func newReasonCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reason [input...]",
		Short: "Materialize the inferred triples of a reasoning profile.",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := inference.ParseProfile(e.cfg.Profile)
			if err != nil {
				return err
			}
			o, err := e.load(cmd, inputs(cmd, args))
			if err != nil {
				return err
			}
			n, err := o.ApplyReasoning(profile)
			if err != nil {
				return err
			}
			clog.Infof("%s reasoning inferred %d triples", profile, n)
			dump, _ := cmd.Flags().GetString(flagDump)
			return e.dump(cmd, o, dump)
		},
	}
	registerLoadFlags(cmd)
	registerDumpFlags(cmd)
	registerProfileFlag(cmd)
	return cmd
}
