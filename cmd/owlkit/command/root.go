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

// Package command implements the owlkit subcommands.
package command

import (
	"flag"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/owlkit/owlkit/inference"
	"github.com/owlkit/owlkit/internal/config"
	"github.com/owlkit/owlkit/rdfio"
)

const (
	flagConfig     = "config"
	flagBase       = "base"
	flagPretty     = "pretty"
	flagLoad       = "load"
	flagLoadFormat = "load_format"
	flagDump       = "dump"
	flagDumpFormat = "dump_format"
	flagProfile    = "profile"
)

// flagKeys maps flag names to the config keys they override.
var flagKeys = map[string]string{
	flagBase:       config.KeyBaseURI,
	flagPretty:     config.KeyPretty,
	flagLoadFormat: config.KeyLoadFormat,
	flagDumpFormat: config.KeyDumpFormat,
	flagProfile:    config.KeyProfile,
}

// Filled in by `go build -ldflags="-X ...command.Version=ver"`.
var (
	Version   string
	BuildDate string
)

// env is the state shared by the subcommands of one root command.
type env struct {
	v   *viper.Viper
	cfg *config.Config
}

// NewRootCmd creates the owlkit command tree. Each call has its own config
// state, so commands can be executed repeatedly in tests.
func NewRootCmd() *cobra.Command {
	e := &env{v: viper.New()}
	root := &cobra.Command{
		Use:          "owlkit",
		Short:        "Inspect, convert and reason over OWL ontologies.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				if key, ok := flagKeys[f.Name]; ok && err == nil {
					err = e.v.BindPFlag(key, f)
				}
			})
			if err != nil {
				return err
			}
			file, _ := cmd.Flags().GetString(flagConfig)
			cfg, err := config.Load(e.v, file)
			if err != nil {
				return err
			}
			e.cfg = cfg
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "path to an explicit configuration file")
	pf.String(flagBase, "", "base URI used to resolve names and to write new entities")
	pf.Bool(flagPretty, false, "indent JSON output")
	// glog registers -v, -logtostderr and friends on the standard flag set.
	pf.AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		newConvertCmd(e),
		newReasonCmd(e),
		newValidateCmd(e),
		newStatsCmd(e),
		newInspectCmd(e),
		newVersionCmd(),
	)
	return root
}

func formatNames(read bool) string {
	var names []string
	for _, f := range rdfio.Formats() {
		if (read && f.Reader != nil) || (!read && f.Writer != nil) {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return `"` + strings.Join(names, `", "`) + `"`
}

func registerLoadFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP(flagLoad, "i", nil, `ontology file to load (".gz" and ".bz2" supported, "-" for stdin); repeatable`)
	cmd.Flags().String(flagLoadFormat, "", "format to use for loading instead of auto-detection ("+formatNames(true)+")")
}

func registerDumpFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagDump, "o", "", `file to write the ontology to (".gz" supported, "-" for stdout)`)
	cmd.Flags().String(flagDumpFormat, "", "format to use instead of auto-detection ("+formatNames(false)+")")
}

func registerProfileFlag(cmd *cobra.Command) {
	var names []string
	for _, p := range inference.Profiles() {
		names = append(names, string(p))
	}
	cmd.Flags().String(flagProfile, "", `reasoning profile ("`+strings.Join(names, `", "`)+`")`)
}
