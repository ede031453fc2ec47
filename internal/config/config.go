// Copyright 2014 The Cayley Authors. All rights reserved.
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

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/owlkit/owlkit/inference"
	"github.com/owlkit/owlkit/ontology"
)

const (
	KeyBaseURI    = "base_uri"
	KeyLoadFormat = "load_format"
	KeyDumpFormat = "dump_format"
	KeyProfile    = "profile"
	KeyPretty     = "pretty"
)

// EnvPrefix is prepended to upper-cased keys when reading the environment,
// so OWLKIT_BASE_URI overrides base_uri.
const EnvPrefix = "OWLKIT"

// Config defines the behavior of the owlkit command line tools.
type Config struct {
	BaseURI    string `mapstructure:"base_uri" json:"base_uri"`
	LoadFormat string `mapstructure:"load_format" json:"load_format,omitempty"`
	DumpFormat string `mapstructure:"dump_format" json:"dump_format,omitempty"`
	Profile    string `mapstructure:"profile" json:"profile"`
	Pretty     bool   `mapstructure:"pretty" json:"pretty"`
}

// SetDefaults registers default values and environment lookups on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBaseURI, ontology.DefaultBaseURI)
	v.SetDefault(KeyLoadFormat, "")
	v.SetDefault(KeyDumpFormat, "")
	v.SetDefault(KeyProfile, string(inference.OWLRL))
	v.SetDefault(KeyPretty, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads the config file into v and decodes the merged result of
// defaults, file, environment and bound flags. An empty file name searches
// for owlkit.{json,yaml,toml} in the working directory, $HOME/.owlkit and
// /etc/owlkit; finding none is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("owlkit")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.owlkit")
		v.AddConfigPath("/etc/owlkit")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &nf) {
			return nil, fmt.Errorf("could not read config file %q: %w", file, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if _, err := inference.ParseProfile(cfg.Profile); err != nil {
		return nil, err
	}
	return cfg, nil
}
