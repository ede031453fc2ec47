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
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/owlkit/owlkit/inference"
	"github.com/owlkit/owlkit/ontology"
)

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, &Config{
		BaseURI: ontology.DefaultBaseURI,
		Profile: string(inference.OWLRL),
	}, cfg)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "owlkit.json")
	err := os.WriteFile(path, []byte(`{
	"base_uri": "http://ex.org/file#",
	"dump_format": "xml",
	"profile": "rdfs",
	"pretty": true
}`), 0o644)
	require.NoError(t, err)

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, &Config{
		BaseURI:    "http://ex.org/file#",
		DumpFormat: "xml",
		Profile:    "rdfs",
		Pretty:     true,
	}, cfg)

	t.Setenv("OWLKIT_BASE_URI", "http://ex.org/env#")
	t.Setenv("OWLKIT_PRETTY", "false")
	cfg, err = Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "http://ex.org/env#", cfg.BaseURI)
	require.False(t, cfg.Pretty)
	require.Equal(t, "xml", cfg.DumpFormat)

	v := viper.New()
	v.Set(KeyDumpFormat, "nt")
	cfg, err = Load(v, path)
	require.NoError(t, err)
	require.Equal(t, "nt", cfg.DumpFormat)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(viper.New(), filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"profile": "owl-dl"}`), 0o644))
	_, err = Load(viper.New(), bad)
	require.ErrorIs(t, err, inference.ErrUnknownProfile)
}
