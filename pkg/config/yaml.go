// Copyright 2025 walteh LLC
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
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the config from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	// Define YAML schema
	type yamlInsert struct {
		File        string `yaml:"file"`
		Tag         string `yaml:"tag"`
		Content     string `yaml:"content,omitempty"`
		ContentFile string `yaml:"content_file,omitempty"`
		CreateTags  bool   `yaml:"create_tags,omitempty"`
		TagPrefix   string `yaml:"tag_prefix,omitempty"`
	}
	type yamlSync struct {
		Source       string `yaml:"source"`
		Destination  string `yaml:"destination"`
		RenameTo     string `yaml:"rename_to,omitempty"`
		RelativeTo   string `yaml:"relative_to,omitempty"`
		PreserveRoot string `yaml:"preserve_root,omitempty"`
		AlwaysWrite  bool   `yaml:"always_write,omitempty"`
	}
	type yamlConfig struct {
		Inserts        []yamlInsert `yaml:"inserts,omitempty"`
		Syncs          []yamlSync   `yaml:"syncs,omitempty"`
		IgnorePatterns []string     `yaml:"ignore_patterns,omitempty"`
		Async          bool         `yaml:"async,omitempty"`
	}

	// Parse YAML
	var yamlCfg yamlConfig
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&yamlCfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	// Convert to model
	cfg := &Config{
		IgnorePatterns: yamlCfg.IgnorePatterns,
		Async:          yamlCfg.Async,
	}
	for _, ins := range yamlCfg.Inserts {
		cfg.Inserts = append(cfg.Inserts, Insert{
			File:        ins.File,
			Tag:         ins.Tag,
			Content:     ins.Content,
			ContentFile: ins.ContentFile,
			CreateTags:  ins.CreateTags,
			TagPrefix:   ins.TagPrefix,
		})
	}
	for _, sc := range yamlCfg.Syncs {
		cfg.Syncs = append(cfg.Syncs, Sync{
			Source:       sc.Source,
			Destination:  sc.Destination,
			RenameTo:     sc.RenameTo,
			RelativeTo:   sc.RelativeTo,
			PreserveRoot: sc.PreserveRoot,
			AlwaysWrite:  sc.AlwaysWrite,
		})
	}

	return cfg, nil
}
