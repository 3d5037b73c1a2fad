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

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclInsert struct {
		File        string `hcl:"file"`
		Tag         string `hcl:"tag"`
		Content     string `hcl:"content,optional"`
		ContentFile string `hcl:"content_file,optional"`
		CreateTags  bool   `hcl:"create_tags,optional"`
		TagPrefix   string `hcl:"tag_prefix,optional"`
	}
	type hclSync struct {
		Source       string `hcl:"source"`
		Destination  string `hcl:"destination"`
		RenameTo     string `hcl:"rename_to,optional"`
		RelativeTo   string `hcl:"relative_to,optional"`
		PreserveRoot string `hcl:"preserve_root,optional"`
		AlwaysWrite  bool   `hcl:"always_write,optional"`
	}
	type hclConfig struct {
		Inserts        []hclInsert `hcl:"insert,block"`
		Syncs          []hclSync   `hcl:"sync,block"`
		IgnorePatterns []string    `hcl:"ignore_patterns,optional"`
		Async          bool        `hcl:"async,optional"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		IgnorePatterns: hclCfg.IgnorePatterns,
		Async:          hclCfg.Async,
	}
	for _, ins := range hclCfg.Inserts {
		cfg.Inserts = append(cfg.Inserts, Insert{
			File:        ins.File,
			Tag:         ins.Tag,
			Content:     ins.Content,
			ContentFile: ins.ContentFile,
			CreateTags:  ins.CreateTags,
			TagPrefix:   ins.TagPrefix,
		})
	}
	for _, sc := range hclCfg.Syncs {
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
