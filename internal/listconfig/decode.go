package listconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/monokit-dev/monokit/schema"
)

// hclFile is the top-level structure of an HCL config file
type hclFile struct {
	Lists []*Config `hcl:"packages_list,block"`
}

// configList is the validated form of a config file
type configList struct {
	Configs []Config `json:"configs" validate:"min=1,dive"`
}

// decode parses a config file by extension. A file holds one config object
// or a non-empty list of them. An empty YAML file yields no configs.
func decode(path string, data []byte) ([]Config, error) {
	var (
		configs []Config
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		configs, err = decodeJSON(data)
	case ".yaml", ".yml":
		configs, err = decodeYAML(data)
	case ".hcl":
		configs, err = decodeHCL(path, data)
	default:
		return nil, fmt.Errorf("unsupported config file type %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if configs == nil {
		return nil, nil
	}

	for i := range configs {
		configs[i].ApplyDefaults()
	}
	if len(configs) == 1 {
		err = schema.Validate(&configs[0])
	} else {
		err = schema.Validate(&configList{Configs: configs})
	}
	if err != nil {
		return nil, err
	}
	return configs, nil
}

func decodeJSON(data []byte) ([]Config, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, err
		}
		configs := make([]Config, len(raw))
		for i, item := range raw {
			if err := schema.DecodeJSONStrict(item, &configs[i]); err != nil {
				return nil, err
			}
		}
		return configs, nil
	}

	var cfg Config
	if err := schema.DecodeJSONStrict(trimmed, &cfg); err != nil {
		return nil, err
	}
	return []Config{cfg}, nil
}

func decodeYAML(data []byte) ([]Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	node := doc.Content[0]
	if node.Kind == yaml.SequenceNode {
		configs := make([]Config, len(node.Content))
		for i, item := range node.Content {
			if err := schema.DecodeYAMLNodeStrict(item, &configs[i]); err != nil {
				return nil, err
			}
		}
		return configs, nil
	}

	var cfg Config
	if err := schema.DecodeYAMLNodeStrict(node, &cfg); err != nil {
		return nil, err
	}
	return []Config{cfg}, nil
}

func decodeHCL(path string, data []byte) ([]Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filepath.Base(path))
	if diags.HasErrors() {
		return nil, diags
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, diags
	}

	configs := []Config{}
	for _, cfg := range parsed.Lists {
		configs = append(configs, *cfg)
	}
	return configs, nil
}
