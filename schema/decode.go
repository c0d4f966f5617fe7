package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var yamlUnknownField = regexp.MustCompile(`field (\S+) not found in type`)

// DecodeJSONStrict decodes data into v, rejecting keys that v does not declare
func DecodeJSONStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if key, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			return unrecognizedKeys([]string{strings.Trim(key, `"`)})
		}
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected data after top-level value")
	}
	return nil
}

// DecodeYAMLStrict decodes data into v, rejecting keys that v does not declare
func DecodeYAMLStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty document")
		}
		if matches := yamlUnknownField.FindAllStringSubmatch(err.Error(), -1); len(matches) > 0 {
			keys := make([]string, 0, len(matches))
			for _, m := range matches {
				keys = append(keys, m[1])
			}
			return unrecognizedKeys(keys)
		}
		return err
	}
	return nil
}

// DecodeYAMLNodeStrict decodes an already parsed node, rejecting unknown keys
func DecodeYAMLNodeStrict(node *yaml.Node, v any) error {
	out, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	return DecodeYAMLStrict(out, v)
}

func unrecognizedKeys(keys []string) error {
	quoted := make([]string, 0, len(keys))
	for _, k := range keys {
		quoted = append(quoted, fmt.Sprintf("%q", k))
	}
	return &ValidationError{Issues: []Issue{{
		Message: fmt.Sprintf("Unrecognized key(s) %s in object", strings.Join(quoted, ", ")),
	}}}
}
