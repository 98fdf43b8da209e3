package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks the config against the embedded JSON schema:
// every section and key of the config must be declared by the schema, and required values must be set
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema struct {
		Ref  string                     `json:"$ref"`
		Defs map[string]json.RawMessage `json:"$defs"`
	}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root := strings.TrimPrefix(schema.Ref, "#/$defs/")
	if unknown := undeclaredKeys(schema.Defs, root, "", configMap); len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("keys not in schema: %s", strings.Join(unknown, ", "))
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// undeclaredKeys walks the config map along schema definitions and returns dotted paths missing from the schema
func undeclaredKeys(defs map[string]json.RawMessage, defName, prefix string, values map[string]any) []string {
	raw, ok := defs[defName]
	if !ok {
		return nil
	}
	var def struct {
		Properties map[string]struct {
			Ref string `json:"$ref"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(raw, &def); err != nil {
		return []string{prefix + "<invalid definition " + defName + ">"}
	}

	var res []string
	for key, val := range values {
		prop, ok := def.Properties[key]
		if !ok {
			res = append(res, prefix+key)
			continue
		}
		if nested, isMap := val.(map[string]any); isMap && prop.Ref != "" {
			res = append(res, undeclaredKeys(defs, strings.TrimPrefix(prop.Ref, "#/$defs/"), prefix+key+".", nested)...)
		}
	}
	return res
}

// validateRequiredFields checks values which have no usable zero value
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.Schedule.RunTimeout == 0 {
		return fmt.Errorf("schedule.run_timeout is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
