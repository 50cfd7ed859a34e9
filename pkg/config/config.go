package config

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v2"
)

// FromFile reads a YAML config file into cfg. The file is rendered as a
// text/template with the process environment as data, and $VAR references
// are expanded afterwards, so credentials never need to live in the file
// itself.
func FromFile(filePath string, cfg interface{}) error {
	envMap := make(map[string]string)
	for _, envStr := range os.Environ() {
		pair := strings.SplitN(envStr, "=", 2)
		envMap[pair[0]] = pair[1]
	}

	t, err := template.ParseFiles(filePath)
	if err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	strWriter := &strings.Builder{}
	if err := t.Execute(strWriter, envMap); err != nil {
		return fmt.Errorf("render config file: %w", err)
	}

	content := os.ExpandEnv(strWriter.String())
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return fmt.Errorf("unmarshal config file: %w", err)
	}
	return nil
}
