package cmd

import (
	"encoding/json"
	"errors"

	"github.com/goccy/go-yaml"
)

var errUnknownFormat = errors.New(`unknown --format (want "text", "json" or "yaml")`)

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func marshalYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
