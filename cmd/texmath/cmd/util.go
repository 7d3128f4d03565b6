package cmd

import "os"

// readFile is split out from readInput so tests can stub it if ever
// needed; today it is a thin wrapper over os.ReadFile.
func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// marshalFormat renders v in the requested output format. "text" is
// handled by each subcommand directly (it needs per-item control over
// layout); json and yaml marshal the whole slice at once.
func marshalFormat(v any) (string, error) {
	switch format {
	case "json":
		return marshalJSON(v)
	case "yaml":
		return marshalYAML(v)
	default:
		return "", errUnknownFormat
	}
}
