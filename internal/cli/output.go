package cli

import (
	"encoding/json"
	"os"

	"github.com/packista/packista/pkg/composer"
)

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRecord prints the human-readable summary of a version record: the
// version itself plus a few well-known Composer fields when present. All
// record fields are registry-supplied and optional, so every access is
// type-asserted.
func printRecord(rec composer.VersionRecord) {
	v, _ := rec.Version()
	printSuccess("%s", StyleHighlight.Render(v))

	if t, ok := rec["time"].(string); ok {
		printKeyValue("released", t)
	}
	if licenses, ok := rec["license"].([]any); ok && len(licenses) > 0 {
		if l, ok := licenses[0].(string); ok {
			printKeyValue("license", l)
		}
	}
	if require, ok := rec["require"].(map[string]any); ok {
		if php, ok := require["php"].(string); ok {
			printKeyValue("php", php)
		}
	}
	if source, ok := rec["source"].(map[string]any); ok {
		if url, ok := source["url"].(string); ok {
			printKeyValue("source", url)
		}
	}
}
