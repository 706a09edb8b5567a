package cli

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"github.com/maniartech/idgen/internal/inspector"
)

// Prefixes and suffixes are user text; they are written without HTML escaping.
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

const banner = ` _     _
(_) __| | __ _  ___ _ __
| |/ _` + "`" + ` |/ _` + "`" + ` |/ _ \ '_ \
| | (_| | (_| |  __/ | | |
|_|\__,_|\__, |\___|_| |_|
         |___/`

type idOutput struct {
	Value string `json:"value"`
}

// validationOutput is the JSON shape of the validate subcommand.
type validationOutput struct {
	Valid  bool   `json:"valid"`
	Format string `json:"format"`
	Reason string `json:"reason,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeIDs(w io.Writer, ids []string, prefix, suffix string, asJSON bool) error {
	wrap := func(s string, _ int) string { return prefix + s + suffix }
	if asJSON {
		return writeJSON(w, lo.Map(ids, func(s string, i int) idOutput {
			return idOutput{Value: wrap(s, i)}
		}))
	}
	for _, s := range lo.Map(ids, wrap) {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

func writeInspection(w io.Writer, candidate string, res inspector.Result, asJSON bool) error {
	if asJSON {
		return writeJSON(w, res)
	}
	fmt.Fprintf(w, "ID: %s\n", candidate)
	fmt.Fprintf(w, "Valid: %t\n", res.Valid)
	fmt.Fprintf(w, "Type: %s\n", res.IDType)
	if res.Version != "" {
		fmt.Fprintf(w, "Version: %s\n", res.Version)
	}
	if res.Variant != "" {
		fmt.Fprintf(w, "Variant: %s\n", res.Variant)
	}
	if res.Timestamp != "" {
		fmt.Fprintf(w, "Timestamp: %s\n", res.Timestamp)
	}
	return nil
}

func writeValidation(w io.Writer, candidate string, out validationOutput, asJSON bool) error {
	if asJSON {
		return writeJSON(w, out)
	}
	fmt.Fprintf(w, "ID: %s\n", candidate)
	fmt.Fprintf(w, "Valid: %t\n", out.Valid)
	fmt.Fprintf(w, "Format: %s\n", out.Format)
	if out.Reason != "" {
		fmt.Fprintf(w, "Reason: %s\n", out.Reason)
	}
	return nil
}
