package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/teranos/uibind/config"
	"github.com/teranos/uibind/diag"
	"github.com/teranos/uibind/errors"
)

// Report writes err for a person, or as JSON when log.json is configured.
// Diagnostics are rendered with their source excerpt; other errors are
// followed by their hints.
func Report(w io.Writer, err error) {
	if cfg, cerr := config.Load(); cerr == nil && cfg.Log.JSON {
		reportJSON(w, err)
		return
	}

	if d, ok := diag.As(err); ok {
		fmt.Fprintln(w, d.Show())
		return
	}

	fmt.Fprintln(w, pterm.Red("error: ")+err.Error())
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(w, pterm.Green("hint: ")+hint)
	}
}

func reportJSON(w io.Writer, err error) {
	out := map[string]interface{}{"error": err.Error()}
	if d, ok := diag.As(err); ok {
		out["diagnostic"] = d.LSP()
		if d.Position.File != "" {
			out["file"] = d.Position.File
		}
	}
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		out["hints"] = hints
	}
	data, merr := json.Marshal(out)
	if merr != nil {
		fmt.Fprintln(w, err.Error())
		return
	}
	fmt.Fprintln(w, string(data))
}
