package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adenflorian/corgi.fm/internal/cliconfig"
)

// jsonFloat encodes NaN and ±Inf as strings ("NaN", "+Inf", "-Inf"),
// which encoding/json otherwise rejects.
type jsonFloat float64

func (j jsonFloat) MarshalJSON() ([]byte, error) {
	f := float64(j)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return json.Marshal(f)
}

func (a *app) formatHz(f float64) string {
	return strconv.FormatFloat(f, 'f', a.cfg.Precision, 64)
}

// emit writes v as one JSON object, or text followed by a newline.
func (a *app) emit(cmd *cobra.Command, v any, text string) error {
	out := cmd.OutOrStdout()
	if a.cfg.Format == cliconfig.FormatJSON {
		if err := json.NewEncoder(out).Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(out, text)
	return err
}
