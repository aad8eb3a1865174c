package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adenflorian/corgi.fm/pkg/pitch"
)

type noteResult struct {
	MIDI   int            `json:"midi"`
	Name   pitch.Name     `json:"name"`
	Octave int            `json:"octave"`
	Color  pitch.KeyColor `json:"color"`
	Hz     jsonFloat      `json:"hz"`
}

func newNoteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "note MIDI",
		Short: "Describe a MIDI note number",
		Long: `Describe a MIDI note number: pitch-class name (sharps), octave, key
colour and frequency.

The octave is floor(MIDI / 12), so A4 (69) reports octave 5.`,
		Example: `  corgi note 69
  corgi note --format json 61`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseMIDINote(args[0])
			if err != nil {
				return err
			}

			key := pitch.KeyOf(n)
			f := pitch.MIDINoteToFrequency(n)
			res := noteResult{
				MIDI:   n,
				Name:   key.Name,
				Octave: pitch.Octave(n),
				Color:  key.Color,
				Hz:     jsonFloat(f),
			}

			text := fmt.Sprintf("name=%s octave=%d color=%s hz=%s", res.Name, res.Octave, res.Color, a.formatHz(f))
			return a.emit(cmd, res, text)
		},
	}
}
