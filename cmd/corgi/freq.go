package main

import (
	"github.com/spf13/cobra"

	"github.com/adenflorian/corgi.fm/pkg/pitch"
)

type freqResult struct {
	HalfSteps jsonFloat `json:"halfSteps"`
	MIDI      *int      `json:"midi,omitempty"`
	Hz        jsonFloat `json:"hz"`
}

var freqMIDI bool

func newFreqCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freq HALFSTEPS",
		Short: "Print the frequency of a pitch relative to A4",
		Long: `Print the frequency in Hz of the pitch HALFSTEPS semitones from A4 (440 Hz).

HALFSTEPS may be negative or fractional. With --midi the argument is a MIDI
note number instead (69 = A4, 60 = middle C).`,
		Example: `  corgi freq 12
  corgi freq -- -9
  corgi freq 0.5
  corgi freq --midi 60`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var halfSteps float64
			var midi *int
			if freqMIDI {
				note, err := parseMIDINote(args[0])
				if err != nil {
					return err
				}
				midi = &note
				halfSteps = float64(note - pitch.A4)
			} else {
				n, err := parseHalfSteps(args[0])
				if err != nil {
					return err
				}
				halfSteps = n
			}

			f := pitch.FrequencyFromHalfSteps(halfSteps)
			a.log.Debug().Float64("halfSteps", halfSteps).Float64("hz", f).Msg("freq")

			res := freqResult{HalfSteps: jsonFloat(halfSteps), MIDI: midi, Hz: jsonFloat(f)}
			return a.emit(cmd, res, a.formatHz(f))
		},
	}
	cmd.Flags().BoolVar(&freqMIDI, "midi", false, "interpret the argument as a MIDI note number")
	return cmd
}
