package main

import (
	"fmt"
	"strconv"
)

func parseInt32(name, s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected a 32-bit integer", name, s)
	}
	return int32(v), nil
}

func parseHalfSteps(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid half steps %q: expected a number", s)
	}
	return v, nil
}

func parseMIDINote(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid MIDI note %q: expected an integer", s)
	}
	return v, nil
}
