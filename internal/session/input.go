package session

import (
	"math"
	"strconv"
	"strings"

	"github.com/2beens/liftload/internal/workout"
)

// Input is one commit as entered in the host form. Numeric fields are the raw
// strings the user typed; a decimal comma is accepted.
type Input struct {
	Weight        string
	Reps          string
	Duration      string
	RPE           string
	RIR           string
	Side          workout.Side
	Brand         string
	ChangeOfPlans bool
	Note          string
}

type parsedInput struct {
	weight   float64
	reps     *int
	duration *int
	rpe      *float64
	rir      *int
}

func parseInput(in Input) (parsedInput, error) {
	var p parsedInput

	weight, err := parseFloat("weight", in.Weight, true)
	if err != nil {
		return p, err
	}
	if weight == nil || *weight < 0 {
		return p, invalid("weight", in.Weight, "must be a non-negative number")
	}
	p.weight = *weight

	if p.reps, err = parseInt("reps", in.Reps); err != nil {
		return p, err
	}
	if p.duration, err = parseInt("duration", in.Duration); err != nil {
		return p, err
	}
	if p.reps == nil && p.duration == nil {
		return p, invalid("reps", "", "reps or duration required")
	}

	if p.rpe, err = parseFloat("rpe", in.RPE, false); err != nil {
		return p, err
	}
	if p.rpe != nil && (*p.rpe < 0 || *p.rpe > 10) {
		return p, invalid("rpe", in.RPE, "must be between 0 and 10")
	}
	if p.rir, err = parseInt("rir", in.RIR); err != nil {
		return p, err
	}

	return p, nil
}

func normalizeNumber(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
}

func parseFloat(field, raw string, required bool) (*float64, error) {
	s := normalizeNumber(raw)
	if s == "" {
		if required {
			return nil, invalid(field, raw, "required")
		}
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, invalid(field, raw, "not a number")
	}
	return &v, nil
}

func parseInt(field, raw string) (*int, error) {
	s := normalizeNumber(raw)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, invalid(field, raw, "not a whole number")
	}
	if v < 0 {
		return nil, invalid(field, raw, "must not be negative")
	}
	return &v, nil
}
