// Package prompt reads coordinate sets interactively, re-prompting on bad input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/woozymasta/geomatch/internal/geo"

	"github.com/rs/zerolog/log"
)

// ErrTooManyAttempts is returned when MaxAttempts invalid entries happen in a row.
var ErrTooManyAttempts = errors.New("too many invalid coordinate entries")

const (
	latitudePrompt  = "Enter latitude (or type 'd' to finish): "
	longitudePrompt = "Enter longitude: "
	finishKeyword   = "d"
	invalidNumber   = "Invalid input. Please enter numeric values for latitude and longitude."
)

// Prompter asks for coordinates one line at a time. It never consumes input
// past the line it answers, so the reader can be shared with other consumers.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// MaxAttempts bounds consecutive invalid entries, 0 means unlimited.
	MaxAttempts int
}

// New returns a Prompter reading answers from in and writing prompts to out.
// A *bufio.Reader passed as in is used as is.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadSet collects validated coordinates until the user types "d" or input ends.
func (p *Prompter) ReadSet(title string) ([]geo.Coordinate, error) {
	if title != "" {
		p.println(title)
	}

	var (
		set      []geo.Coordinate
		failures int
	)

	for {
		c, done, err := p.readOne()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		if c != nil {
			set = append(set, *c)
			failures = 0
			continue
		}

		failures++
		if p.MaxAttempts > 0 && failures >= p.MaxAttempts {
			return nil, fmt.Errorf("%w: %d in a row", ErrTooManyAttempts, failures)
		}
	}

	log.Debug().Str("set", title).Int("points", len(set)).Msg("Interactive input finished")

	return set, nil
}

// readOne returns a coordinate, or nil when the entry was rejected, or done
// when the user finished the set.
func (p *Prompter) readOne() (*geo.Coordinate, bool, error) {
	latText, ok, err := p.ask(latitudePrompt)
	if err != nil || !ok {
		return nil, true, err
	}
	if strings.EqualFold(latText, finishKeyword) {
		return nil, true, nil
	}

	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		p.println(invalidNumber)
		log.Trace().Str("input", latText).Msg("Rejected non-numeric latitude")
		return nil, false, nil
	}

	lonText, ok, err := p.ask(longitudePrompt)
	if err != nil {
		return nil, true, err
	}
	if !ok {
		log.Warn().Float64("lat", lat).Msg("Input ended before longitude, dropping point")
		return nil, true, nil
	}

	lon, err := strconv.ParseFloat(lonText, 64)
	if err != nil {
		p.println(invalidNumber)
		log.Trace().Str("input", lonText).Msg("Rejected non-numeric longitude")
		return nil, false, nil
	}

	c, err := geo.Validate(lat, lon)
	if err != nil {
		var vErr *geo.ValidationError
		if errors.As(err, &vErr) {
			p.println(rangeMessage(vErr))
		} else {
			p.println("Error: " + err.Error())
		}
		log.Trace().Err(err).Msg("Rejected coordinate")
		return nil, false, nil
	}

	return &c, false, nil
}

// ask prints the prompt and returns the trimmed answer; ok is false at end of input.
func (p *Prompter) ask(prompt string) (string, bool, error) {
	_, _ = io.WriteString(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("read input: %w", err)
	}
	if err != nil && line == "" {
		_, _ = io.WriteString(p.out, "\n")
		return "", false, nil
	}

	return strings.TrimSpace(line), true, nil
}

func (p *Prompter) println(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

func rangeMessage(e *geo.ValidationError) string {
	field := strings.ToUpper(e.Field[:1]) + e.Field[1:]
	return fmt.Sprintf("Error: %s must be between %v and %v. Please try again.", field, e.Min, e.Max)
}
