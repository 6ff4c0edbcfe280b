package logger

import (
	"fmt"
	"strings"

	"github.com/atiedebee/huff/internal/huffman"
	"github.com/duke-git/lancet/v2/slice"
	"github.com/rs/zerolog"
)

// Observer logs codec events at debug level.
type Observer struct {
	log zerolog.Logger
}

func NewObserver(log zerolog.Logger) *Observer {
	return &Observer{log: log}
}

func (o *Observer) Observe(ev huffman.Event) {
	e := o.log.Debug()
	if !e.Enabled() {
		return
	}
	e = e.Str("event", ev.Kind.String())

	switch ev.Kind {
	case huffman.EventFrequencies:
		e.Int("symbols", ev.Symbols).
			Int("input_bytes", ev.InputBytes).
			Str("frequencies", formatFrequencies(ev.Frequencies)).
			Msg("counted symbols")
	case huffman.EventTree:
		e.Int("symbols", ev.Symbols).Int("tree_bits", ev.TreeBits).Msg("tree")
	case huffman.EventText:
		e.Int("text_bits", ev.TextBits).Int("pad_bits", ev.PadBits).Msg("text")
	default:
		e.Int("symbols", ev.Symbols).
			Int("tree_bits", ev.TreeBits).
			Int("pad_bits", ev.PadBits).
			Int("text_bits", ev.TextBits).
			Int("input_bytes", ev.InputBytes).
			Int("output_bytes", ev.OutputBytes).
			Msg("done")
	}
}

func formatFrequencies(t *huffman.FrequencyTable) string {
	if t == nil {
		return ""
	}
	parts := slice.Map(t.Symbols(), func(_ int, s huffman.Symbol) string {
		return fmt.Sprintf("%q:%d", s, t.Count(s))
	})
	return strings.Join(parts, " ")
}
