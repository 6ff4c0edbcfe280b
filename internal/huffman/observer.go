package huffman

// EventKind identifies a codec event.
type EventKind uint8

const (
	// EventFrequencies fires once the input has been counted.
	EventFrequencies EventKind = iota
	// EventTree fires once the tree has been built or read back.
	EventTree
	// EventText fires once the text has been encoded or decoded.
	EventText
	// EventCompressed fires after a successful compression.
	EventCompressed
	// EventDecompressed fires after a successful decompression.
	EventDecompressed
)

func (k EventKind) String() string {
	switch k {
	case EventFrequencies:
		return "frequencies"
	case EventTree:
		return "tree"
	case EventText:
		return "text"
	case EventCompressed:
		return "compressed"
	case EventDecompressed:
		return "decompressed"
	}
	return "unknown"
}

// Event describes one step of a compress or decompress call. Only the
// fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// Frequencies is set for EventFrequencies.
	Frequencies *FrequencyTable

	Symbols  int // distinct symbols in the tree
	TreeBits int // serialized tree length
	PadBits  int // zero bits after the pad-count field
	TextBits int // encoded text length

	InputBytes  int
	OutputBytes int
}

// Observer receives codec events. Implementations must not retain
// Event.Frequencies beyond the call.
type Observer interface {
	Observe(ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event)

// Observe calls f(ev).
func (f ObserverFunc) Observe(ev Event) { f(ev) }

type multiObserver []Observer

func (m multiObserver) Observe(ev Event) {
	for _, o := range m {
		o.Observe(ev)
	}
}

// MultiObserver fans events out to every non-nil observer in order.
func MultiObserver(observers ...Observer) Observer {
	m := make(multiObserver, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

type nopObserver struct{}

func (nopObserver) Observe(Event) {}
