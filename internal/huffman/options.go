package huffman

// Config holds codec settings shared by Encoder and Decoder.
type Config struct {
	Observer Observer
}

// Option is a functional option for configuring an Encoder or Decoder.
type Option func(*Config)

// WithObserver reports codec events to o. A nil o disables reporting.
func WithObserver(o Observer) Option {
	return func(c *Config) {
		c.Observer = o
	}
}

func newConfig(opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Observer == nil {
		cfg.Observer = nopObserver{}
	}
	return cfg
}
