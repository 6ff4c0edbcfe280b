package config

import (
	"github.com/knadh/koanf/v2"
)

// Conf wraps koanf with getters that fall back to a default when the key
// is missing.
type Conf struct {
	*koanf.Koanf
}

func (c *Conf) Get(path string, defaultValues ...any) any {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Get(path)
}

func (c *Conf) Bool(path string, defaultValues ...bool) bool {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Bool(path)
}

func (c *Conf) String(path string, defaultValues ...string) string {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.String(path)
}

func (c *Conf) Int(path string, defaultValues ...int) int {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Int(path)
}
