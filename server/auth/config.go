package auth

import (
	"fmt"
	"strings"
)

type Config struct {
	Secret string `toml:"secret"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n Secret: %s",
		strings.Repeat("*", len(c.Secret)),
	)
}
