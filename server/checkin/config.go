package checkin

import (
	"fmt"
	"strings"

	"github.com/ritrovo/ritrovo/internal/xtime"
)

type Config struct {
	Secret         string         `toml:"secret"`
	MemberTokenTTL xtime.Duration `toml:"member_token_ttl"`
	EventTokenTTL  xtime.Duration `toml:"event_token_ttl"`
	Tolerance      xtime.Duration `toml:"tolerance"`
	FrontendURL    string         `toml:"frontend_url"`
	QREvery        xtime.Duration `toml:"qr_every"`
	QRBurst        int            `toml:"qr_burst"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n Secret: %s\n MemberTokenTTL: %s\n EventTokenTTL: %s\n Tolerance: %s\n FrontendURL: %s\n QREvery: %s\n QRBurst: %d",
		strings.Repeat("*", len(c.Secret)),
		c.MemberTokenTTL,
		c.EventTokenTTL,
		c.Tolerance,
		c.FrontendURL,
		c.QREvery,
		c.QRBurst,
	)
}
