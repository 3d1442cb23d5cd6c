package presets

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var named = map[string]rl.Color{
	"white":   rl.White,
	"black":   rl.Black,
	"gray":    rl.Gray,
	"red":     rl.Red,
	"green":   rl.Green,
	"blue":    rl.Blue,
	"yellow":  rl.Yellow,
	"orange":  rl.Orange,
	"purple":  rl.Purple,
	"magenta": rl.Magenta,
	"skyblue": rl.SkyBlue,
}

// ParseColor accepts a raylib color name, #RGB, #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (rl.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return rl.Color{}, fmt.Errorf("color %q: want a name or #hex", s)
	}
	for i := 0; i < len(hex); i++ {
		if hexDigit(hex[i]) < 0 {
			return rl.Color{}, fmt.Errorf("color %q: bad hex digit %q", s, hex[i])
		}
	}
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		return rl.NewColor(nibble(hex[0])*17, nibble(hex[1])*17, nibble(hex[2])*17, 255), nil
	case 6:
		return rl.NewColor(hexByte(hex[0:2]), hexByte(hex[2:4]), hexByte(hex[4:6]), 255), nil
	case 8:
		return rl.NewColor(hexByte(hex[0:2]), hexByte(hex[2:4]), hexByte(hex[4:6]), hexByte(hex[6:8])), nil
	}
	return rl.Color{}, fmt.Errorf("color %q: want 3, 6 or 8 hex digits", s)
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	return -1
}

func nibble(c byte) uint8 { return uint8(hexDigit(c)) }

func hexByte(s string) uint8 { return nibble(s[0])<<4 | nibble(s[1]) }
