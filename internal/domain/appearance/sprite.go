package appearance

import (
	"fmt"
	"image/color"
	"strings"
)

// Sprite dimensions in pixels
const (
	SpriteWidth  = 16
	SpriteHeight = 24
	SpritePixels = SpriteWidth * SpriteHeight
)

// Sprite is a grid of palette roles, row-major
type Sprite [SpriteHeight][SpriteWidth]Role

var glyphRoles = map[byte]Role{
	'.': RoleTransparent,
	'S': RoleSkin,
	'H': RoleHair,
	'P': RoleOutfitPrimary,
	'Q': RoleOutfitSecondary,
	'A': RoleOutfitAccent,
	'E': RoleEye,
	'M': RoleMouth,
}

var baseRows = [SpriteHeight]string{
	// head and hair
	"....HHHHHHHH....",
	"...HHHHHHHHHH...",
	"..HHHHHHHHHHHH..",
	".HHHSSSSSSSSHHH.",
	"HHHSSSSSSSSSSHHH",
	"HHSSSESSSSESSSHH",
	"HHSSSSSSSSSSSSHH",
	"HHSSSSSMMSSSSSHH",
	// torso and arms
	".HSSPPPPPPPPSSH.",
	".SSPPPPPPPPPPSS.",
	".SPPPPPPPPPPPPS.",
	".SPPPPPPPPPPPPS.",
	".SPPPPPPPPPPPPS.",
	".SPPPPPPPPPPPPS.",
	".SPPPPPPPPPPPPS.",
	".SPPPPPPPPPPPPS.",
	// legs
	".SQQQQQQQQQQQQS.",
	".SQQQQQQQQQQQQS.",
	".SQQQQQQQQQQQQS.",
	".SQQQQQQQQQQQQS.",
	".SQQQQQQQQQQQQS.",
	".SQQQQQQQQQQQQS.",
	".SQQQQQQQQQQQQS.",
	".SQQQQQQQQQQQQS.",
}

// BaseSprite returns the default character body without outfit details
func BaseSprite() Sprite {
	var s Sprite
	for y, row := range baseRows {
		for x := 0; x < SpriteWidth; x++ {
			s[y][x] = glyphRoles[row[x]]
		}
	}
	return s
}

// OutfitDetails returns the accent overlay for an outfit.
// Transparent pixels leave the base untouched when merged.
func OutfitDetails(o Outfit) Sprite {
	var d Sprite
	switch o {
	case OutfitAdventurer:
		// belt
		for x := 4; x <= 11; x++ {
			d[14][x] = RoleOutfitAccent
		}
	case OutfitKnight:
		// shoulder armour
		for y := 8; y <= 13; y++ {
			d[y][3] = RoleOutfitAccent
			d[y][12] = RoleOutfitAccent
		}
	case OutfitWizard:
		// robe trim
		for y := 8; y <= 13; y++ {
			d[y][2] = RoleOutfitAccent
			d[y][13] = RoleOutfitAccent
		}
	}
	return d
}

// Merge overlays every non-transparent pixel of top onto s
func (s Sprite) Merge(top Sprite) Sprite {
	out := s
	for y := range top {
		for x, r := range top[y] {
			if r != RoleTransparent {
				out[y][x] = r
			}
		}
	}
	return out
}

// Count returns how many pixels use the role
func (s Sprite) Count(r Role) int {
	n := 0
	for y := range s {
		for _, p := range s[y] {
			if p == r {
				n++
			}
		}
	}
	return n
}

// EncodeHex returns the sprite as SpritePixels hex digits, one per pixel, row-major
func (s Sprite) EncodeHex() string {
	var b strings.Builder
	b.Grow(SpritePixels)
	for y := range s {
		for _, r := range s[y] {
			b.WriteByte("0123456789abcdef"[r&0x0f])
		}
	}
	return b.String()
}

// DecodeHex parses a strict SpritePixels-long string of digits 0-7
func DecodeHex(hex string) (Sprite, error) {
	var s Sprite
	if len(hex) != SpritePixels {
		return s, fmt.Errorf("sprite hex must be %d digits, got %d", SpritePixels, len(hex))
	}
	for i := 0; i < SpritePixels; i++ {
		c := hex[i]
		if c < '0' || c > '7' {
			return s, fmt.Errorf("invalid palette digit %q at %d", c, i)
		}
		s[i/SpriteWidth][i%SpriteWidth] = Role(c - '0')
	}
	return s, nil
}

// Sanitize turns loosely formatted generator output into a decodable string.
// Non-hex characters are dropped, hex digits outside the palette become
// mouth, the result is truncated or zero-padded to SpritePixels digits.
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(SpritePixels)
	for i := 0; i < len(raw) && b.Len() < SpritePixels; i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '7':
			b.WriteByte(c)
		case c == '8' || c == '9' || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F'):
			b.WriteByte('0' + byte(RoleMouth))
		}
	}
	for b.Len() < SpritePixels {
		b.WriteByte('0')
	}
	return b.String()
}

// Appearance is the customisable look of the character
type Appearance struct {
	Skin   SkinTone
	Outfit Outfit
	Hair   Hair

	// Custom replaces the generated sprite when set
	Custom *Sprite
}

// Default returns the medium/adventurer/spiky look
func Default() Appearance {
	return Appearance{Skin: SkinMedium, Outfit: OutfitAdventurer, Hair: HairSpiky}
}

// SetCustomHex installs a custom sprite from its hex encoding
func (a *Appearance) SetCustomHex(hex string) error {
	s, err := DecodeHex(hex)
	if err != nil {
		return err
	}
	a.Custom = &s
	return nil
}

// Sprite returns the pixel grid to draw
func (a Appearance) Sprite() Sprite {
	if a.Custom != nil {
		return *a.Custom
	}
	return BaseSprite().Merge(OutfitDetails(a.Outfit))
}

// Color resolves a palette role to a colour. Transparent resolves to the zero colour.
func (a Appearance) Color(r Role) color.RGBA {
	outfit := outfitPalette[a.Outfit]
	switch r {
	case RoleSkin:
		return skinColors[a.Skin]
	case RoleHair:
		return hairColors[a.Hair]
	case RoleOutfitPrimary:
		return outfit.primary
	case RoleOutfitSecondary:
		return outfit.secondary
	case RoleOutfitAccent:
		return outfit.accent
	case RoleEye:
		return colorEye
	case RoleMouth:
		return colorMouth
	default:
		return color.RGBA{}
	}
}

// Snapshot is the opaque appearance record handed to export collaborators
type Snapshot struct {
	SkinTone  string `json:"skinTone"`
	Outfit    string `json:"outfit"`
	Hair      string `json:"hair"`
	SpriteHex string `json:"spriteHex"`
}

// Snapshot returns a serializable copy of the appearance
func (a Appearance) Snapshot() Snapshot {
	return Snapshot{
		SkinTone:  a.Skin.String(),
		Outfit:    a.Outfit.String(),
		Hair:      a.Hair.String(),
		SpriteHex: a.Sprite().EncodeHex(),
	}
}
