// Package appearance describes how the player character looks: palette
// options, the 16x24 pixel sprite and its compact hex encoding.
package appearance

import "image/color"

// Role is a palette slot used by sprite pixels.
// The numeric value is the digit used in the hex encoding.
type Role uint8

const (
	RoleTransparent Role = iota
	RoleSkin
	RoleHair
	RoleOutfitPrimary
	RoleOutfitSecondary
	RoleOutfitAccent
	RoleEye
	RoleMouth

	roleCount
)

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case RoleTransparent:
		return "transparent"
	case RoleSkin:
		return "skin"
	case RoleHair:
		return "hair"
	case RoleOutfitPrimary:
		return "primary"
	case RoleOutfitSecondary:
		return "secondary"
	case RoleOutfitAccent:
		return "accent"
	case RoleEye:
		return "eye"
	case RoleMouth:
		return "mouth"
	default:
		return "unknown"
	}
}

// Valid reports whether r is one of the defined roles
func (r Role) Valid() bool {
	return r < roleCount
}

// SkinTone selects the skin colour
type SkinTone int

const (
	SkinMedium SkinTone = iota
	SkinLight
	SkinDark
)

// Outfit selects the outfit colours and details
type Outfit int

const (
	OutfitAdventurer Outfit = iota
	OutfitKnight
	OutfitWizard
)

// Hair selects the hair colour
type Hair int

const (
	HairSpiky Hair = iota
	HairCurly
	HairStraight
)

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

var skinColors = map[SkinTone]color.RGBA{
	SkinLight:  rgb(0xffdbac),
	SkinMedium: rgb(0xf1c27d),
	SkinDark:   rgb(0xe0ac69),
}

type outfitColors struct {
	primary, secondary, accent color.RGBA
}

var outfitPalette = map[Outfit]outfitColors{
	OutfitAdventurer: {rgb(0x8b4513), rgb(0x654321), rgb(0xffd700)},
	OutfitKnight:     {rgb(0x696969), rgb(0x2f4f4f), rgb(0xc0c0c0)},
	OutfitWizard:     {rgb(0x4b0082), rgb(0x800080), rgb(0xff69b4)},
}

var hairColors = map[Hair]color.RGBA{
	HairSpiky:    rgb(0x8b4513),
	HairCurly:    rgb(0x654321),
	HairStraight: rgb(0x2f1810),
}

var (
	colorEye   = rgb(0x000000)
	colorMouth = rgb(0x8b0000)
)

var skinNames = map[string]SkinTone{"light": SkinLight, "medium": SkinMedium, "dark": SkinDark}
var outfitNames = map[string]Outfit{"adventurer": OutfitAdventurer, "knight": OutfitKnight, "wizard": OutfitWizard}
var hairNames = map[string]Hair{"spiky": HairSpiky, "curly": HairCurly, "straight": HairStraight}

// ParseSkinTone returns the skin tone for its name
func ParseSkinTone(s string) (SkinTone, bool) {
	v, ok := skinNames[s]
	return v, ok
}

// ParseOutfit returns the outfit for its name
func ParseOutfit(s string) (Outfit, bool) {
	v, ok := outfitNames[s]
	return v, ok
}

// ParseHair returns the hair style for its name
func ParseHair(s string) (Hair, bool) {
	v, ok := hairNames[s]
	return v, ok
}

// String returns the option name
func (s SkinTone) String() string { return nameOf(skinNames, s) }

// String returns the option name
func (o Outfit) String() string { return nameOf(outfitNames, o) }

// String returns the option name
func (h Hair) String() string { return nameOf(hairNames, h) }

func nameOf[T comparable](names map[string]T, v T) string {
	for name, candidate := range names {
		if candidate == v {
			return name
		}
	}
	return "unknown"
}
