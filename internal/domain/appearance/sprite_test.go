package appearance

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseSprite_Layout(t *testing.T) {
	s := BaseSprite()

	assert.Equal(t, RoleTransparent, s[0][0])
	assert.Equal(t, RoleHair, s[0][4])
	assert.Equal(t, RoleEye, s[5][5])
	assert.Equal(t, RoleEye, s[5][10])
	assert.Equal(t, RoleMouth, s[7][7])
	assert.Equal(t, RoleMouth, s[7][8])
	assert.Equal(t, RoleOutfitPrimary, s[10][5])
	assert.Equal(t, RoleOutfitSecondary, s[20][5])
	assert.Equal(t, 2, s.Count(RoleEye))
	assert.Equal(t, 0, s.Count(RoleOutfitAccent))
}

func TestOutfitDetails(t *testing.T) {
	tests := []struct {
		outfit Outfit
		accent int
		probeY int
		probeX int
	}{
		{OutfitAdventurer, 8, 14, 4},
		{OutfitKnight, 12, 8, 3},
		{OutfitWizard, 12, 13, 13},
	}

	for _, tt := range tests {
		t.Run(tt.outfit.String(), func(t *testing.T) {
			merged := BaseSprite().Merge(OutfitDetails(tt.outfit))
			assert.Equal(t, tt.accent, merged.Count(RoleOutfitAccent))
			assert.Equal(t, RoleOutfitAccent, merged[tt.probeY][tt.probeX])
		})
	}
}

func TestMerge_TransparentKeepsBase(t *testing.T) {
	base := BaseSprite()
	var empty Sprite

	assert.Equal(t, base, base.Merge(empty))
}

func TestHex_RoundTrip(t *testing.T) {
	s := BaseSprite().Merge(OutfitDetails(OutfitKnight))
	hex := s.EncodeHex()
	require.Len(t, hex, SpritePixels)
	assert.True(t, strings.HasPrefix(hex, "0000222222220000"))

	decoded, err := DecodeHex(hex)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestDecodeHex_Errors(t *testing.T) {
	_, err := DecodeHex("0123")
	assert.Error(t, err)

	bad := strings.Repeat("0", SpritePixels-1) + "9"
	_, err = DecodeHex(bad)
	assert.Error(t, err)
}

func TestSanitize(t *testing.T) {
	t.Run("pads short input", func(t *testing.T) {
		out := Sanitize("12")
		require.Len(t, out, SpritePixels)
		assert.Equal(t, "120", out[:3])
	})

	t.Run("maps out of palette digits and drops noise", func(t *testing.T) {
		out := Sanitize("1 9\nF-z3")
		assert.Equal(t, "1773", out[:4])
	})

	t.Run("truncates long input", func(t *testing.T) {
		out := Sanitize(strings.Repeat("5", SpritePixels+40))
		assert.Equal(t, strings.Repeat("5", SpritePixels), out)
	})

	t.Run("always decodes", func(t *testing.T) {
		_, err := DecodeHex(Sanitize("garbage ~~ 8888"))
		assert.NoError(t, err)
	})
}

func TestAppearance_Color(t *testing.T) {
	a := Appearance{Skin: SkinDark, Outfit: OutfitWizard, Hair: HairStraight}

	assert.Equal(t, color.RGBA{0xe0, 0xac, 0x69, 0xff}, a.Color(RoleSkin))
	assert.Equal(t, color.RGBA{0x2f, 0x18, 0x10, 0xff}, a.Color(RoleHair))
	assert.Equal(t, color.RGBA{0x4b, 0x00, 0x82, 0xff}, a.Color(RoleOutfitPrimary))
	assert.Equal(t, color.RGBA{0xff, 0x69, 0xb4, 0xff}, a.Color(RoleOutfitAccent))
	assert.Equal(t, color.RGBA{0x8b, 0x00, 0x00, 0xff}, a.Color(RoleMouth))
	assert.Equal(t, color.RGBA{}, a.Color(RoleTransparent))
}

func TestAppearance_CustomSprite(t *testing.T) {
	a := Default()
	require.NoError(t, a.SetCustomHex(strings.Repeat("1", SpritePixels)))

	assert.Equal(t, SpritePixels, a.Sprite().Count(RoleSkin))
	assert.Error(t, a.SetCustomHex("zz"))
}

func TestAppearance_Snapshot(t *testing.T) {
	snap := Default().Snapshot()

	assert.Equal(t, "medium", snap.SkinTone)
	assert.Equal(t, "adventurer", snap.Outfit)
	assert.Equal(t, "spiky", snap.Hair)
	assert.Len(t, snap.SpriteHex, SpritePixels)
}

func TestParseOptions(t *testing.T) {
	skin, ok := ParseSkinTone("light")
	assert.True(t, ok)
	assert.Equal(t, SkinLight, skin)

	_, ok = ParseOutfit("pirate")
	assert.False(t, ok)

	hair, ok := ParseHair("curly")
	assert.True(t, ok)
	assert.Equal(t, HairCurly, hair)
}
