package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// fyneTheme maps the palette onto fyne's named colors. Everything the
// palette does not cover comes from fyne's light default.
type fyneTheme struct {
	palette *Theme
	base    fyne.Theme
}

var _ fyne.Theme = (*fyneTheme)(nil)

// ForFyne adapts t for use with fyne.App.Settings().SetTheme.
func ForFyne(t *Theme) fyne.Theme {
	if t == nil {
		t = Default()
	}
	return &fyneTheme{palette: t, base: fynetheme.DefaultTheme()}
}

func (f *fyneTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground:
		return f.palette.Background()
	case fynetheme.ColorNameForeground:
		return f.palette.Text()
	case fynetheme.ColorNamePrimary:
		return f.palette.Primary()
	case fynetheme.ColorNameFocus:
		return f.palette.Secondary()
	case fynetheme.ColorNameOverlayBackground, fynetheme.ColorNameMenuBackground:
		return f.palette.Surface()
	}
	return f.base.Color(name, fynetheme.VariantLight)
}

func (f *fyneTheme) Font(style fyne.TextStyle) fyne.Resource {
	return f.base.Font(style)
}

func (f *fyneTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return f.base.Icon(name)
}

func (f *fyneTheme) Size(name fyne.ThemeSizeName) float32 {
	return f.base.Size(name)
}
