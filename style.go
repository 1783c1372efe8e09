package picklist

// BoxAppearance is the resolved look of the control's closed box.
type BoxAppearance struct {
	TextColor        uint32
	PlaceholderColor uint32
	Background       uint32
	BorderColor      uint32
	BorderWidth      float32

	// IconSize scales the dropdown arrow as a fraction of the box height.
	IconSize float32
}

// MenuAppearance is the resolved look of the overlay menu.
type MenuAppearance struct {
	TextColor          uint32
	Background         uint32
	BorderColor        uint32
	BorderWidth        float32
	SelectedTextColor  uint32
	SelectedBackground uint32
}

// TextFieldAppearance is the resolved look of the embedded text field.
type TextFieldAppearance struct {
	TextColor        uint32
	PlaceholderColor uint32
	Background       uint32
	BorderColor      uint32
	BorderWidth      float32
}

// StyleSheet provides the box appearance per interaction state.
type StyleSheet interface {
	Active() BoxAppearance
	Hovered() BoxAppearance
}

// MenuStyleSheet provides the overlay menu appearance.
type MenuStyleSheet interface {
	MenuStyle() MenuAppearance
}

// TextFieldStyleSheet provides the embedded text field appearance.
type TextFieldStyleSheet interface {
	TextFieldStyle() TextFieldAppearance
}

// Theme is the full set of styling capabilities the widget needs from its
// host. Hosts compose the three small sheets rather than subclassing a
// monolithic theme type.
type Theme interface {
	StyleSheet
	MenuStyleSheet
	TextFieldStyleSheet
}

// Palette is a concrete Theme built from a flat color set.
type Palette struct {
	Text            uint32
	Placeholder     uint32
	Background      uint32
	HoverBackground uint32
	Border          uint32
	HoverBorder     uint32
	MenuBackground  uint32
	Selected        uint32
	SelectedText    uint32
	BorderWidth     float32
	IconSize        float32
}

// Active implements StyleSheet.
func (p Palette) Active() BoxAppearance {
	return BoxAppearance{
		TextColor:        p.Text,
		PlaceholderColor: p.Placeholder,
		Background:       p.Background,
		BorderColor:      p.Border,
		BorderWidth:      p.BorderWidth,
		IconSize:         p.IconSize,
	}
}

// Hovered implements StyleSheet.
func (p Palette) Hovered() BoxAppearance {
	a := p.Active()
	a.Background = p.HoverBackground
	a.BorderColor = p.HoverBorder
	return a
}

// MenuStyle implements MenuStyleSheet.
func (p Palette) MenuStyle() MenuAppearance {
	return MenuAppearance{
		TextColor:          p.Text,
		Background:         p.MenuBackground,
		BorderColor:        p.Border,
		BorderWidth:        p.BorderWidth,
		SelectedTextColor:  p.SelectedText,
		SelectedBackground: p.Selected,
	}
}

// TextFieldStyle implements TextFieldStyleSheet.
func (p Palette) TextFieldStyle() TextFieldAppearance {
	return TextFieldAppearance{
		TextColor:        p.Text,
		PlaceholderColor: p.Placeholder,
		Background:       p.Background,
		BorderColor:      p.HoverBorder,
		BorderWidth:      p.BorderWidth,
	}
}

// DefaultTheme returns a dark theme with neutral grays.
func DefaultTheme() Palette {
	return Palette{
		Text:            ColorWhite,
		Placeholder:     ColorGray,
		Background:      RGBA(50, 50, 50, 255),
		HoverBackground: RGBA(70, 70, 70, 255),
		Border:          RGBA(100, 100, 100, 255),
		HoverBorder:     RGBA(140, 140, 140, 255),
		MenuBackground:  RGBA(25, 25, 25, 250),
		Selected:        RGBA(50, 100, 150, 255),
		SelectedText:    ColorWhite,
		BorderWidth:     1,
		IconSize:        0.5,
	}
}

// DarkTheme returns a modern dark theme with a blue selection accent.
func DarkTheme() Palette {
	p := DefaultTheme()
	p.Background = RGBA(45, 45, 45, 255)
	p.HoverBackground = RGBA(65, 65, 65, 255)
	p.Selected = RGBA(65, 105, 225, 255) // Royal blue
	return p
}

// LightTheme returns a light theme.
func LightTheme() Palette {
	return Palette{
		Text:            RGBA(20, 20, 20, 255),
		Placeholder:     RGBA(150, 150, 150, 255),
		Background:      RGBA(245, 245, 245, 255),
		HoverBackground: RGBA(230, 230, 230, 255),
		Border:          RGBA(200, 200, 200, 255),
		HoverBorder:     RGBA(150, 150, 150, 255),
		MenuBackground:  ColorWhite,
		Selected:        RGBA(0, 120, 215, 255),
		SelectedText:    ColorWhite,
		BorderWidth:     1,
		IconSize:        0.5,
	}
}
