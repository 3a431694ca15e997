package palette

// plRegisterBuiltins registers the fixed palettes.
func plRegisterBuiltins() {
	for _, p := range []Palette{
		plNormalPalette(),
		plVividPalette(),
	} {
		plRegister(p)
	}
}

// plNormalPalette returns the soft default accents.
func plNormalPalette() Palette {
	return Palette{
		Name: ModeNormal,

		Red:    "#df6b78",
		Green:  "#9ACB73",
		Yellow: "#F2CD80",
		Sky:    "#8AAED2",
		Purple: "#b790ff",
		Cyan:   "#8EC8D8",

		White: White,
		Black: Black,
	}
}

// plVividPalette returns the saturated accents.
func plVividPalette() Palette {
	return Palette{
		Name: ModeVivid,

		Red:    "#D8425C",
		Green:  "#8BC455",
		Yellow: "#f8d255",
		Sky:    "#6AA1DA",
		Purple: "#a06efc",
		Cyan:   "#6EBEDF",

		White: White,
		Black: Black,
	}
}
