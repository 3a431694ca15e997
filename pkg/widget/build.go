package widget

import "gitlab.com/tinyland/lab/terminal-widgets/pkg/facts"

type badgeDef struct {
	color Color
	icon  string
}

// defaults fixes the color and icon of each built-in widget by its
// semantic category; only the text comes from the fact.
var defaults = map[string]badgeDef{
	facts.Username:     {Green, IconUser},
	facts.Hostname:     {Green, IconHost},
	facts.Platform:     {Cyan, IconOS},
	facts.Shell:        {Red, IconShell},
	facts.Runtime:      {Sky, IconRuntime},
	facts.Internet:     {Cyan, IconNet},
	facts.Packages:     {Purple, IconPackage},
	facts.Window:       {Yellow, IconWindow},
	facts.Architecture: {Yellow, IconArchitecture},
	facts.CPU:          {Red, IconCPU},
	facts.Memory:       {Cyan, IconRAM},
	facts.Storage:      {Green, IconStorage},
	facts.Battery:      {Sky, IconBattery},
	facts.Uptime:       {Purple, IconUptime},
	facts.Weather:      {Yellow, IconWeather},
	facts.Time:         {Cyan, IconTime},
	facts.Date:         {Green, IconDate},
}

// Build maps a joined fact set onto the default table, in facts.Order. It
// is pure: the same facts always give the same table. A null or missing
// fact yields a widget with empty text, which the renderer drops.
func Build(set facts.Set) *Table {
	t := NewTable()
	for _, name := range facts.Order {
		def := defaults[name]
		v := set.Get(name)

		icon := Glyph(def.icon)
		if _, indexed := indexedGlyphs[def.icon]; indexed {
			icon = Indexed(def.icon, v.Index)
		}

		w := Widget{Name: name, Color: def.color, Icon: icon}
		if v.Valid() {
			w.Text = v.Text
		}
		t.Set(w)
	}
	return t
}
