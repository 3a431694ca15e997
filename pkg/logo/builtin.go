package logo

import "gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"

// Art lines mark color changes with ${n}, picking Colors[n-1].

func linuxLogo() Logo {
	return Logo{
		Name:   "linux",
		Colors: []widget.Color{widget.White, widget.Yellow},
		Art: []string{
			"${1}    .--.",
			"${1}   |o_o |",
			"${1}   |${2}:_/${1} |",
			"${1}  //   \\ \\",
			"${1} (|     | )",
			"${2}/'\\_   _/`\\",
			"${2}\\___)=(___/",
		},
	}
}

func macosLogo() Logo {
	return Logo{
		Name:   "macos",
		Colors: []widget.Color{widget.Green, widget.Yellow, widget.Red, widget.Purple, widget.Sky},
		Art: []string{
			"${1}        .:'",
			"${1}    __ :'__",
			"${2} .'`__`-'__``.",
			"${3}:__________.-'",
			"${3}:_________:",
			"${4} :_________`-;",
			"${5}  `.__.-.__.'",
		},
	}
}

func windowsLogo() Logo {
	return Logo{
		Name:   "windows",
		Colors: []widget.Color{widget.Sky},
		Art: []string{
			"${1}######## ########",
			"${1}######## ########",
			"${1}######## ########",
			"",
			"${1}######## ########",
			"${1}######## ########",
			"${1}######## ########",
		},
	}
}

func androidLogo() Logo {
	return Logo{
		Name:   "android",
		Colors: []widget.Color{widget.Green},
		Art: []string{
			"${1}  \\  _  /",
			"${1} .-'   '-.",
			"${1}/  o   o  \\",
			"${1}|_________|",
			"${1}||       ||",
			"${1}||       ||",
			"${1}  |_| |_|",
		},
	}
}

func pacmanLogo() Logo {
	return Logo{
		Name:   "pacman",
		Colors: []widget.Color{widget.Yellow, widget.White},
		Art: []string{
			"${1}   .--.",
			"${1}  / _.-'  ${2}.  .  .",
			"${1}  \\  '-.",
			"${1}   '--'",
		},
	}
}

func ghostLogo() Logo {
	return Logo{
		Name:   "ghost",
		Colors: []widget.Color{widget.Cyan, widget.White},
		Art: []string{
			"${1}  .-\"\"-.",
			"${1} /${2} o  o ${1}\\",
			"${1}|        |",
			"${1}|        |",
			"${1}|/\\/\\/\\/\\|",
		},
	}
}

func bsdLogo() Logo {
	return Logo{
		Name:   "bsd",
		Colors: []widget.Color{widget.Red},
		Art: []string{
			"${1} /\\,-'''''-,/\\",
			"${1} \\_)       (_/",
			"${1} |           |",
			"${1} |           |",
			"${1}  ;         ;",
			"${1}   '-_____-'",
		},
	}
}

// logoRegisterBuiltins registers the built-in logos.
func logoRegisterBuiltins() {
	for _, l := range []Logo{
		linuxLogo(),
		macosLogo(),
		windowsLogo(),
		androidLogo(),
		pacmanLogo(),
		ghostLogo(),
		bsdLogo(),
	} {
		logoRegister(l)
	}
}
