package report

// Style holds the glyph set used to draw the tree branches.
//
// Reference print, with each field marked:
//
//	╶──┬╼ main                  <- Starting + TurningEnding
//	   ├──┬╼ simulation         <- Branching + TurningEnding
//	   │  └───╼ collisions      <- Continuing, Turning + Ending
//	   └───╼ rendering          <- Turning + Ending
type Style struct {
	Name          string
	Starting      string
	Continuing    string
	Branching     string
	Turning       string
	Ending        string
	TurningEnding string
}

// Streamlined is the default style.
//
//	╶──┬╼ main                        - 100.0%, 300 ms/loop, 2 samples
//	   ├──┬╼ physics simulation      -  66.7%, 200 ms/loop, 4 samples
//	   │  ├───╼ moving things        -  50.0%, 100 ms/loop, 4 samples
//	   │  └───╼ resolving collisions -  50.0%, 100 ms/loop, 4 samples
//	   └───╼ rendering               -  33.3%, 100 ms/loop, 2 samples
var Streamlined = Style{
	Name:          "streamlined",
	Starting:      "╶",
	Continuing:    "│",
	Branching:     "├",
	Turning:       "└",
	Ending:        "───╼",
	TurningEnding: "──┬╼",
}

// Rounded is Streamlined with rounded corners.
var Rounded = Style{
	Name:          "rounded",
	Starting:      "╶",
	Continuing:    "│",
	Branching:     "├",
	Turning:       "╰",
	Ending:        "───╼",
	TurningEnding: "──┬╼",
}

// Compatible is made out of -'s and |'s for small charsets.
var Compatible = Style{
	Name:          "compatible",
	Starting:      "-",
	Continuing:    "|",
	Branching:     "|",
	Turning:       `\`,
	Ending:        "----",
	TurningEnding: "----",
}

// Doubled draws double-struck lines.
var Doubled = Style{
	Name:          "doubled",
	Starting:      "═",
	Continuing:    "║",
	Branching:     "╠",
	Turning:       "╚",
	Ending:        "════",
	TurningEnding: "══╦═",
}

// Styles lists every built-in style, default first.
func Styles() []Style {
	return []Style{Streamlined, Rounded, Compatible, Doubled}
}

// StyleByName looks up a built-in style by its name.
func StyleByName(name string) (Style, bool) {
	for _, s := range Styles() {
		if s.Name == name {
			return s, true
		}
	}
	return Style{}, false
}
