package douceuradapter

// userAgentCSS holds the default styles of the editor's surface. It
// mirrors what browsers ship, restricted to the properties the editor
// reads, plus the few Bootstrap utility classes the seed page relies on.
const userAgentCSS = `
h1 { font-size: 2em; font-weight: 700; }
h2 { font-size: 1.5em; font-weight: 700; }
h3 { font-size: 1.17em; font-weight: 700; }
h4 { font-size: 1em; font-weight: 700; }
h5 { font-size: 0.83em; font-weight: 700; }
h6 { font-size: 0.67em; font-weight: 700; }
b, strong, th { font-weight: 700; }
i, em, cite, var { font-style: italic; }
small { font-size: 13px; }
code, pre, kbd, samp { font-family: monospace; }
a { color: #0000ee; }
th { text-align: center; }
.text-center { text-align: center; }
.text-start { text-align: left; }
.text-end { text-align: right; }
.fw-bold { font-weight: 700; }
.fst-italic { font-style: italic; }
.rounded { border-radius: 6px; }
`

// UserAgentStyleSheet returns the default stylesheet. Every call returns a
// fresh copy.
func UserAgentStyleSheet() *CSSStyles {
	sheet, err := ParseStyleSheet(userAgentCSS)
	if err != nil {
		// cannot happen for the constant source above
		panic(err)
	}
	return sheet
}
