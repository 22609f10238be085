package runeio

// CaretForm computes the ^-escaped printable form of a C0 or C1 control
// rune, or "" if r isn't a control character. Useful for rendering trace
// and dump output without control characters disrupting the terminal.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}
