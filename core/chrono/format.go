package chrono

// AppendElapsed appends the elapsed time rendered as seconds with prec
// fractional digits. Precision requests beyond nanosecond resolution are
// clamped; a precision of 0 omits the fractional part entirely.
func (c *Chrono) AppendElapsed(b []byte, prec int) []byte {
	return c.ElapsedRaw().AppendSeconds(b, prec)
}

func (c *Chrono) FormatElapsed(prec int) string {
	return string(c.AppendElapsed(nil, prec))
}
