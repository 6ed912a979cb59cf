package bunutil

const hexDigits = "0123456789abcdef"

var escapes = func() (e [256]bool) {
	for i := 0; i < 0x20; i++ {
		e[i] = true
	}
	e['"'] = true
	e['\\'] = true
	return
}()

// AddStringBody adds the escaped body of a JSON string, without the
// surrounding quotes.
func (b *JBuilder) AddStringBody(s string) {
	for i := 0; i < len(s); i++ {
		if escapes[s[i]] {
			b.escapeString(s)
			return
		}
	}
	b.B = append(b.B, s...)
}

func (b *JBuilder) escapeString(s string) {
	n := len(s)
	j := 0
	if n > 0 {
		// Hint the compiler to remove bounds checks in the loop below.
		_ = s[n-1]
	}
	for i := 0; i < n; i++ {
		c := s[i]
		if !escapes[c] {
			continue
		}
		b.B = append(b.B, s[j:i]...)
		switch c {
		case '"':
			b.B = append(b.B, '\\', '"')
		case '\\':
			b.B = append(b.B, '\\', '\\')
		case '\n':
			b.B = append(b.B, '\\', 'n')
		case '\r':
			b.B = append(b.B, '\\', 'r')
		case '\t':
			b.B = append(b.B, '\\', 't')
		default:
			b.B = append(b.B, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
		j = i + 1
	}
	b.B = append(b.B, s[j:]...)
}
