package dump

const (
	base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64Pad      = '='
)

// base64Encode encodes buf into the 64-symbol printable alphabet, four
// output characters per three input bytes. Missing bytes in the final group
// are treated as zero for bit-packing and their unused output positions are
// replaced with the padding symbol. The result is always a multiple of four
// characters long, with no line breaks or whitespace.
//
// An empty or nil buffer encodes to "", which callers treat as "no output"
// rather than an error.
func base64Encode(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	out := make([]byte, 0, (len(buf)+2)/3*4)
	for n := 0; n < len(buf); n += 3 {
		var b1, b2 byte
		if n+1 < len(buf) {
			b1 = buf[n+1]
		}
		if n+2 < len(buf) {
			b2 = buf[n+2]
		}
		out = append(out, base64Alphabet[buf[n]>>2])
		out = append(out, base64Alphabet[(buf[n]&3)<<4|b1>>4])
		if n+1 < len(buf) {
			out = append(out, base64Alphabet[(b1&15)<<2|b2>>6])
		} else {
			out = append(out, base64Pad)
		}
		if n+2 < len(buf) {
			out = append(out, base64Alphabet[b2&63])
		} else {
			out = append(out, base64Pad)
		}
	}
	return string(out)
}
