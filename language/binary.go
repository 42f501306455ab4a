package language

// IsBinaryContent reports whether data looks like binary rather than
// text, by sniffing the first 512 bytes for a null byte. Compilation
// databases occasionally name generated inputs that are not text.
func IsBinaryContent(data []byte) bool {
	sniff := data
	if len(sniff) > 512 {
		sniff = sniff[:512]
	}
	for _, b := range sniff {
		if b == 0 {
			return true
		}
	}
	return false
}
