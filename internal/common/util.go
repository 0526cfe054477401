package common

// WipeByteArray overwrites the buffer with zeros. Used to scrub secrets
// read from the terminal once they have been handed to the cipher.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
