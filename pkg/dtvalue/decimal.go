package dtvalue

// readNumber reads every byte of buf as an ASCII decimal digit and folds
// them into their integer value. buf must be 1..9 bytes; longer runs would
// overflow a plain int well before any DICOM numeric component needs them.
func readNumber(buf []byte) (int, error) {
	if len(buf) == 0 || len(buf) > 9 {
		return 0, &InvalidNumberLengthError{Len: len(buf)}
	}
	acc := 0
	for _, b := range buf {
		if b < '0' || b > '9' {
			return 0, &InvalidNumberTokenError{Value: b}
		}
		acc = acc*10 + int(b-'0')
	}
	return acc, nil
}
