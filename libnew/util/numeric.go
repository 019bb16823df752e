package util

// IsNumericInput reports whether str is non-empty and made only of ASCII digits.
// Sign characters and whitespace are rejected.
func IsNumericInput(str string) bool {
	if len(str) == 0 {
		return false
	}
	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return false
		}
	}
	return true
}
