package text

// IsNonNewlineWhitespace reports whether c is whitespace other than '\n'.
func IsNonNewlineWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

// IsWhitespace reports whether c is any whitespace character, including '\n'.
func IsWhitespace(c byte) bool {
	return c == '\n' || IsNonNewlineWhitespace(c)
}

// IsDigitBinary reports whether c is '0' or '1'.
func IsDigitBinary(c byte) bool {
	return c == '0' || c == '1'
}

// IsDigit reports whether c is a decimal digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsDigitOctal reports whether c is an octal digit.
func IsDigitOctal(c byte) bool {
	return '0' <= c && c <= '7'
}

// IsDigitHex reports whether c is a hexadecimal digit.
func IsDigitHex(c byte) bool {
	return IsDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsAlnum reports whether c is an ASCII letter or digit.
func IsAlnum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsAlphaOrUnderscore reports whether c can start a C-family identifier.
func IsAlphaOrUnderscore(c byte) bool {
	return IsAlpha(c) || c == '_'
}

// IsAlnumOrUnderscore reports whether c can continue a C-family identifier.
func IsAlnumOrUnderscore(c byte) bool {
	return IsAlnum(c) || c == '_'
}

// IsFromBasicCharacterSet reports membership in the C++ basic character set,
// used to validate raw-string delimiters.
// https://en.cppreference.com/w/cpp/language/charset#Basic_character_set
func IsFromBasicCharacterSet(c byte) bool {
	return (0x09 <= c && c <= 0x0c) ||
		(0x20 <= c && c <= 0x3f) ||
		(0x41 <= c && c <= 0x5f) ||
		(0x61 <= c && c <= 0x7e)
}

// CountLines counts the number of source lines in str, treating a trailing
// newline as not starting a new (empty) line.
func CountLines(str string) int {
	if str == "" {
		return 0
	}
	result := 1
	for i := 0; i < len(str); i++ {
		if str[i] == '\n' {
			result++
		}
	}
	if str[len(str)-1] == '\n' {
		result--
	}
	return result
}
