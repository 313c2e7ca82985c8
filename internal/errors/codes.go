package errors

// Error codes for the Monkey front end.
//
// Error code ranges:
// E0001-E0099: Lexical errors
// E0100-E0199: Parser errors
// E0900-E0999: Reserved for tooling errors

const (
	// E0001: Unrecognised character in the source
	ErrorIllegalCharacter = "E0001"

	// E0100: Expected token kind not found at the cursor
	ErrorUnexpectedToken = "E0100"

	// E0101: Token has no prefix parse function
	ErrorNoPrefixParse = "E0101"

	// E0102: Integer literal does not fit in 64 bits
	ErrorInvalidInteger = "E0102"

	// E0900: Reference grammar disagrees with the parser
	ErrorCrossCheck = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorIllegalCharacter:
		return "Character is not part of the language"
	case ErrorUnexpectedToken:
		return "Expected token was not found"
	case ErrorNoPrefixParse:
		return "Token cannot start an expression"
	case ErrorInvalidInteger:
		return "Integer literal is out of range"
	case ErrorCrossCheck:
		return "Reference grammar and parser produced different trees"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Lexer"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
