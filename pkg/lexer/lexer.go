// Package lexer turns Mica source text into a flat token sequence.
package lexer

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNonASCII reports source text containing bytes outside 7-bit ASCII.
	ErrNonASCII = errors.New("non-ASCII characters are not supported in source code")

	// ErrInvalidCharacter reports a character no token starts with.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrNumberRange reports a digit run that does not fit a 64-bit integer.
	ErrNumberRange = errors.New("number literal out of range")
)

// Tokenize scans source in a single left-to-right pass. The result always
// ends with exactly one EOF token.
func Tokenize(source string) ([]Token, error) {
	for i := 0; i < len(source); i++ {
		if source[i] >= 0x80 {
			return nil, fmt.Errorf("%w (byte 0x%02x at offset %d)", ErrNonASCII, source[i], i)
		}
	}

	tokens := make([]Token, 0, len(source)/2+1)
	for i := 0; i < len(source); i++ {
		ch := source[i]
		switch ch {
		case '(':
			tokens = append(tokens, Token{Kind: OpenParen})
		case ')':
			tokens = append(tokens, Token{Kind: CloseParen})
		case '{':
			tokens = append(tokens, Token{Kind: OpenBrace})
		case '}':
			tokens = append(tokens, Token{Kind: CloseBrace})
		case '[':
			tokens = append(tokens, Token{Kind: OpenBracket})
		case ']':
			tokens = append(tokens, Token{Kind: CloseBracket})
		case '+', '-', '*', '/', '%':
			tokens = append(tokens, Token{Kind: BinaryOperator, Op: ch})
		case '=':
			tokens = append(tokens, Token{Kind: Equals})
		case ';':
			tokens = append(tokens, Token{Kind: Semicolon})
		case ':':
			tokens = append(tokens, Token{Kind: Colon})
		case ',':
			tokens = append(tokens, Token{Kind: Comma})
		case '.':
			tokens = append(tokens, Token{Kind: Dot})
		case ' ', '\t', '\n', '\r':
		default:
			switch {
			case isDigit(ch):
				end := scanWhile(source, i, isDigit)
				digits := source[i:end]
				n, err := strconv.ParseInt(digits, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: %s", ErrNumberRange, digits)
				}
				tokens = append(tokens, Token{Kind: Number, Value: n})
				i = end - 1
			case isLetter(ch):
				end := scanWhile(source, i, isLetter)
				word := source[i:end]
				if kind, ok := Keyword(word); ok {
					tokens = append(tokens, Token{Kind: kind})
				} else {
					tokens = append(tokens, Token{Kind: Identifier, Name: word})
				}
				i = end - 1
			default:
				return nil, fmt.Errorf("%w '%c'", ErrInvalidCharacter, ch)
			}
		}
	}
	return append(tokens, Token{Kind: EOF}), nil
}

func scanWhile(source string, start int, pred func(byte) bool) int {
	end := start
	for end < len(source) && pred(source[end]) {
		end++
	}
	return end
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
