// Package text holds the immutable text value that textreport describes,
// along with the pure derivations printed about it.
package text

import "fmt"

// Hello is the literal every report is produced for.
const Hello = "Hello, World!"

// Text is a fixed sequence of single-byte characters. The length is
// computed once at construction and always equals len(value).
type Text struct {
	value  string
	length int
}

// New binds s to a Text and measures it.
func New(s string) Text {
	return Text{value: s, length: len(s)}
}

// Value returns the original character sequence.
func (t Text) Value() string { return t.value }

// Len returns the number of characters in the text.
func (t Text) Len() int { return t.length }

// Reversed returns the characters from index Len()-1 down to 0.
func (t Text) Reversed() string {
	return Reverse(t.value)
}

// Codes returns one Code per character, in ascending index order.
func (t Text) Codes() []Code {
	if t.length == 0 {
		return nil
	}
	codes := make([]Code, 0, t.length)
	for i := 0; i < t.length; i++ {
		codes = append(codes, Code{Char: t.value[i], Value: int(t.value[i])})
	}
	return codes
}

// Reverse returns s with its bytes in reverse order. The domain is
// single-byte ASCII, so no rune decoding is done.
func Reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// Code pairs a character with its numeric code point.
type Code struct {
	Char  byte
	Value int
}

// String formats the code as a table row, e.g. 'H' -> 72. The character
// is written as its raw byte, so values above 0x7F are not UTF-8 encoded.
func (c Code) String() string {
	return fmt.Sprintf("'%s' -> %d", []byte{c.Char}, c.Value)
}
