package contrast

import (
	"bytes"
	"encoding/json"
)

// TokenSet accumulates tokens across scanned files.
// Later declarations overwrite earlier ones; a name keeps the position of its first declaration.
type TokenSet struct {
	order  []string
	tokens map[string]Token
}

// NewTokenSet creates an empty accumulator
func NewTokenSet() *TokenSet {
	return &TokenSet{tokens: make(map[string]Token)}
}

// Set records tok, replacing any earlier declaration of the same name
func (s *TokenSet) Set(tok Token) {
	if _, exists := s.tokens[tok.Name]; !exists {
		s.order = append(s.order, tok.Name)
	}
	s.tokens[tok.Name] = tok
}

// Get returns the token declared under name
func (s *TokenSet) Get(name string) (Token, bool) {
	tok, ok := s.tokens[name]
	return tok, ok
}

// Value returns the raw declared value for name
func (s *TokenSet) Value(name string) (string, bool) {
	tok, ok := s.tokens[name]
	return tok.Value, ok
}

// Len returns the number of distinct names
func (s *TokenSet) Len() int {
	return len(s.order)
}

// Tokens returns all tokens in first-declaration order
func (s *TokenSet) Tokens() []Token {
	result := make([]Token, 0, len(s.order))
	for _, name := range s.order {
		result = append(result, s.tokens[name])
	}
	return result
}

// MarshalJSON encodes the set as an ordered name -> raw value object
func (s *TokenSet) MarshalJSON() ([]byte, error) {
	return marshalOrdered(s.order, func(name string) any { return s.tokens[name].Value })
}

// ColorSet maps token names to converted colors, in insertion order
type ColorSet struct {
	order  []string
	colors map[string]Color
}

// NewColorSet creates an empty ColorSet
func NewColorSet() *ColorSet {
	return &ColorSet{colors: make(map[string]Color)}
}

// Set records the color for name
func (s *ColorSet) Set(name string, c Color) {
	if _, exists := s.colors[name]; !exists {
		s.order = append(s.order, name)
	}
	s.colors[name] = c
}

// Get returns the color for name
func (s *ColorSet) Get(name string) (Color, bool) {
	c, ok := s.colors[name]
	return c, ok
}

// Len returns the number of resolved colors
func (s *ColorSet) Len() int {
	return len(s.order)
}

// Names returns the resolved names in insertion order
func (s *ColorSet) Names() []string {
	return append([]string(nil), s.order...)
}

// MarshalJSON encodes the set as an ordered name -> [r, g, b] object
func (s *ColorSet) MarshalJSON() ([]byte, error) {
	return marshalOrdered(s.order, func(name string) any { return s.colors[name] })
}

// marshalOrdered writes a JSON object whose keys keep the given order
func marshalOrdered(keys []string, value func(string) any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value(key))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
