package lexer

// class is a single-byte character class. peek and match test one class
// per relative offset, so a list of classes describes a fixed-length run.
type class func(byte) bool

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return isLetter(b) || b == '@'
}

func isIdentPart(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '_' || b == '-'
}

func isNumberStart(b byte) bool {
	return isDigit(b) || b == '-'
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\b', '\n', '\r', '\t':
		return true
	}
	return false
}

// isEscapeTarget matches the character allowed after a backslash.
func isEscapeTarget(b byte) bool {
	switch b {
	case 'b', 'n', 'r', 't', '\'', '"', '\\':
		return true
	}
	return false
}

// isCharBody matches a plain character-literal body. Backslash is allowed
// here only because the escape branch is always tried first.
func isCharBody(b byte) bool {
	return b != '\'' && b != '\n' && b != '\r'
}

// isStringBody matches a plain string-literal byte.
func isStringBody(b byte) bool {
	return b != '\\' && b != '"' && b != '\n' && b != '\r'
}

func anyChar(byte) bool { return true }

// is returns a class matching exactly one literal byte.
func is(lit byte) class {
	return func(b byte) bool { return b == lit }
}

// Lexer converts PLC source text into a flat token sequence. It owns one
// cursor for the duration of a single run and must not be shared across
// goroutines.
type Lexer struct {
	chars *cursor
}

// New creates a lexer over the given source text.
func New(input string) *Lexer {
	return &Lexer{chars: newCursor(input)}
}

// Lex tokenizes input eagerly and returns the full token sequence, or the
// first lexical error encountered.
func Lex(input string) ([]Token, error) {
	return New(input).Lex()
}

// Lex runs the whitespace-skip/token loop over the whole input.
func (l *Lexer) Lex() ([]Token, error) {
	var tokens []Token
	for l.chars.has(0) {
		if l.match(isWhitespace) {
			l.chars.skip()
			continue
		}
		tok, err := l.lexToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// lexToken dispatches on the next character's class without consuming it.
func (l *Lexer) lexToken() (Token, error) {
	switch {
	case l.peek(isIdentStart):
		return l.lexIdentifier(), nil
	case l.peek(isNumberStart):
		return l.lexNumber()
	case l.peek(is('\'')):
		return l.lexCharacter()
	case l.peek(is('"')):
		return l.lexString()
	case l.peek(anyChar):
		return l.lexOperator(), nil
	}
	return Token{}, &Error{Kind: InvalidCharacter, Index: l.chars.pos}
}

// lexIdentifier consumes the guaranteed start character and then a maximal
// run of continuation characters. Identifiers cannot fail.
func (l *Lexer) lexIdentifier() Token {
	l.match(isIdentStart)
	for l.match(isIdentPart) {
	}
	return l.chars.emit(Identifier)
}

// lexNumber recognizes optionally signed integer and decimal literals.
// The literal text is kept verbatim; no numeric conversion happens here.
func (l *Lexer) lexNumber() (Token, error) {
	l.match(is('-'))
	if l.peek(is('0'), isDigit) {
		return Token{}, &Error{Kind: LeadingZero, Index: l.chars.pos + 1}
	}
	for l.match(isDigit) {
	}
	if l.match(is('.')) {
		if !l.peek(isDigit) {
			return Token{}, &Error{Kind: TrailingDecimalPoint, Index: l.chars.pos}
		}
		for l.match(isDigit) {
		}
		return l.chars.emit(Decimal), nil
	}
	return l.chars.emit(Integer), nil
}

// lexCharacter recognizes a single-quoted literal holding exactly one
// plain character or one escape sequence.
func (l *Lexer) lexCharacter() (Token, error) {
	l.match(is('\''))
	switch {
	case l.peek(is('\\')):
		if err := l.lexEscape(); err != nil {
			return Token{}, err
		}
	case l.match(isCharBody):
	default:
		return Token{}, &Error{Kind: InvalidCharacterLiteral, Index: l.chars.pos}
	}
	if !l.match(is('\'')) {
		return Token{}, &Error{Kind: UnterminatedCharacter, Index: l.chars.pos}
	}
	return l.chars.emit(Character), nil
}

// lexString recognizes a double-quoted literal whose body is any mix of
// plain characters and escape sequences. Reaching end of input before the
// closing quote is an InvalidString error.
func (l *Lexer) lexString() (Token, error) {
	l.match(is('"'))
	for !l.peek(is('"')) {
		switch {
		case !l.chars.has(0):
			return Token{}, &Error{Kind: InvalidString, Index: l.chars.pos}
		case l.peek(is('\\')):
			if err := l.lexEscape(); err != nil {
				return Token{}, err
			}
		case l.match(isStringBody):
		default:
			return Token{}, &Error{Kind: InvalidString, Index: l.chars.pos}
		}
	}
	l.match(is('"'))
	return l.chars.emit(String), nil
}

// lexEscape consumes a backslash plus one escape target. It emits nothing
// itself; the two characters stay part of the enclosing literal's span.
func (l *Lexer) lexEscape() error {
	if !l.match(is('\\')) {
		return &Error{Kind: InvalidEscape, Index: l.chars.pos}
	}
	if !l.match(isEscapeTarget) {
		return &Error{Kind: InvalidEscapeTarget, Index: l.chars.pos}
	}
	return nil
}

// lexOperator tries the fixed two-character operators first, then falls
// back to any single character. Dispatch guarantees one exists.
func (l *Lexer) lexOperator() Token {
	if l.match(is('!'), is('=')) || l.match(is('='), is('=')) ||
		l.match(is('&'), is('&')) || l.match(is('|'), is('|')) {
		return l.chars.emit(Operator)
	}
	l.match(anyChar)
	return l.chars.emit(Operator)
}

// peek reports whether the characters at relative offsets 0..len-1 exist
// and each belong to the corresponding class. It never mutates the cursor.
func (l *Lexer) peek(classes ...class) bool {
	for i, cc := range classes {
		if !l.chars.has(i) || !cc(l.chars.get(i)) {
			return false
		}
	}
	return true
}

// match is peek plus consumption: all characters are consumed on success,
// none on failure.
func (l *Lexer) match(classes ...class) bool {
	ok := l.peek(classes...)
	if ok {
		for range classes {
			l.chars.advance()
		}
	}
	return ok
}
