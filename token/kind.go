// SPDX-License-Identifier: MIT
package token

import "fmt"

// Kind identifies the category of a Token.
type Kind int

// iota is used to define an incrementing number sequence for const
// declarations
const (
	Invalid Kind = iota // Unset Kind, never emitted.

	// Payload carrying kinds.
	payloadStart
	Identifier // [A-Za-z_][A-Za-z0-9_]*
	Constant   // [0-9]+
	String     // "..." (decoded content)
	Char       // '.' (decoded content)
	payloadEnd

	keywordStart
	KWAuto
	KWBreak
	KWCase
	KWChar
	KWConst
	KWContinue
	KWDefault
	KWDo
	KWDouble
	KWElse
	KWEnum
	KWExtern
	KWFloat
	KWFor
	KWGoto
	KWIf
	KWInt
	KWLong
	KWRegister
	KWReturn
	KWShort
	KWSigned
	KWSizeof
	KWStatic
	KWStruct
	KWSwitch
	KWTypedef
	KWUnion
	KWUnsigned
	KWVoid
	KWVolatile
	KWWhile
	keywordEnd

	punctStart
	Plus          // +
	DblPlus       // ++
	Dash          // -
	DblDash       // --
	Arrow         // ->
	Star          // *
	DblStar       // **
	Slash         // /
	DblSlash      // //
	Ampersand     // &
	DblAmpersand  // &&
	Pipe          // |
	DblPipe       // ||
	Equals        // =
	DblEquals     // ==
	LeftCarat     // <
	DblLeftCarat  // <<
	LessEquals    // <=
	RightCarat    // >
	DblRightCarat // >>
	GreaterEquals // >=
	Bang          // !
	NotEquals     // !=
	Percent       // %
	Caret         // ^
	Tilde         // ~
	Dot           // .
	Colon         // :
	Question      // ?
	Comma         // ,
	Semicolon     // ;
	DoubleQuote   // "
	SingleQuote   // '
	LeftParen     // (
	RightParen    // )
	LeftBrace     // {
	RightBrace    // }
	LeftBrkt      // [
	RightBrkt     // ]
	punctEnd
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	Identifier: "Identifier",
	Constant:   "Constant",
	String:     "String",
	Char:       "Char",

	KWAuto:     "KWAuto",
	KWBreak:    "KWBreak",
	KWCase:     "KWCase",
	KWChar:     "KWChar",
	KWConst:    "KWConst",
	KWContinue: "KWContinue",
	KWDefault:  "KWDefault",
	KWDo:       "KWDo",
	KWDouble:   "KWDouble",
	KWElse:     "KWElse",
	KWEnum:     "KWEnum",
	KWExtern:   "KWExtern",
	KWFloat:    "KWFloat",
	KWFor:      "KWFor",
	KWGoto:     "KWGoto",
	KWIf:       "KWIf",
	KWInt:      "KWInt",
	KWLong:     "KWLong",
	KWRegister: "KWRegister",
	KWReturn:   "KWReturn",
	KWShort:    "KWShort",
	KWSigned:   "KWSigned",
	KWSizeof:   "KWSizeof",
	KWStatic:   "KWStatic",
	KWStruct:   "KWStruct",
	KWSwitch:   "KWSwitch",
	KWTypedef:  "KWTypedef",
	KWUnion:    "KWUnion",
	KWUnsigned: "KWUnsigned",
	KWVoid:     "KWVoid",
	KWVolatile: "KWVolatile",
	KWWhile:    "KWWhile",

	Plus:          "Plus",
	DblPlus:       "DblPlus",
	Dash:          "Dash",
	DblDash:       "DblDash",
	Arrow:         "Arrow",
	Star:          "Star",
	DblStar:       "DblStar",
	Slash:         "Slash",
	DblSlash:      "DblSlash",
	Ampersand:     "Ampersand",
	DblAmpersand:  "DblAmpersand",
	Pipe:          "Pipe",
	DblPipe:       "DblPipe",
	Equals:        "Equals",
	DblEquals:     "DblEquals",
	LeftCarat:     "LeftCarat",
	DblLeftCarat:  "DblLeftCarat",
	LessEquals:    "LessEquals",
	RightCarat:    "RightCarat",
	DblRightCarat: "DblRightCarat",
	GreaterEquals: "GreaterEquals",
	Bang:          "Bang",
	NotEquals:     "NotEquals",
	Percent:       "Percent",
	Caret:         "Caret",
	Tilde:         "Tilde",
	Dot:           "Dot",
	Colon:         "Colon",
	Question:      "Question",
	Comma:         "Comma",
	Semicolon:     "Semicolon",
	DoubleQuote:   "DoubleQuote",
	SingleQuote:   "SingleQuote",
	LeftParen:     "LeftParen",
	RightParen:    "RightParen",
	LeftBrace:     "LeftBrace",
	RightBrace:    "RightBrace",
	LeftBrkt:      "LeftBrkt",
	RightBrkt:     "RightBrkt",
}

// spellings holds the literal source text of every fixed Kind.
var spellings = map[Kind]string{
	KWAuto:     "auto",
	KWBreak:    "break",
	KWCase:     "case",
	KWChar:     "char",
	KWConst:    "const",
	KWContinue: "continue",
	KWDefault:  "default",
	KWDo:       "do",
	KWDouble:   "double",
	KWElse:     "else",
	KWEnum:     "enum",
	KWExtern:   "extern",
	KWFloat:    "float",
	KWFor:      "for",
	KWGoto:     "goto",
	KWIf:       "if",
	KWInt:      "int",
	KWLong:     "long",
	KWRegister: "register",
	KWReturn:   "return",
	KWShort:    "short",
	KWSigned:   "signed",
	KWSizeof:   "sizeof",
	KWStatic:   "static",
	KWStruct:   "struct",
	KWSwitch:   "switch",
	KWTypedef:  "typedef",
	KWUnion:    "union",
	KWUnsigned: "unsigned",
	KWVoid:     "void",
	KWVolatile: "volatile",
	KWWhile:    "while",

	Plus:          "+",
	DblPlus:       "++",
	Dash:          "-",
	DblDash:       "--",
	Arrow:         "->",
	Star:          "*",
	DblStar:       "**",
	Slash:         "/",
	DblSlash:      "//",
	Ampersand:     "&",
	DblAmpersand:  "&&",
	Pipe:          "|",
	DblPipe:       "||",
	Equals:        "=",
	DblEquals:     "==",
	LeftCarat:     "<",
	DblLeftCarat:  "<<",
	LessEquals:    "<=",
	RightCarat:    ">",
	DblRightCarat: ">>",
	GreaterEquals: ">=",
	Bang:          "!",
	NotEquals:     "!=",
	Percent:       "%",
	Caret:         "^",
	Tilde:         "~",
	Dot:           ".",
	Colon:         ":",
	Question:      "?",
	Comma:         ",",
	Semicolon:     ";",
	DoubleQuote:   `"`,
	SingleQuote:   "'",
	LeftParen:     "(",
	RightParen:    ")",
	LeftBrace:     "{",
	RightBrace:    "}",
	LeftBrkt:      "[",
	RightBrkt:     "]",
}

var keywords map[string]Kind

func init() {
	keywords = make(map[string]Kind, keywordEnd-keywordStart-1)
	for k := keywordStart + 1; k < keywordEnd; k++ {
		keywords[spellings[k]] = k
	}
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Spelling obtains the fixed source text of k; payload kinds have none.
func (k Kind) Spelling() string { return spellings[k] }

// HasPayload reports whether tokens of kind k carry text.
func (k Kind) HasPayload() bool { return k > payloadStart && k < payloadEnd }

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k > keywordStart && k < keywordEnd }

// IsPunctuation reports whether k is an operator, delimiter or grouping symbol.
func (k Kind) IsPunctuation() bool { return k > punctStart && k < punctEnd }

// Keywords lists every keyword Kind in declaration order.
func Keywords() []Kind { return kindRange(keywordStart, keywordEnd) }

// Punctuation lists every punctuation Kind in declaration order.
func Punctuation() []Kind { return kindRange(punctStart, punctEnd) }

// Lookup maps a word to its keyword Kind, returning Identifier for any other word.
func Lookup(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}

	return Identifier
}

func kindRange(start, end Kind) (kinds []Kind) {
	kinds = make([]Kind, 0, end-start-1)
	for k := start + 1; k < end; k++ {
		kinds = append(kinds, k)
	}

	return
}
