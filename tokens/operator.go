package tokens

import "fmt"

type OperatorID uint8

const (
	NoOperator OperatorID = iota

	OpEllipsis  // ...
	OpShlAssign // <<=
	OpShrAssign // >>=

	OpEq         // ==
	OpNotEq      // !=
	OpLessEq     // <=
	OpGreaterEq  // >=
	OpArrow      // ->
	OpFatArrow   // =>
	OpAddAssign  // +=
	OpSubAssign  // -=
	OpMulAssign  // *=
	OpDivAssign  // /=
	OpModAssign  // %=
	OpAndAssign  // &=
	OpOrAssign   // |=
	OpXorAssign  // ^=
	OpAndAnd     // &&
	OpOrOr       // ||
	OpShl        // <<
	OpShr        // >>
	OpColonColon // ::
	OpDefine     // :=
	OpRange      // ..
	OpInc        // ++
	OpDec        // --

	OpPlus
	OpMinus
	OpStar
	OpSlash
	OpPercent
	OpAssign
	OpLess
	OpGreater
	OpBang
	OpAmp
	OpPipe
	OpCaret
	OpTilde
	OpQuestion
	OpColon
	OpSemicolon
	OpComma
	OpDot
	OpLParen
	OpRParen
	OpLBracket
	OpRBracket
	OpLBrace
	OpRBrace

	numOperators
)

var operatorSymbols = [numOperators]string{
	NoOperator: "",

	OpEllipsis:  "...",
	OpShlAssign: "<<=",
	OpShrAssign: ">>=",

	OpEq:         "==",
	OpNotEq:      "!=",
	OpLessEq:     "<=",
	OpGreaterEq:  ">=",
	OpArrow:      "->",
	OpFatArrow:   "=>",
	OpAddAssign:  "+=",
	OpSubAssign:  "-=",
	OpMulAssign:  "*=",
	OpDivAssign:  "/=",
	OpModAssign:  "%=",
	OpAndAssign:  "&=",
	OpOrAssign:   "|=",
	OpXorAssign:  "^=",
	OpAndAnd:     "&&",
	OpOrOr:       "||",
	OpShl:        "<<",
	OpShr:        ">>",
	OpColonColon: "::",
	OpDefine:     ":=",
	OpRange:      "..",
	OpInc:        "++",
	OpDec:        "--",

	OpPlus:      "+",
	OpMinus:     "-",
	OpStar:      "*",
	OpSlash:     "/",
	OpPercent:   "%",
	OpAssign:    "=",
	OpLess:      "<",
	OpGreater:   ">",
	OpBang:      "!",
	OpAmp:       "&",
	OpPipe:      "|",
	OpCaret:     "^",
	OpTilde:     "~",
	OpQuestion:  "?",
	OpColon:     ":",
	OpSemicolon: ";",
	OpComma:     ",",
	OpDot:       ".",
	OpLParen:    "(",
	OpRParen:    ")",
	OpLBracket:  "[",
	OpRBracket:  "]",
	OpLBrace:    "{",
	OpRBrace:    "}",
}

// MaxOperatorLen is the length in characters of the longest symbol.
const MaxOperatorLen = 3

var operators = func() map[string]OperatorID {
	m := make(map[string]OperatorID, numOperators)
	for id := NoOperator + 1; id < numOperators; id++ {
		sym := operatorSymbols[id]
		if len(sym) > MaxOperatorLen {
			panic(fmt.Errorf("operator %q too long", sym))
		}
		if _, ok := m[sym]; ok {
			panic(fmt.Errorf("duplicated operator %q", sym))
		}
		m[sym] = id
	}
	return m
}()

func (o OperatorID) String() string {
	if o >= numOperators {
		panic(fmt.Errorf("unknown operator %d", uint8(o)))
	}
	return operatorSymbols[o]
}

// LookupOperator matches a whole symbol, never a prefix of one.
func LookupOperator(sym string) (OperatorID, bool) {
	id, ok := operators[sym]
	return id, ok
}

func Operators() []string {
	ret := make([]string, 0, numOperators-1)
	for id := NoOperator + 1; id < numOperators; id++ {
		ret = append(ret, operatorSymbols[id])
	}
	return ret
}
