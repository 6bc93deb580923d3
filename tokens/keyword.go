package tokens

import "fmt"

type KeywordID uint8

const (
	NoKeyword KeywordID = iota
	KwBreak
	KwCase
	KwConst
	KwContinue
	KwElse
	KwEnum
	KwFalse
	KwFn
	KwFor
	KwIf
	KwImport
	KwIn
	KwLet
	KwMatch
	KwNil
	KwReturn
	KwStruct
	KwTrue
	KwType
	KwWhile

	numKeywords
)

var keywordNames = [numKeywords]string{
	NoKeyword:  "",
	KwBreak:    "break",
	KwCase:     "case",
	KwConst:    "const",
	KwContinue: "continue",
	KwElse:     "else",
	KwEnum:     "enum",
	KwFalse:    "false",
	KwFn:       "fn",
	KwFor:      "for",
	KwIf:       "if",
	KwImport:   "import",
	KwIn:       "in",
	KwLet:      "let",
	KwMatch:    "match",
	KwNil:      "nil",
	KwReturn:   "return",
	KwStruct:   "struct",
	KwTrue:     "true",
	KwType:     "type",
	KwWhile:    "while",
}

// keywords is built once and only read afterwards.
var keywords = func() map[string]KeywordID {
	m := make(map[string]KeywordID, numKeywords)
	for id := NoKeyword + 1; id < numKeywords; id++ {
		m[keywordNames[id]] = id
	}
	return m
}()

func (k KeywordID) String() string {
	if k >= numKeywords {
		panic(fmt.Errorf("unknown keyword %d", uint8(k)))
	}
	return keywordNames[k]
}

// LookupKeyword matches the exact, case-sensitive text of an identifier.
func LookupKeyword(ident string) (KeywordID, bool) {
	id, ok := keywords[ident]
	return id, ok
}

func Keywords() []string {
	ret := make([]string, 0, numKeywords-1)
	for id := NoKeyword + 1; id < numKeywords; id++ {
		ret = append(ret, keywordNames[id])
	}
	return ret
}
