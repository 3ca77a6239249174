package token

var keywords = map[string]Kind{
	"start":     START,
	"finish":    FINISH,
	"loop":      LOOP,
	"condition": CONDITION,
	"declare":   DECLARE,
	"output":    OUTPUT,
	"input":     INPUT,
	"function":  FUNCTION,
	"return":    RETURN,
	"break":     BREAK,
	"continue":  CONTINUE,
	"else":      ELSE,
}

// Lookup reports the keyword kind spelled by word. Matching is case-sensitive.
func Lookup(word string) (Kind, bool) {
	kind, ok := keywords[word]
	return kind, ok
}

func IsBoolean(word string) bool {
	return word == "true" || word == "false"
}
