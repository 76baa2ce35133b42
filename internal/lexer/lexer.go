// Package lexer implements the tokenizer: six token grammars race over the
// incoming characters of a single token, and the parser that survives
// longest (ties broken by priority) wins.
package lexer

import (
	"strings"
	"unicode"

	"github.com/m0r0zk01/scheme-interpreter/internal/scmerr"
)

// candidate is one of the six racing token grammars.
type candidate struct {
	kind Kind
	// canContinue reports whether acc+c is still a possible prefix of this
	// kind's grammar. Called before c is consumed.
	canContinue func(acc string, c rune) bool
	// valid reports whether acc is a complete, well-formed token of this
	// kind. Only consulted for the winning (longest-lived) candidate.
	valid func(acc string) bool
}

func isSymbolFirst(c rune) bool {
	switch c {
	case '<', '=', '>', '*', '/', '#', '+', '-':
		return true
	}
	return unicode.IsLetter(c)
}

func isSymbolRest(c rune) bool {
	return isSymbolFirst(c) || unicode.IsDigit(c) || c == '?' || c == '!'
}

// candidates in priority order: Boolean > Symbol > Quote > Dot > Bracket >
// Number. The order here doubles as the tie-break order used on a draw.
func candidates() []candidate {
	return []candidate{
		{
			kind: Boolean,
			canContinue: func(acc string, c rune) bool {
				switch acc {
				case "":
					return c == '#'
				case "#":
					return c == 't' || c == 'f'
				default:
					return false
				}
			},
			valid: func(acc string) bool { return acc == "#t" || acc == "#f" },
		},
		{
			kind: Symbol,
			canContinue: func(acc string, c rune) bool {
				if acc == "" {
					return isSymbolFirst(c)
				}
				// A prefix that starts with a standalone sign can never
				// grow into a longer symbol: "+1"/"-2" are numbers, and a
				// lone "+"/"-" is a symbol whenever no digit follows it.
				if acc[0] == '+' || acc[0] == '-' {
					return false
				}
				return isSymbolRest(c)
			},
			valid: func(acc string) bool { return len(acc) > 0 },
		},
		{
			kind: Quote,
			canContinue: func(acc string, c rune) bool {
				return acc == "" && c == '\''
			},
			valid: func(acc string) bool { return acc == "'" },
		},
		{
			kind: Dot,
			canContinue: func(acc string, c rune) bool {
				return acc == "" && c == '.'
			},
			valid: func(acc string) bool { return acc == "." },
		},
		{
			kind: Bracket,
			canContinue: func(acc string, c rune) bool {
				return acc == "" && (c == '(' || c == ')')
			},
			valid: func(acc string) bool { return acc == "(" || acc == ")" },
		},
		{
			kind: Number,
			canContinue: func(acc string, c rune) bool {
				switch {
				case acc == "":
					return c == '+' || c == '-' || unicode.IsDigit(c)
				case acc == "+" || acc == "-":
					return unicode.IsDigit(c)
				default:
					return unicode.IsDigit(c)
				}
			},
			valid: func(acc string) bool {
				body := acc
				if strings.HasPrefix(acc, "+") || strings.HasPrefix(acc, "-") {
					body = acc[1:]
				}
				if body == "" {
					return false
				}
				for _, r := range body {
					if !unicode.IsDigit(r) {
						return false
					}
				}
				return true
			},
		},
	}
}

// Lex tokenizes src in full, returning a SyntaxError for the first
// character that cannot start or extend any of the six token grammars.
func Lex(src string) ([]Token, error) {
	runes := []rune(src)
	pos := 0
	var tokens []Token

	for {
		for pos < len(runes) && unicode.IsSpace(runes[pos]) {
			pos++
		}
		if pos >= len(runes) {
			break
		}

		cs := candidates()
		alive := make([]bool, len(cs))
		deathLen := make([]int, len(cs))
		for i := range cs {
			alive[i] = true
			deathLen[i] = -1
		}

		acc := ""
		i := pos
		for {
			anyAlive := false
			for idx := range alive {
				if alive[idx] {
					anyAlive = true
					break
				}
			}
			if !anyAlive {
				break
			}
			if i >= len(runes) {
				for idx := range alive {
					if alive[idx] {
						deathLen[idx] = len(acc)
						alive[idx] = false
					}
				}
				break
			}
			c := runes[i]
			stillAlive := false
			for idx := range cs {
				if !alive[idx] {
					continue
				}
				if cs[idx].canContinue(acc, c) {
					stillAlive = true
				} else {
					deathLen[idx] = len(acc)
					alive[idx] = false
				}
			}
			if !stillAlive {
				break
			}
			acc += string(c)
			i++
		}

		winnerLen := 0
		for idx := range cs {
			if deathLen[idx] > winnerLen {
				winnerLen = deathLen[idx]
			}
		}
		if winnerLen == 0 {
			return nil, scmerr.Syntaxf("unexpected character %q", string(runes[pos]))
		}

		// Among the longest-lived candidates, the first in priority order
		// whose accumulated text validates wins; "#" is a Symbol because
		// Boolean ties on length but fails validation.
		text := string(runes[pos : pos+winnerLen])
		winner := -1
		for idx := range cs {
			if deathLen[idx] == winnerLen && cs[idx].valid(text) {
				winner = idx
				break
			}
		}
		if winner == -1 {
			return nil, scmerr.Syntaxf("malformed token %q", text)
		}
		tokens = append(tokens, Token{Kind: cs[winner].kind, Text: text})
		pos += winnerLen
	}

	return tokens, nil
}
