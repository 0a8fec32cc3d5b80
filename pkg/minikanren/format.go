package minikanren

import (
	"fmt"
	"strings"
)

func sprintLVar(id int) string {
	return fmt.Sprintf("<lvar %d>", id)
}

func sprintReifiedName(k int) string {
	return fmt.Sprintf("_.%d", k)
}

// Sprint renders a term the way a front-end would print a reified
// answer: a Seq prints as a parenthesized list, an improper Seq (one
// still carrying a literal DOT after DeepWalk) prints with the dotted-
// pair notation "(a b . c)", and anything else prints via fmt's default
// verb, which picks up LVar.String and reifiedName.String automatically.
func Sprint(t Term) string {
	var b strings.Builder
	sprintTo(&b, t)
	return b.String()
}

func sprintTo(b *strings.Builder, t Term) {
	seq, ok := t.(Seq)
	if !ok {
		fmt.Fprintf(b, "%v", t)
		return
	}
	b.WriteByte('(')
	if prefix, tail, improper := improperSplit(seq); improper {
		for i, el := range prefix {
			if i > 0 {
				b.WriteByte(' ')
			}
			sprintTo(b, el)
		}
		if len(prefix) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(". ")
		sprintTo(b, tail)
	} else {
		for i, el := range seq {
			if i > 0 {
				b.WriteByte(' ')
			}
			sprintTo(b, el)
		}
	}
	b.WriteByte(')')
}
