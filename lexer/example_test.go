// SPDX-License-Identifier: MIT
package lexer_test

import (
	"fmt"

	"gitlab.com/fisherprime/cclex/lexer"
)

func ExampleLexer_All() {
	l := lexer.New("int x #;\nchar *s = \"a\\\"b\";")

	for tok, err := range l.All() {
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(tok)
	}

	// Output:
	// KWInt@0:0-3
	// Identifier("x")@0:4-5
	// unrecognized token "#" at 0:6-7
	// Semicolon@0:7-8
	// KWChar@1:0-4
	// Star@1:5-6
	// Identifier("s")@1:6-7
	// Equals@1:8-9
	// String("a\"b")@1:10-16
	// Semicolon@1:16-17
}
