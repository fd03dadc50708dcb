// SPDX-License-Identifier: MIT
package lexer

import "gitlab.com/fisherprime/cclex/token"

// Item holds either a lexed Token or the lexical error encountered in its place.
type Item struct {
	Err   error
	Token token.Token
}
