/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package literal

import "github.com/alecthomas/participle/v2/lexer"

// Value literal, e.g. `null`, `"name"`, `qname(ns("http://x"), "y")`
type Literal struct {
	Pos       lexer.Position
	Undefined bool       `parser:"(  @'undefined'"`
	Null      bool       `parser:" | @'null'"`
	Bool      *Boolean   `parser:" | @('true' | 'false')"`
	Number    *float64   `parser:" | @Float"`
	Integer   *int64     `parser:" | @Int"`
	String    *string    `parser:" | @String"`
	Namespace *Namespace `parser:" | @@"`
	QName     *QName     `parser:" | @@"`
	Throws    *Throws    `parser:" | @@ )"`
}

type Boolean bool

func (b *Boolean) Capture(values []string) error {
	*b = values[0] == "true"
	return nil
}

// Package namespace literal: `ns("uri")` or `ns("uri", FP_10_0)`.
// Version marker at the end of URI takes precedence over the version.
type Namespace struct {
	Pos     lexer.Position
	URI     string  `parser:"'ns' '(' @String"`
	Version *string `parser:"( ',' @Ident )? ')'"`
}

// QName constructor call literal: `qname()`, `qname("n")`, `qname(ns("u"), "n")`
type QName struct {
	Pos  lexer.Position
	Args []*Literal `parser:"'qname' '(' ( @@ ( ',' @@ )* )? ')'"`
}

// Object whose string conversion throws: `throws("message")`
type Throws struct {
	Message string `parser:"'throws' '(' @String ')'"`
}
