// Package bolo implements the Bologna language front end: a lexer and a
// recursive-descent parser that turn source text into an abstract syntax
// tree. The language supports:
//   - Function definitions via `def name(params...) expr` with a single
//     expression body.
//   - External declarations via `extern name(params...)`.
//   - Numeric literals, variable references, function calls, and
//     parenthesized grouping.
//   - Left-associative binary operators (<, +, -, *, /) parsed by
//     precedence climbing.
//
// Comments beginning with `#` run to end of line and are ignored, as is all
// whitespace. Top-level semicolons separate units and never appear in the
// tree. Parsing never panics: the lexer turns every byte into some token,
// and each parse failure is reported as a *ParseError value.
package bolo
