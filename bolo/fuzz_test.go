package bolo

import "testing"

func FuzzParseDoesNotPanic(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("def add(a b) a + b"))
	f.Add([]byte("extern sin(x)"))
	f.Add([]byte("1 + 2 * (3 - 4) ; foo(1, 2)"))
	f.Add([]byte("def broken("))
	f.Add([]byte("1.2.3 # comment"))
	f.Add([]byte(")))(((,,;;"))
	f.Add([]byte("\xff\xfe\x00"))

	f.Fuzz(func(t *testing.T, raw []byte) {
		program, _ := NewParser(string(raw)).ParseProgram()

		// Every unit must survive a print/reparse cycle without errors.
		for _, unit := range program.Units {
			printed := Format(unit)
			if _, errs := NewParser(printed).ParseProgram(); len(errs) > 0 {
				t.Fatalf("printed form %q does not reparse: %v", printed, errs)
			}
		}
	})
}

func FuzzLexerTerminates(f *testing.F) {
	f.Add("def x() 1")
	f.Add("# only a comment")
	f.Add("....")

	f.Fuzz(func(t *testing.T, input string) {
		l := NewLexer(input)
		last := -1
		for {
			tok := l.NextToken()
			if tok.Type == TokenEOF {
				return
			}
			if tok.Pos.Offset <= last {
				t.Fatalf("token offset %d not strictly increasing after %d", tok.Pos.Offset, last)
			}
			last = tok.Pos.Offset
		}
	})
}
