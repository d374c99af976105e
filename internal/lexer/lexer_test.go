package lexer

import "testing"

func TestTokenStream(t *testing.T) {
	sc, err := New("x <=> ~y & (2 => z)")
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{IDENT, EQUIV, NOT, IDENT, AND, LPAREN, NUMBER, IMPLIES, IDENT, RPAREN, EOF}
	for i, k := range want {
		tok, err := sc.Next()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if tok.Kind != k {
			t.Fatalf("token %d: kind = %s, want %s", i, tok.Kind, k)
		}
	}
}

func TestCommandTokens(t *testing.T) {
	sc, err := New("!\n?\n-3\nexit\nhelp\n")
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{BANG, SEMI, QUESTION, SEMI, MINUS, NUMBER, SEMI, EXIT, SEMI, HELP, SEMI, EOF}
	for i, k := range want {
		tok, err := sc.Next()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if tok.Kind != k {
			t.Fatalf("token %d: kind = %s, want %s", i, tok.Kind, k)
		}
	}
}

func TestIdentifierLongerThanKeyword(t *testing.T) {
	sc, err := New("exiting")
	if err != nil {
		t.Fatal(err)
	}
	tok, err := sc.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != IDENT || tok.Text != "exiting" {
		t.Fatalf("got %v, want IDENT(\"exiting\")", tok)
	}
}

func TestInvalidByteReported(t *testing.T) {
	sc, err := New("x @ y")
	if err != nil {
		t.Fatal(err)
	}
	tok, err := sc.Next()
	if err != nil || tok.Kind != IDENT {
		t.Fatalf("expected leading identifier, got %v err=%v", tok, err)
	}
	if _, err := sc.Next(); err == nil {
		t.Fatal("expected a LexInvalid error for '@'")
	}
	tok, err = sc.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != IDENT || tok.Text != "y" {
		t.Fatalf("scanner did not resynchronise after invalid byte: got %v", tok)
	}
}
