package dupkey

import "testing"

func TestCheck_NoDup(t *testing.T) {
	docs := []string{
		`{"a":1,"b":2}`,
		`[{"a":1},{"a":2}]`,
		`{"a":{"x":1},"b":{"x":1}}`,
		`"scalar"`,
		``,
	}
	for _, d := range docs {
		if err := Check([]byte(d)); err != nil {
			t.Fatalf("%s: unexpected error %v", d, err)
		}
	}
}

func TestCheck_Dup(t *testing.T) {
	cases := []struct {
		doc     string
		pointer string
	}{
		{`{"a":1,"a":2}`, "/a"},
		{`{"a":1,"b":{"c":[true,{"d":1,"d":2}]}}`, "/b/c/1/d"},
		{`[0,{"x/y":[],"x/y":{}}]`, "/1/x~1y"},
		{`{"s":"a","t":"a","s":"b"}`, "/s"},
	}
	for _, c := range cases {
		err := Check([]byte(c.doc))
		de, ok := AsError(err)
		if !ok {
			t.Fatalf("%s: expected duplicate error, got %v", c.doc, err)
		}
		if de.Pointer != c.pointer {
			t.Fatalf("%s: pointer got %q want %q", c.doc, de.Pointer, c.pointer)
		}
	}
}

func TestCheck_SyntaxError(t *testing.T) {
	err := Check([]byte(`{"a" 1}`))
	if err == nil {
		t.Fatalf("expected syntax error")
	}
	if _, ok := AsError(err); ok {
		t.Fatalf("syntax error reported as duplicate")
	}
}
