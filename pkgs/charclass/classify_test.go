package charclass

import "testing"

func TestOf(t *testing.T) {
	cases := []struct {
		name string
		r    rune
		want Class
	}{
		{"lowercase letter", 'a', Value},
		{"digit", '5', Value},
		{"underscore", '_', Value},
		{"dash", '-', Value},
		{"dot", '.', Value},
		{"plus", '+', Value},
		{"space", ' ', Whitespace},
		{"tab", '\t', Whitespace},
		{"newline", '\n', Whitespace},
		{"open brace", '{', Symbol},
		{"close brace", '}', Symbol},
		{"open bracket", '[', Symbol},
		{"close bracket", ']', Symbol},
		{"comma", ',', Symbol},
		{"colon", ':', Symbol},
		{"quote", '"', Symbol},
		{"slash", '/', Symbol},
		{"minus sign duplicate check", '-', Value},
		{"currency sign", '$', Symbol},
		{"exclamation", '!', Symbol},
		{"backslash", '\\', Symbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Of(tc.r); got != tc.want {
				t.Errorf("Of(%q) = %s, want %s", tc.r, got, tc.want)
			}
		})
	}
}

func TestOfIsTotal(t *testing.T) {
	for r := rune(0); r < 0x250; r++ {
		c := Of(r)
		if c != Whitespace && c != Value && c != Symbol {
			t.Fatalf("Of(%q) returned invalid class %v", r, c)
		}
	}
}
