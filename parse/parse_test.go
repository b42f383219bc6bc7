package parse

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/nanofmt/nanojson/encode"

	"github.com/google/go-cmp/cmp"
)

type parseTest struct {
	in   string
	want string // compact re-serialization
	opts []Option
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`, want: `null`},
		{in: `true`, want: `true`},
		{in: `false`, want: `false`},
		{in: `22`, want: `22`},
		{in: `-7`, want: `-7`},
		{in: `1.5`, want: `1.5`},
		{in: `"hello"`, want: `"hello"`},
		{in: `[]`, want: `[]`},
		{in: `{}`, want: `{}`},
		{in: `[1,2,3]`, want: `[1,2,3]`},
		{in: ` [ 1 , [ 2 ] , { } ] `, want: `[1,[2],{}]`},
		{in: `[[[]]]`, want: `[[[]]]`},
		{in: `{"a":1,"b":[true,null]}`, want: `{"a":1,"b":[true,null]}`},
		{in: "{\n  \"a\": {\n    \"b\": 9\n  }\n}", want: `{"a":{"b":9}}`},
		{in: `{"":""}`, want: `{"":""}`},
		{in: `"a/b"`, want: `"a\/b"`},
		{in: `"a\/b"`, want: `"a\/b"`},
		// trailing input after the first element is left unconsumed
		{in: `true false`, want: `true`},
		{in: `1,2`, want: `1`},
		// UTF-8 BOM is tolerated by default
		{in: "\xEF\xBB\xBF[1]", want: `[1]`},
		// extensions, individually enabled
		{in: `[1,2,]`, want: `[1,2]`, opts: []Option{WithFlags(AllowTrailingComma)}},
		{in: `{"a":1,}`, want: `{"a":1}`, opts: []Option{WithFlags(AllowTrailingComma)}},
		{in: `{a:1}`, want: `{"a":1}`, opts: []Option{WithFlags(AllowUnquotedKeys)}},
		{in: `{a:1,}`, want: `{"a":1}`, opts: []Option{WithFlags(AllowUnquotedKeys | AllowTrailingComma)}},
		{in: `+5`, want: `5`, opts: []Option{WithFlags(AllowPlusSign)}},
		{in: "[1, /* two */ 2] // done", want: `[1,2]`, opts: []Option{WithFlags(AllowComments)}},
		{in: "// head\n[1]", want: `[1]`, opts: []Option{WithFlags(AllowComments)}},
		{in: `{a: [1,], /* x */ b: +2,}`, want: `{"a":[1],"b":2}`, opts: []Option{Loose()}},
	}
	for i := range pts {
		pt := &pts[i]
		node, err := Parse([]byte(pt.in), pt.opts...)
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		if got := encode.MustString(node); got != pt.want {
			t.Errorf("# doc\n%s\n# got %s want %s", pt.in, got, pt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: ``},
		{in: `   `},
		{in: `nul`},
		{in: `truth`},
		{in: `[1,2`},
		{in: `[1 2]`},
		{in: `{"a" 1}`},
		{in: `{"a":}`},
		{in: `{"a":1`},
		{in: `"unterminated`},
		{in: `'single'`},
		{in: `.5`},
		{in: `1.`},
		{in: `1e`},
		{in: `1e+`},
		{in: `-`},
		{in: `+5`},
		{in: `[1,2,]`},
		{in: `{"a":1,}`},
		{in: `{a:1}`},
		{in: `[1, /* c */ 2]`},
		{in: `"a/b"`, opts: []Option{Strict()}},
		{in: "\xEF\xBB\xBF[1]", opts: []Option{Strict()}},
		{in: "\"ctrl\x01\""},
		{in: "\"del\x7f\""},
		{in: `"\q"`},
		{in: `"\u12G4"`},
		{in: `"\uD83D"`},
		{in: `"\uD83Dx"`},
		{in: `"\uD83D\uD83D"`},
	}
	for i := range pts {
		pt := &pts[i]
		node, err := Parse([]byte(pt.in), pt.opts...)
		if err == nil {
			t.Errorf("# doc\n%s\n# unexpected success: %s", pt.in, encode.MustString(node))
			continue
		}
		if !errors.Is(err, ErrBadFormat) {
			t.Errorf("# doc\n%s\n# error not ErrBadFormat: %v", pt.in, err)
		}
	}
}

func TestParseNumberBoundaries(t *testing.T) {
	n, err := ParseString("9223372036854775807")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := n.GetInt(); err != nil || v != math.MaxInt64 {
		t.Errorf("max int64: got %v (%s), %v", v, n.Type(), err)
	}

	// one past the largest integer falls over to float
	n, err = ParseString("9223372036854775808")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := n.GetFloat(); err != nil || v != 9223372036854775808.0 {
		t.Errorf("int64 overflow: got %v (%s), %v", v, n.Type(), err)
	}

	n, err = ParseString("-9223372036854775808")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := n.GetInt(); err != nil || v != math.MinInt64 {
		t.Errorf("min int64: got %v (%s), %v", v, n.Type(), err)
	}

	// out-of-range magnitudes saturate instead of failing
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{"1e400", math.Inf(+1)},
		{"-1e400", math.Inf(-1)},
		{"123e999999999999999999999", math.Inf(+1)},
		{"1e-400", 0},
		{"-1e-400", math.Copysign(0, -1)},
	} {
		n, err := ParseString(tc.in)
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		v, err := n.GetFloat()
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if v != tc.want || math.Signbit(v) != math.Signbit(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.in, v, tc.want)
		}
	}

	// huge digit strings survive via the mantissa window
	n, err = ParseString("123456789012345678901234567890123456789012345678901234567890e-30")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := n.GetFloat(); err != nil || v != 1.2345678901234568e29 {
		t.Errorf("long mantissa: got %v, %v", v, err)
	}
}

func TestParseStringEscapes(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{`"\n\t\b\f\r"`, "\n\t\b\f\r"},
		{`"\""`, `"`},
		{`"\\"`, `\`},
		{`"\/"`, `/`},
		{`"\'"`, `'`},
		{`"A"`, "A"},
		{`"é"`, "é"},
		{`"A😃"`, "A😃"},
		// reversed surrogate pair is tolerated
		{`"\uDE03\uD83D"`, "😃"},
		{`"😃B"`, "😃B"},
	} {
		n, err := ParseString(tc.in)
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if got, _ := n.AsString(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	n, err := ParseString(`{"a":1,"b":2,"a":3}`)
	if err != nil {
		t.Fatal(err)
	}
	obj, _ := n.AsObject()
	// the last value wins but keeps the first occurrence's position
	if d := cmp.Diff([]string{"a", "b"}, obj.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
	if got := n.Field("a").IntOr(0); got != 3 {
		t.Errorf("a: got %d", got)
	}
}

func TestParseDepthGuard(t *testing.T) {
	in := strings.Repeat("[", 20) + strings.Repeat("]", 20)
	if _, err := Parse([]byte(in)); err != nil {
		t.Errorf("depth 20 under default guard: %v", err)
	}
	_, err := Parse([]byte(in), MaxDepth(10))
	if !errors.Is(err, ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, got %v", err)
	}
	// ErrTooDeep is its own failure class
	if errors.Is(err, ErrBadFormat) {
		t.Errorf("ErrTooDeep should not wrap ErrBadFormat")
	}

	// disabled guard accepts deep input
	deep := strings.Repeat("[", 2000) + strings.Repeat("]", 2000)
	if _, err := Parse([]byte(deep), MaxDepth(0)); err != nil {
		t.Errorf("unbounded: %v", err)
	}
}

func TestParseFormatErrorDetail(t *testing.T) {
	_, err := ParseString("[1,\n2 x]")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if fe.Pos.Line != 2 {
		t.Errorf("pos: got %s", fe.Pos)
	}
	if !strings.Contains(fe.Error(), "line 2") {
		t.Errorf("message: %s", fe.Error())
	}
}

func TestRead(t *testing.T) {
	n, err := Read(strings.NewReader(`{"a": [1, 2]}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(n); got != `{"a":[1,2]}` {
		t.Errorf("got %s", got)
	}
}
