// Package debug provides env-gated debug logging for the codec.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Ref    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("NANOJSON_DEBUG_PARSE")
	d.Encode = boolEnv("NANOJSON_DEBUG_ENCODE")
	d.Ref = boolEnv("NANOJSON_DEBUG_REF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Ref() bool {
	return d.Ref
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
