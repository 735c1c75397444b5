package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Token bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("HJSON_DEBUG_PARSE")
	d.Token = boolEnv("HJSON_DEBUG_TOKEN")
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
func Token() bool {
	return d.Token
}
