package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Compose  bool
	Arena    bool
	Pipeline bool
}

var d *debug

func init() {
	d = &debug{}
	d.Compose = boolEnv("LOGD_DEBUG_COMPOSE")
	d.Arena = boolEnv("LOGD_DEBUG_ARENA")
	d.Pipeline = boolEnv("LOGD_DEBUG_PIPELINE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Compose() bool {
	return d.Compose
}
func Arena() bool {
	return d.Arena
}
func Pipeline() bool {
	return d.Pipeline
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
