package filter

import (
	"testing"

	"github.com/pooriaaskarim/logd-sub003/event"
)

func TestExpr(t *testing.T) {
	tests := []struct {
		src  string
		ev   *event.Event
		want bool
	}{
		{"levelno >= 2", event.New(event.WarnLevel, "x"), true},
		{"levelno >= 2", event.New(event.DebugLevel, "x"), false},
		{`level == "ERROR"`, event.New(event.ErrorLevel, "x"), true},
		{`message contains "heartbeat"`, event.New(event.InfoLevel, "heartbeat ok"), true},
		{`!(message contains "heartbeat")`, event.New(event.InfoLevel, "heartbeat ok"), false},
		{`fields.attempt > 2`, event.New(event.InfoLevel, "x").With("attempt", 3), true},
		{`meta.origin == "auth"`, event.New(event.InfoLevel, "x").WithMeta("origin", "auth"), true},
	}
	for _, tt := range tests {
		x, err := Compile(tt.src)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.src, err)
		}
		if got := x.Accept(tt.ev); got != tt.want {
			t.Errorf("%q.Accept = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile("levelno >="); err == nil {
		t.Error("bad expression compiled")
	}
	// non-boolean expressions are rejected at compile time
	if _, err := Compile("message"); err == nil {
		t.Error("non-boolean expression compiled")
	}
}

func TestRunFailureFailsOpen(t *testing.T) {
	x, err := Compile("int(message) > 0")
	if err != nil {
		t.Fatal(err)
	}
	if !x.Accept(event.New(event.InfoLevel, "not a number")) {
		t.Error("run failure dropped the event")
	}
}
