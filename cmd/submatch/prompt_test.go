package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPromptYesNo(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty defaults to yes", "\n", true},
		{"y", "y\n", true},
		{"yes uppercase", "YES\n", true},
		{"n", "n\n", false},
		{"no", "no\n", false},
		{"garbage", "maybe\n", false},
		{"eof without newline", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptYesNo(strings.NewReader(tc.input), &out, "Proceed?")
			if err != nil {
				t.Fatalf("promptYesNo: %v", err)
			}
			if got != tc.want {
				t.Fatalf("promptYesNo(%q) = %v, want %v", tc.input, got, tc.want)
			}
			if !strings.Contains(out.String(), "Proceed? [Y/n]") {
				t.Fatalf("prompt not written: %q", out.String())
			}
		})
	}
}

func TestConfirmAssumeYesSkipsPrompt(t *testing.T) {
	yes := true
	env := &commandEnv{assumeYes: &yes}

	ok, err := env.confirm(newRootCommand(), "Proceed?")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !ok {
		t.Fatal("expected --yes to confirm without prompting")
	}
}
