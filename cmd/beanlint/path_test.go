package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"osier-hq/beanlint/pkg/path"
)

func TestPathParseCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	if err := pathParseCmd.RunE(cmd, []string{"orders[2].amount"}); err != nil {
		t.Fatalf("path parse error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "canonical: orders[2].amount") {
		t.Errorf("output should echo the canonical form: %q", out)
	}
	if !strings.Contains(out, "nodes:     2") {
		t.Errorf("output should count the collapsed nodes: %q", out)
	}
}

func TestPathParseCommand_InvalidExpression(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(new(bytes.Buffer))

	if err := pathParseCmd.RunE(cmd, []string{"a..b"}); err == nil {
		t.Error("invalid expression should surface a parse error")
	}
}

func TestDescribeNode(t *testing.T) {
	n := path.NodeAtIndex(4)
	if got := describeNode(n); !strings.Contains(got, "index=4") {
		t.Errorf("describeNode = %q, want index=4", got)
	}

	generic := path.NewIterableElementNode()
	if got := describeNode(generic); !strings.Contains(got, "position unknown") {
		t.Errorf("describeNode = %q", got)
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, want := range []string{"path", "config", "version"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command should have a %q subcommand", want)
		}
	}
}
