package main

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestFlatInvocationSelectsGen(t *testing.T) {
	// The documented flag surface works on the binary itself, without
	// naming the gen subcommand.
	dir := t.TempDir()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Name("worldsrc"))
	if err != nil {
		t.Fatal(err)
	}

	ctx, err := parser.Parse([]string{
		"--input", dir,
		"--output", dir,
		"--target", "assemblyscript",
		"--optimization", "full",
		"--sourcemaps",
	})
	if err != nil {
		t.Fatalf("flat invocation rejected: %v", err)
	}
	if got := ctx.Command(); got != "gen" {
		t.Errorf("command = %q, want gen", got)
	}
	if cli.Gen.Input != dir || cli.Gen.Target != "assemblyscript" || !cli.Gen.SourceMaps {
		t.Errorf("flags not bound: %+v", cli.Gen)
	}
}

func TestExplicitGenStillParses(t *testing.T) {
	dir := t.TempDir()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Name("worldsrc"))
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := parser.Parse([]string{"gen", "--input", dir})
	if err != nil {
		t.Fatalf("gen subcommand rejected: %v", err)
	}
	if got := ctx.Command(); got != "gen" {
		t.Errorf("command = %q, want gen", got)
	}
}

func TestVersionStringCarriesEmbeddedBase(t *testing.T) {
	// Test binaries never carry a stamped module version, so the embedded
	// VERSION file decides.
	v := versionString()
	if !strings.HasPrefix(v, "devel-0.1.0") {
		t.Errorf("versionString() = %q, want devel-0.1.0 prefix", v)
	}
}
