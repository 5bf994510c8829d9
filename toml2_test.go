package toml2

import (
	"strings"
	"testing"
)

func TestParseEndToEnd(t *testing.T) {
	src := `
title = "TOML Example"

[owner]
name = "Tom Preston-Werner"
dob = 1979-05-27T07:32:00-08:00

[database]
server = "192.168.1.1"
ports = [8001, 8001, 8002]
connection_max = 5000
enabled = true

[servers]

  [servers.alpha]
  ip = "10.0.0.1"
  dc = "eqdc10"

  [servers.beta]
  ip = "10.0.0.2"
  dc = "eqdc10"

[clients]
data = [["gamma", "delta"], [1, 2]]

# Line breaks are OK when inside arrays
hosts = [
  "alpha",
  "omega"
]
`
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	title, ok := doc.Get("title")
	if !ok || title.String() != "TOML Example" {
		t.Fatalf("title = %v, %v", title, ok)
	}

	name, ok := doc.GetPath("owner.name")
	if !ok || name.String() != "Tom Preston-Werner" {
		t.Fatalf("owner.name = %v, %v", name, ok)
	}

	ip, ok := doc.GetPath("servers.beta.ip")
	if !ok || ip.String() != "10.0.0.2" {
		t.Fatalf("servers.beta.ip = %v, %v", ip, ok)
	}

	ports, ok := doc.GetPath("database.ports")
	if !ok || ports.Len() != 3 {
		t.Fatalf("database.ports = %v, %v", ports, ok)
	}

	hosts, ok := doc.GetPath("clients.hosts")
	if !ok || hosts.Len() != 2 {
		t.Fatalf("clients.hosts = %v, %v", hosts, ok)
	}
}

func TestParseBytesReturnsCompilerErrorOnFailure(t *testing.T) {
	_, err := ParseBytes([]byte("bad = [1, \"two\"]\n"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if _, ok := err.(ParseError); !ok {
		t.Fatalf("error type = %T, want ParseError", err)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("/nonexistent/path/for/toml2/tests.toml")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
