package cmd

import (
	"os"

	"github.com/goccy/go-yaml"
)

// fixture describes a staged replay for the "run" subcommand: the KEYS
// and ARGV a script receives plus a keyspace to pre-seed the fake store
// with. This is outer harness plumbing (§1 keeps EVALSHA/cache/harness
// machinery out of the core), so it only ever talks to eval's public
// Script/Run functions, never to internal/ directly.
type fixture struct {
	Keys  []string          `yaml:"keys"`
	Argv  []string          `yaml:"argv"`
	Store map[string]string `yaml:"store"`
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *fixture) byteKeys() [][]byte { return toBytes(f.Keys) }
func (f *fixture) byteArgv() [][]byte { return toBytes(f.Argv) }

func toBytes(ss []string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}
