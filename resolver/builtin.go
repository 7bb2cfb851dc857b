package resolver

import (
	"regexp"

	"github.com/pftv-cli/pftv/loader"
)

// ExampleCom finds the `file: "..."` token the example.com player sets up in an inline script.
func ExampleCom(fetcher loader.Fetcher) *PatternResolver {
	return &PatternResolver{
		Domain:  "example.com",
		Pattern: regexp.MustCompile(`(?i)file:.?"(?P<url>.*?)"`),
		Fetcher: fetcher,
	}
}

// Builtin returns a registry holding every resolver compiled into the binary.
func Builtin(fetcher loader.Fetcher) *Registry {
	reg := NewRegistry()

	for _, r := range []*PatternResolver{
		ExampleCom(fetcher),
	} {
		reg.Register(r.Domain, r)
	}

	return reg
}
