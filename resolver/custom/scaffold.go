package custom

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pftv-cli/pftv/constant"
	"github.com/pftv-cli/pftv/filesystem"
)

var scaffold = template.Must(template.New("resolver").Funcs(template.FuncMap{
	"repeat": strings.Repeat,
	"plus":   func(a, b int) int { return a + b },
}).Parse(constant.ResolverTemplate))

// Scaffold writes a starter script for domain into dir and returns its path.
// An existing script is never overwritten.
func Scaffold(dir, domain, author string) (string, error) {
	domain = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(domain)), "www.")
	if domain == "" || strings.ContainsAny(domain, `/\`) {
		return "", fmt.Errorf("invalid domain %q", domain)
	}

	path := filepath.Join(dir, domain+Extension)
	if exists, _ := filesystem.API().Exists(path); exists {
		return "", fmt.Errorf("%s already exists", path)
	}

	var b bytes.Buffer
	err := scaffold.Execute(&b, struct {
		Domain, Author, Fn string
	}{
		Domain: domain,
		Author: author,
		Fn:     constant.ResolveLinkFn,
	})
	if err != nil {
		return "", err
	}

	if err := filesystem.API().WriteFile(path, b.Bytes(), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
