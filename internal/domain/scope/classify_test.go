package scope_test

import (
	"testing"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
	"github.com/hermeslabs/hermes-rebrand/internal/domain/scope"
	"github.com/stretchr/testify/assert"
)

func TestIsCandidate(t *testing.T) {
	for _, name := range []string{"a.ts", "A.TSX", "x/y/z.mts", "b.cts", "doc.mdx", "vitest.config.ts", "next.config.mjs", "package.json", "tool.cjs", "tsconfig.base.json"} {
		assert.True(t, scope.IsCandidate(name), name)
	}
	for _, name := range []string{"a.go", "README.md", "style.css", "Makefile"} {
		assert.False(t, scope.IsCandidate(name), name)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, domain.ScopeMDX, scope.Classify("docs/intro.mdx"))
	assert.Equal(t, domain.ScopeTypescript, scope.Classify("src/app.tsx"))
	assert.Equal(t, domain.ScopeTypescript, scope.Classify("types/global.d.ts"))
	assert.Equal(t, domain.ScopeTypescript, scope.Classify("src/Worker.MTS"))
	assert.Equal(t, domain.ScopeConfig, scope.Classify("package.json"))
	assert.Equal(t, domain.ScopeConfig, scope.Classify("next.config.mjs"))
}
