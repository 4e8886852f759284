package scope_test

import (
	"testing"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
	"github.com/hermeslabs/hermes-rebrand/internal/domain/scope"
	"github.com/stretchr/testify/assert"
)

func TestRewriteSpecifiers(t *testing.T) {
	src := `import { Button } from '@lobechat/ui';
import type { Theme } from "@lobechat/types";
import '@lobechat/styles/global.css';
export * from '@lobechat/utils';
import {
  a,
  b,
} from '@lobechat/multi';
const mod = await import('@lobechat/lazy');
const legacy = require("@lobechat/cjs");
vi.mock('@lobechat/database', () => ({}));
jest.mock('@lobechat/server');
import React from 'react';
const label = '@lobechat/not-a-specifier';
`
	out, actions := scope.RewriteSpecifiers(src, domain.LegacyScope, domain.TargetScope)

	assert.Equal(t, `import { Button } from '@hermeslabs/ui';
import type { Theme } from "@hermeslabs/types";
import '@hermeslabs/styles/global.css';
export * from '@hermeslabs/utils';
import {
  a,
  b,
} from '@hermeslabs/multi';
const mod = await import('@hermeslabs/lazy');
const legacy = require("@hermeslabs/cjs");
vi.mock('@hermeslabs/database', () => ({}));
jest.mock('@hermeslabs/server');
import React from 'react';
const label = '@lobechat/not-a-specifier';
`, out)

	assert.Equal(t, []string{
		"import -> @hermeslabs/ui",
		"import -> @hermeslabs/types",
		"import -> @hermeslabs/styles/global.css",
		"export -> @hermeslabs/utils",
		"import -> @hermeslabs/multi",
		"dynamic import -> @hermeslabs/lazy",
		"require -> @hermeslabs/cjs",
		"vi.mock -> @hermeslabs/database",
		"jest.mock -> @hermeslabs/server",
	}, actions)
}

func TestRewriteSpecifiers_NoMatches(t *testing.T) {
	src := "import x from 'lodash';\n"
	out, actions := scope.RewriteSpecifiers(src, domain.LegacyScope, domain.TargetScope)
	assert.Equal(t, src, out)
	assert.Empty(t, actions)
}

func TestRewriteSpecifiers_Idempotent(t *testing.T) {
	once, _ := scope.RewriteSpecifiers("export { x } from '@lobechat/x';\n", domain.LegacyScope, domain.TargetScope)
	twice, actions := scope.RewriteSpecifiers(once, domain.LegacyScope, domain.TargetScope)
	assert.Equal(t, once, twice)
	assert.Empty(t, actions)
}

func TestReplaceText(t *testing.T) {
	out, ok := scope.ReplaceText(`<Demo pkg="@lobechat/ui" />`, domain.LegacyScope, domain.TargetScope)
	assert.True(t, ok)
	assert.Equal(t, `<Demo pkg="@hermeslabs/ui" />`, out)

	_, ok = scope.ReplaceText("nothing here", domain.LegacyScope, domain.TargetScope)
	assert.False(t, ok)
}
