package scope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

// NotesKey is the package.json field that records the migration.
const NotesKey = "x-migration-notes"

// APICompatibility is the compatibility statement written into migration notes.
const APICompatibility = "No breaking API changes; workspace version remains 1.0.0."

var dependencyFields = []string{"dependencies", "devDependencies", "peerDependencies", "optionalDependencies"}

type object = orderedmap.OrderedMap[string, json.RawMessage]

// MigratePackageManifest rewrites the legacy scope in a package.json document:
// the package name, the dependency maps (keys and values) and pnpm.overrides.
// Key order is preserved. Notes are stamped when the document changed or
// carries no notes yet. The returned bool reports whether data must be rewritten.
func MigratePackageManifest(data []byte, legacy, target string, notes domain.MigrationNotes) ([]byte, bool, error) {
	pkg, err := decodeObject(data)
	if err != nil {
		return nil, false, fmt.Errorf("decoding package manifest: %w", err)
	}

	changed := false
	if raw, ok := pkg.Get("name"); ok {
		if next, ok := rewriteString(raw, legacy, target); ok {
			pkg.Set("name", next)
			changed = true
		}
	}

	for _, field := range dependencyFields {
		raw, ok := pkg.Get(field)
		if !ok {
			continue
		}
		if !isObject(raw) {
			continue
		}
		next, ok, err := rewriteDeep(raw, legacy, target)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", field, err)
		}
		if ok {
			pkg.Set(field, next)
			changed = true
		}
	}

	if raw, ok := pkg.Get("pnpm"); ok && isObject(raw) {
		pnpm, err := decodeObject(raw)
		if err != nil {
			return nil, false, fmt.Errorf("pnpm: %w", err)
		}
		if overrides, ok := pnpm.Get("overrides"); ok {
			next, ok, err := rewriteDeep(overrides, legacy, target)
			if err != nil {
				return nil, false, fmt.Errorf("pnpm.overrides: %w", err)
			}
			if ok {
				pnpm.Set("overrides", next)
				enc, err := encodeObject(pnpm)
				if err != nil {
					return nil, false, err
				}
				pkg.Set("pnpm", enc)
				changed = true
			}
		}
	}

	_, hasNotes := pkg.Get(NotesKey)
	if !changed && hasNotes {
		return data, false, nil
	}

	n, err := marshal(notes)
	if err != nil {
		return nil, false, err
	}
	pkg.Set(NotesKey, n)

	enc, err := encodeObject(pkg)
	if err != nil {
		return nil, false, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, enc, "", "  "); err != nil {
		return nil, false, err
	}
	out.WriteByte('\n')
	return out.Bytes(), true, nil
}

// rewriteDeep replaces the scope in every string, key or nested value.
func rewriteDeep(raw json.RawMessage, legacy, target string) (json.RawMessage, bool, error) {
	switch {
	case isObject(raw):
		return rewriteObject(raw, legacy, target)
	case isArray(raw):
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, false, err
		}
		changed := false
		for i, item := range items {
			next, ok, err := rewriteDeep(item, legacy, target)
			if err != nil {
				return nil, false, err
			}
			if ok {
				items[i] = next
				changed = true
			}
		}
		if !changed {
			return raw, false, nil
		}
		enc, err := marshal(items)
		return enc, true, err
	default:
		next, ok := rewriteString(raw, legacy, target)
		if !ok {
			return raw, false, nil
		}
		return next, true, nil
	}
}

func rewriteObject(raw json.RawMessage, legacy, target string) (json.RawMessage, bool, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, false, err
	}
	next := orderedmap.New[string, json.RawMessage]()
	changed := false
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Key
		if strings.Contains(key, legacy) {
			key = strings.ReplaceAll(key, legacy, target)
			changed = true
		}
		value, ok, err := rewriteDeep(pair.Value, legacy, target)
		if err != nil {
			return nil, false, err
		}
		changed = changed || ok
		next.Set(key, value)
	}
	if !changed {
		return raw, false, nil
	}
	enc, err := encodeObject(next)
	return enc, true, err
}

func rewriteString(raw json.RawMessage, legacy, target string) (json.RawMessage, bool) {
	var s string
	if json.Unmarshal(raw, &s) != nil || !strings.Contains(s, legacy) {
		return raw, false
	}
	enc, err := marshal(strings.ReplaceAll(s, legacy, target))
	if err != nil {
		return raw, false
	}
	return enc, true
}

func decodeObject(data []byte) (*object, error) {
	if !isObject(data) {
		return nil, fmt.Errorf("expected a JSON object")
	}
	obj := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// encodeObject writes obj compactly in insertion order. Values are copied
// verbatim so version ranges such as ">=18" are not HTML-escaped.
func encodeObject(obj *object) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(pair.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshal(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func isObject(raw []byte) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '{'
}

func isArray(raw []byte) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}
