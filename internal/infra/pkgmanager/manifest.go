// Where: cli/internal/infra/pkgmanager/manifest.go
// What: Order-preserving edits of package.json.
// Why: Patch a few keys without reordering or re-encoding the rest of the manifest.
package pkgmanager

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const manifestIndent = "  "

// object is a JSON object that remembers key order. Values stay raw so
// untouched fields are written back with their original encoding.
type object struct {
	keys   []string
	values map[string]json.RawMessage
}

func newObject() *object {
	return &object{values: map[string]json.RawMessage{}}
}

func decodeObject(data []byte) (*object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a JSON object")
	}

	obj := newObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode %q: %w", key, err)
		}
		obj.set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON object")
	}
	return obj, nil
}

func (o *object) get(key string) (json.RawMessage, bool) {
	raw, ok := o.values[key]
	return raw, ok
}

// set replaces an existing key in place or appends a new one.
func (o *object) set(key string, raw json.RawMessage) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = raw
}

func (o *object) setString(key, value string) error {
	raw, err := marshalString(value)
	if err != nil {
		return err
	}
	o.set(key, raw)
	return nil
}

func (o *object) encode() ([]byte, error) {
	if len(o.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, key := range o.keys {
		name, err := marshalString(key)
		if err != nil {
			return nil, err
		}
		buf.WriteString(manifestIndent)
		buf.Write(name)
		buf.WriteString(": ")
		if err := json.Indent(&buf, o.values[key], manifestIndent, manifestIndent); err != nil {
			return nil, fmt.Errorf("format %q: %w", key, err)
		}
		if i < len(o.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalString(value string) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ManifestPatch lists the entries merged into an existing manifest.
type ManifestPatch struct {
	Scripts []Entry
	Fields  []Entry
}

// Entry is a string-valued manifest key.
type Entry struct {
	Key   string
	Value string
}

// applyPatch merges patch into the manifest document and returns the
// pretty-printed result with a trailing newline.
func applyPatch(data []byte, patch ManifestPatch) ([]byte, error) {
	root, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	for _, field := range patch.Fields {
		if field.Key == "scripts" {
			return nil, errors.New("scripts must be patched through script entries")
		}
		if err := root.setString(field.Key, field.Value); err != nil {
			return nil, err
		}
	}

	if len(patch.Scripts) > 0 {
		scripts := newObject()
		if raw, ok := root.get("scripts"); ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			scripts, err = decodeObject(raw)
			if err != nil {
				return nil, fmt.Errorf("parse manifest scripts: %w", err)
			}
		}
		for _, script := range patch.Scripts {
			if err := scripts.setString(script.Key, script.Value); err != nil {
				return nil, err
			}
		}
		encoded, err := scripts.encode()
		if err != nil {
			return nil, err
		}
		root.set("scripts", encoded)
	}

	out, err := root.encode()
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
