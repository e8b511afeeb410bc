package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ManifestFile is the project manifest rewritten during materialization.
const ManifestFile = "package.json"

type member struct {
	key   string
	value json.RawMessage
}

// Manifest is a JSON object whose member order survives a round trip.
type Manifest struct {
	members []member
}

// ParseManifest decodes a JSON object.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", ManifestFile, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("cannot parse %s: top level value is not an object", ManifestFile)
	}

	m := &Manifest{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("cannot parse %s: %w", ManifestFile, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("cannot parse %s: unexpected token %v", ManifestFile, tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("cannot parse %s: %w", ManifestFile, err)
		}
		m.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", ManifestFile, err)
	}
	return m, nil
}

// set replaces the value of an existing key in place or appends a new one.
func (m *Manifest) set(key string, value json.RawMessage) {
	for i := range m.members {
		if m.members[i].key == key {
			m.members[i].value = value
			return
		}
	}
	m.members = append(m.members, member{key: key, value: value})
}

// Get returns the raw value of key.
func (m *Manifest) Get(key string) (json.RawMessage, bool) {
	for _, mem := range m.members {
		if mem.key == key {
			return mem.value, true
		}
	}
	return nil, false
}

// SetName overwrites the name field.
func (m *Manifest) SetName(name string) error {
	value, err := marshalString(name)
	if err != nil {
		return err
	}
	m.set("name", value)
	return nil
}

// Bytes encodes the manifest with two space indentation and a trailing
// newline.
func (m *Manifest) Bytes() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, mem := range m.members {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := marshalString(mem.key)
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(mem.value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("cannot encode %s: %w", ManifestFile, err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func marshalString(s string) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
