// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portfolio

import (
	_ "embed"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

//go:embed default.toml
var defaultProfile []byte

// ErrInvalidProfile is returned when a profile fails validation.
var ErrInvalidProfile = errors.New("invalid profile")

// Default returns the built-in profile.
func Default() *Profile {
	p, err := Decode(defaultProfile)
	if err != nil {
		// The embedded document is part of the binary.
		panic(errors.Wrap(err, "built-in profile"))
	}
	return p
}

// DefaultTOML returns the built-in profile document, used by
// "folio config init" to seed a user profile.
func DefaultTOML() []byte {
	out := make([]byte, len(defaultProfile))
	copy(out, defaultProfile)
	return out
}

// Decode parses and validates a TOML profile.
func Decode(data []byte) (*Profile, error) {
	p := &Profile{}
	md, err := toml.Decode(string(data), p)
	if err != nil {
		return nil, errors.Wrap(err, "decode profile")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Wrapf(ErrInvalidProfile, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads a profile from path. An empty path returns the built-in
// profile.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}
	p := &Profile{}
	md, err := toml.DecodeFile(path, p)
	if err != nil {
		return nil, errors.Wrapf(err, "load profile %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Wrapf(ErrInvalidProfile, "%s: unknown key %s", path, undecoded[0].String())
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(err, "profile %s", path)
	}
	return p, nil
}

// Validate checks required fields and project/review identity.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.Wrap(ErrInvalidProfile, "name is required")
	}
	if strings.ContainsAny(p.Handle, " \t@:") {
		return errors.Wrapf(ErrInvalidProfile, "handle %q must be a single word", p.Handle)
	}

	seen := make(map[int]bool, len(p.Projects))
	for _, pr := range p.Projects {
		if strings.TrimSpace(pr.Title) == "" {
			return errors.Wrapf(ErrInvalidProfile, "project %d has no title", pr.ID)
		}
		if seen[pr.ID] {
			return errors.Wrapf(ErrInvalidProfile, "duplicate project id %d", pr.ID)
		}
		seen[pr.ID] = true
	}

	for i, r := range p.Reviews {
		if strings.TrimSpace(r.Text) == "" {
			return errors.Wrapf(ErrInvalidProfile, "review %d is empty", i+1)
		}
	}
	return nil
}
