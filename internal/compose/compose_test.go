// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package compose

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circularlabs/sdkgen/internal/ir"
	"github.com/circularlabs/sdkgen/internal/profile"
)

// fixtureFS declares two helpers with full seven-language coverage. Failure
// tests overlay extra helper documents with deliberate gaps.
func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"types.yaml": &fstest.MapFile{Data: []byte(`
types:
  Address:
    kind: scalar
    base: string
`)},
		"naming.yaml": &fstest.MapFile{Data: []byte(`
tokens:
  getNAGURL: [get, NAG, URL]
`)},
		"helpers/config.yaml": &fstest.MapFile{Data: []byte(`
category: config
helpers:
  getNAGURL:
    doc: Return the configured gateway URL.
    perLanguage:
      go: |
        // GetNAGURL returns the configured gateway URL.
        func (c *CircularProtocolAPI) GetNAGURL() string { return c.nagURL }
      python: |
        def get_nag_url(self) -> str:
            return self._nag_url
      typescript: |
        getNAGURL(): string {
          return this.nagUrl;
        }
      javascript: |
        getNAGURL() {
          return this.nagUrl;
        }
      java: |
        public String getNAGURL() {
            return this.nagUrl;
        }
      php: |
        public function getNAGURL(): string
        {
            return $this->nagUrl;
        }
      dart: |
        String getNAGURL() => _nagUrl;
`)},
		"helpers/utility.yaml": &fstest.MapFile{Data: []byte(`
category: utility
helpers:
  getVersion:
    doc: Return the SDK release version.
    perLanguage:
      go: |
        func (c *CircularProtocolAPI) GetVersion() string { return libVersion }
      python: |
        def get_version(self) -> str:
            return LIB_VERSION
      typescript: |
        getVersion(): string {
          return LIB_VERSION;
        }
      javascript: |
        getVersion() {
          return LIB_VERSION;
        }
      java: |
        public String getVersion() {
            return LIB_VERSION;
        }
      php: |
        public function getVersion(): string
        {
            return self::LIB_VERSION;
        }
      dart: |
        String getVersion() => libVersion;
`)},
	}
}

func loadRegistry(t *testing.T, fsys fstest.MapFS) *ir.Registry {
	t.Helper()
	reg, err := ir.Load(fsys, ir.LoadOptions{Languages: profile.IDs()})
	require.NoError(t, err)
	return reg
}

func TestCompose_ResolvesEveryHelperForEveryProfile(t *testing.T) {
	reg := loadRegistry(t, fixtureFS())

	for _, p := range profile.All() {
		methods, err := Compose(reg, p)
		require.NoError(t, err, p.ID)
		require.Len(t, methods, 2, p.ID)

		// Registry order is category then name; compose preserves it.
		assert.Equal(t, "getNAGURL", methods[0].Name, p.ID)
		assert.Equal(t, "getVersion", methods[1].Name, p.ID)
		for _, m := range methods {
			assert.Contains(t, m.Source, m.Emitted, p.ID)
		}
	}
}

func TestCompose_TransformsNamesPerProfile(t *testing.T) {
	reg := loadRegistry(t, fixtureFS())

	golang, err := profile.Get("go")
	require.NoError(t, err)
	methods, err := Compose(reg, golang)
	require.NoError(t, err)
	assert.Equal(t, "GetNAGURL", methods[0].Emitted)

	python, err := profile.Get("python")
	require.NoError(t, err)
	methods, err = Compose(reg, python)
	require.NoError(t, err)
	assert.Equal(t, "get_nag_url", methods[0].Emitted)
	assert.Equal(t, ir.HelperConfig, methods[0].Category)
	assert.Equal(t, "Return the configured gateway URL.", methods[0].Doc)
	assert.Contains(t, methods[0].Source, "def get_nag_url(self)")
}

func TestCompose_MissingFragmentFailsThatLanguage(t *testing.T) {
	fsys := fixtureFS()
	fsys["helpers/crypto.yaml"] = &fstest.MapFile{Data: []byte(`
category: crypto
helpers:
  signMessage:
    doc: Sign the digest of a message.
    perLanguage:
      go: |
        func (c *CircularProtocolAPI) SignMessage(message, privateKey string) (string, error) {
            return "", nil
        }
      python: |
        def sign_message(self, message: str, private_key: str) -> str:
            return ""
`)}
	reg := loadRegistry(t, fsys)

	for _, id := range []string{"go", "python"} {
		p, err := profile.Get(id)
		require.NoError(t, err)
		methods, err := Compose(reg, p)
		require.NoError(t, err, id)
		assert.Len(t, methods, 3, id)
	}

	for _, id := range []string{"dart", "java", "javascript", "php", "typescript"} {
		p, err := profile.Get(id)
		require.NoError(t, err)
		_, err = Compose(reg, p)
		require.Error(t, err, id)

		var missing *MissingHelperError
		require.ErrorAs(t, err, &missing, id)
		assert.Equal(t, "signMessage", missing.Helper, id)
		assert.Equal(t, id, missing.Language, id)
	}
}

func TestCompose_CollectsEveryMissingFragment(t *testing.T) {
	fsys := fixtureFS()
	fsys["helpers/encoding.yaml"] = &fstest.MapFile{Data: []byte(`
category: encoding
helpers:
  hexFix:
    doc: Strip a 0x prefix.
    perLanguage:
      go: |
        func (c *CircularProtocolAPI) HexFix(h string) string { return h }
  hexToString:
    doc: Decode hex to UTF-8.
    perLanguage:
      go: |
        func (c *CircularProtocolAPI) HexToString(h string) (string, error) { return h, nil }
`)}
	reg := loadRegistry(t, fsys)

	dart, err := profile.Get("dart")
	require.NoError(t, err)
	_, err = Compose(reg, dart)
	require.Error(t, err)
	assert.ErrorContains(t, err, "helper hexFix has no dart implementation")
	assert.ErrorContains(t, err, "helper hexToString has no dart implementation")
}

func TestCompose_FragmentMustDeclareEmittedName(t *testing.T) {
	fsys := fixtureFS()
	fsys["helpers/encoding.yaml"] = &fstest.MapFile{Data: []byte(`
category: encoding
helpers:
  hexFix:
    doc: Strip a 0x prefix.
    perLanguage:
      go: |
        func (c *CircularProtocolAPI) StripHexPrefix(h string) string { return h }
`)}
	reg := loadRegistry(t, fsys)

	golang, err := profile.Get("go")
	require.NoError(t, err)
	_, err = Compose(reg, golang)
	require.Error(t, err)
	assert.ErrorContains(t, err, "helper hexFix: go fragment does not declare HexFix")
}
