// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package ir

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circularlabs/sdkgen/internal/ident"
)

const (
	hexAddr64 = "8a20baa40c45dc5055aeb26197c203e576ef389d9acb171bd62da11dc5ad72b2"
	hexAddr66 = "0x7f3c2a90de45b1c688f00aa1b2c3d4e5f60718293a4b5c6d7e8f901234567890"
)

func validIRFS() fstest.MapFS {
	return fstest.MapFS{
		"types.yaml": &fstest.MapFile{Data: []byte(`
types:
  Address:
    kind: scalar
    base: string
    contract: hex(64|66)
    doc: Hex-encoded account address.
  TxID:
    kind: scalar
    base: string
    contract: hex(64)
  TransactionStatus:
    kind: enum
    variants: [Pending, Confirmed, Failed]
  Transaction:
    kind: record
    doc: One transaction as recorded on chain.
    fields:
      ID: TxID
      Status: TransactionStatus
      Amount: { type: float }
`)},
		"naming.yaml": &fstest.MapFile{Data: []byte(`
tokens:
  getTransactionbyID: [get, transaction, by, ID]
`)},
		"endpoints/wallet.yaml": &fstest.MapFile{Data: []byte(`
category: wallet
defaults:
  method: POST
  request:
    fields:
      Blockchain: { type: Address, doc: Target chain address. }
      Version: { type: string }
endpoints:
  checkWallet:
    path: /checkWallet
    doc: Check whether a wallet is registered on chain.
    request:
      fields:
        Address: { type: Address }
    response:
      type: record
      fields:
        exists: { type: bool }
        address: { type: Address }
    exampleRequest:
      Blockchain: "` + hexAddr64 + `"
      Address: "` + hexAddr66 + `"
`)},
		"helpers/config.yaml": &fstest.MapFile{Data: []byte(`
category: config
helpers:
  getNAGURL:
    doc: Return the configured gateway URL.
    perLanguage:
      go: |
        func (c *Client) GetNAGURL() string { return c.nagURL }
      python: |
        def get_nag_url(self) -> str:
            return self._nag_url
`)},
	}
}

func TestLoad_BuildsRegistry(t *testing.T) {
	reg, err := Load(validIRFS(), LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Address", "Transaction", "TransactionStatus", "TxID"}, reg.TypeNames())

	ep, ok := reg.Endpoint("checkWallet")
	require.True(t, ok)
	assert.Equal(t, "wallet", ep.Category)
	assert.Equal(t, "POST", ep.Method, "method comes from category defaults")
	assert.Equal(t, "/checkWallet", ep.Path)

	var fieldNames []string
	for _, f := range ep.Request.Fields {
		fieldNames = append(fieldNames, f.Name)
	}
	assert.Equal(t, []string{"Blockchain", "Version", "Address"}, fieldNames,
		"default fields first, endpoint fields appended in declaration order")

	require.Len(t, ep.Response.Fields, 2)
	assert.Equal(t, "exists", ep.Response.Fields[0].Name)
	assert.Equal(t, "address", ep.Response.Fields[1].Name)
}

func TestLoad_DeclaredTypesShareOneDefinition(t *testing.T) {
	reg, err := Load(validIRFS(), LoadOptions{})
	require.NoError(t, err)

	addr, ok := reg.Type("Address")
	require.True(t, ok)

	ep, _ := reg.Endpoint("checkWallet")
	blockchain, ok := ep.Request.FieldByName("Blockchain")
	require.True(t, ok)
	assert.Same(t, addr, blockchain.Type)

	respAddr, ok := ep.Response.FieldByName("address")
	require.True(t, ok)
	assert.Same(t, addr, respAddr.Type)
}

func TestLoad_NamingOverridesReachSplitter(t *testing.T) {
	reg, err := Load(validIRFS(), LoadOptions{})
	require.NoError(t, err)

	tokens := reg.Splitter().Tokens("getTransactionbyID")
	assert.Equal(t, []string{"get", "transaction", "by", "ID"}, tokens)
}

func TestLoad_EndpointOverridesDefaultFieldInPlace(t *testing.T) {
	fsys := validIRFS()
	fsys["endpoints/wallet.yaml"] = &fstest.MapFile{Data: []byte(`
category: wallet
defaults:
  method: POST
  request:
    fields:
      Blockchain: { type: Address }
      Version: { type: string }
endpoints:
  checkWallet:
    path: /checkWallet
    doc: Check whether a wallet is registered on chain.
    request:
      fields:
        Version: { type: int, doc: Protocol major version. }
    response:
      fields:
        exists: { type: bool }
`)}
	reg, err := Load(fsys, LoadOptions{})
	require.NoError(t, err)

	ep, _ := reg.Endpoint("checkWallet")
	require.Len(t, ep.Request.Fields, 2)
	assert.Equal(t, "Version", ep.Request.Fields[1].Name, "override keeps the default's position")
	assert.Equal(t, ScalarInt, ep.Request.Fields[1].Type.Base)
	assert.Equal(t, "Protocol major version.", ep.Request.Fields[1].Doc)
}

func TestLoad_ResponseShorthandAndOptional(t *testing.T) {
	fsys := validIRFS()
	fsys["endpoints/wallet.yaml"] = &fstest.MapFile{Data: []byte(`
category: wallet
endpoints:
  getWalletNonce:
    method: POST
    path: /getWalletNonce
    doc: Fetch the current nonce of a wallet.
    response:
      type: record
      fields:
        Nonce: { type: int }
        Hint: { type: string, optional: true }
  listBlockchains:
    method: POST
    path: /getBlockchains
    doc: List supported blockchains.
    response:
      type: array
      items: Transaction
`)}
	reg, err := Load(fsys, LoadOptions{})
	require.NoError(t, err)

	nonce, _ := reg.Endpoint("getWalletNonce")
	hint, ok := nonce.Response.FieldByName("Hint")
	require.True(t, ok)
	assert.True(t, hint.IsOptional())
	assert.Equal(t, KindOptional, hint.Type.Kind)
	assert.Equal(t, ScalarString, hint.Type.Elem.Base)

	chains, _ := reg.Endpoint("listBlockchains")
	assert.Equal(t, KindArray, chains.Response.Kind)
	tx, _ := reg.Type("Transaction")
	assert.Same(t, tx, chains.Response.Elem)
}

func TestLoad_MissingTypesDocument(t *testing.T) {
	fsys := validIRFS()
	delete(fsys, "types.yaml")
	_, err := Load(fsys, LoadOptions{})
	require.Error(t, err)
}

func TestLoad_UnknownTypeReference(t *testing.T) {
	fsys := validIRFS()
	fsys["endpoints/wallet.yaml"] = &fstest.MapFile{Data: []byte(`
category: wallet
endpoints:
  checkWallet:
    method: POST
    path: /checkWallet
    doc: Check a wallet.
    request:
      fields:
        Wallet: { type: WalletHandle }
    response:
      fields:
        exists: { type: bool }
`)}
	_, err := Load(fsys, LoadOptions{})
	require.Error(t, err)

	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Path, "wallet.checkWallet.request.fields.Wallet")
	assert.Contains(t, serr.Actual, "WalletHandle")
}

func TestLoad_MalformedContract(t *testing.T) {
	fsys := validIRFS()
	fsys["types.yaml"] = &fstest.MapFile{Data: []byte(`
types:
  Address:
    kind: scalar
    base: string
    contract: hex(
`)}
	_, err := Load(fsys, LoadOptions{})
	require.Error(t, err)

	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Path, "types.Address.contract")
}

func TestLoad_MetaSchemaRejectsUnknownKeys(t *testing.T) {
	fsys := validIRFS()
	fsys["endpoints/wallet.yaml"] = &fstest.MapFile{Data: []byte(`
category: wallet
endpoints:
  checkWallet:
    method: POST
    path: /checkWallet
    doc: Check a wallet.
    rquest:
      fields:
        Address: { type: Address }
    response:
      fields:
        exists: { type: bool }
`)}
	_, err := Load(fsys, LoadOptions{})
	require.Error(t, err)

	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Path, "endpoints/wallet.yaml")
}

func TestLoad_CcollectsEveryDefect(t *testing.T) {
	fsys := validIRFS()
	fsys["endpoints/wallet.yaml"] = &fstest.MapFile{Data: []byte(`
category: wallet
endpoints:
  checkWallet:
    method: POST
    path: /checkWallet
    doc: Check a wallet.
    request:
      fields:
        First: { type: NoSuchType }
        Second: { type: AlsoMissing }
    response:
      fields:
        exists: { type: bool }
`)}
	_, err := Load(fsys, LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchType")
	assert.Contains(t, err.Error(), "AlsoMissing")
}

func TestLoad_CyclicTypesRejected(t *testing.T) {
	fsys := validIRFS()
	fsys["types.yaml"] = &fstest.MapFile{Data: []byte(`
types:
  Ping:
    kind: record
    fields:
      Next: Pong
  Pong:
    kind: record
    fields:
      Back: Ping
`)}
	_, err := Load(fsys, LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finite")
}

func TestLoad_ReservedWordCollision(t *testing.T) {
	fsys := validIRFS()
	fsys["types.yaml"] = &fstest.MapFile{Data: []byte(`
types:
  Transfer:
    kind: record
    fields:
      From: { type: string }
`)}
	fsys["endpoints/wallet.yaml"] = &fstest.MapFile{Data: []byte(`
category: wallet
endpoints:
  checkWallet:
    method: POST
    path: /checkWallet
    doc: Check a wallet.
    response:
      fields:
        exists: { type: bool }
`)}
	opts := LoadOptions{
		Reserved: []ReservedWords{{
			Language: "python",
			Case:     ident.Snake,
			Words:    []string{"from", "class", "import"},
		}},
	}
	_, err := Load(fsys, opts)
	require.Error(t, err)

	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Actual, "python")
	assert.Contains(t, serr.Actual, `"from"`)
}

func TestLoad_DuplicateEndpointAcrossCategories(t *testing.T) {
	fsys := validIRFS()
	fsys["endpoints/zz-extra.yaml"] = &fstest.MapFile{Data: []byte(`
category: extra
endpoints:
  checkWallet:
    method: POST
    path: /checkWallet
    doc: Duplicate declaration.
    response:
      fields:
        exists: { type: bool }
`)}
	_, err := Load(fsys, LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already declared")
}

func TestLoad_ExampleViolatingContract(t *testing.T) {
	fsys := validIRFS()
	fsys["endpoints/wallet.yaml"] = &fstest.MapFile{Data: []byte(`
category: wallet
endpoints:
  checkWallet:
    method: POST
    path: /checkWallet
    doc: Check a wallet.
    request:
      fields:
        Address: { type: Address }
    response:
      fields:
        exists: { type: bool }
    exampleRequest:
      Address: "not-an-address"
`)}
	_, err := Load(fsys, LoadOptions{})
	require.Error(t, err)

	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Path, "exampleRequest.Address")
}

func TestLoad_HelperFragmentForUnknownLanguage(t *testing.T) {
	fsys := validIRFS()
	fsys["helpers/config.yaml"] = &fstest.MapFile{Data: []byte(`
category: config
helpers:
  getNAGURL:
    doc: Return the configured gateway URL.
    perLanguage:
      go: func (c *Client) GetNAGURL() string { return c.nagURL }
      rust: fn get_nag_url(&self) -> String { self.nag_url.clone() }
`)}
	_, err := Load(fsys, LoadOptions{Languages: []string{"go", "python"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"rust"`)
}

func TestWalk_VisitsEachNodeOnce(t *testing.T) {
	reg, err := Load(validIRFS(), LoadOptions{})
	require.NoError(t, err)

	ep, _ := reg.Endpoint("checkWallet")
	seen := map[*TypeDef]int{}
	for td := range Walk(ep.Request) {
		seen[td]++
	}
	for td, n := range seen {
		assert.Equal(t, 1, n, "type %q visited more than once", td.Name)
	}
	addr, _ := reg.Type("Address")
	assert.Contains(t, seen, addr, "shared Address definition reachable from request")
}
