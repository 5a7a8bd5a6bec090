// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circularlabs/sdkgen/internal/ident"
	"github.com/circularlabs/sdkgen/internal/ir"
	"github.com/circularlabs/sdkgen/internal/schema"
)

var allLanguages = []string{"dart", "go", "java", "javascript", "php", "python", "typescript"}

// loadEmbedded loads the shipped definitions under the same constraints the
// generate command applies.
func loadEmbedded(t *testing.T) *ir.Registry {
	t.Helper()
	reg, err := ir.Load(schema.FS, ir.LoadOptions{
		Languages: allLanguages,
		Reserved: []ir.ReservedWords{
			{Language: "python", Case: ident.Snake, Words: []string{"from", "class", "import", "def", "return"}},
			{Language: "go", Case: ident.Pascal, Words: []string{"func", "type", "range"}},
		},
	})
	require.NoError(t, err)
	return reg
}

func TestEmbedded_LoadsCleanly(t *testing.T) {
	reg := loadEmbedded(t)

	assert.Equal(t, []string{
		"Address", "Asset", "Block", "Blockchain", "HexString",
		"Timestamp", "Transaction", "TransactionStatus", "TxID",
	}, reg.TypeNames())
	assert.Len(t, reg.Endpoints(), 24)
}

func TestEmbedded_EndpointCategories(t *testing.T) {
	reg := loadEmbedded(t)

	assert.Equal(t, []string{"asset", "block", "contract", "domain", "network", "transaction", "wallet"}, reg.Categories())

	counts := map[string]int{}
	for _, cat := range reg.Categories() {
		counts[cat] = len(reg.EndpointsByCategory(cat))
	}
	assert.Equal(t, map[string]int{
		"asset":       4,
		"block":       4,
		"contract":    2,
		"domain":      1,
		"network":     1,
		"transaction": 6,
		"wallet":      6,
	}, counts)
}

func TestEmbedded_DefaultsApplyToEveryWalletEndpoint(t *testing.T) {
	reg := loadEmbedded(t)

	for _, ep := range reg.EndpointsByCategory("wallet") {
		require.NotNil(t, ep.Request, ep.Name)
		f, ok := ep.Request.FieldByName("Blockchain")
		require.True(t, ok, "%s lacks the Blockchain default", ep.Name)
		assert.Equal(t, "Address", f.Type.Name)
	}
}

func TestEmbedded_EveryHelperCoversEveryLanguage(t *testing.T) {
	reg := loadEmbedded(t)

	helpers := reg.Helpers()
	require.Len(t, helpers, 15)
	for _, h := range helpers {
		assert.Equal(t, allLanguages, h.Languages(), h.Name)
	}
}

func TestEmbedded_NamingOverridesSplitCompoundNames(t *testing.T) {
	reg := loadEmbedded(t)

	// getTransactionbyID carries a lowercase "by" that the default splitter
	// cannot segment.
	assert.Equal(t, []string{"get", "transaction", "by", "ID"}, reg.Splitter().Tokens("getTransactionbyID"))
	assert.Equal(t, "get_transaction_by_id", ident.Render(reg.Splitter().Tokens("getTransactionbyID"), ident.Snake))
}

func TestEmbedded_EmptyRequestStaysEmpty(t *testing.T) {
	reg := loadEmbedded(t)

	ep, ok := reg.Endpoint("getBlockchains")
	require.True(t, ok)
	require.NotNil(t, ep.Request)
	assert.Empty(t, ep.Request.Fields)
}
