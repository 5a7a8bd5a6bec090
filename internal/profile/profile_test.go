// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circularlabs/sdkgen/internal/ident"
	"github.com/circularlabs/sdkgen/internal/ir"
)

func TestAll_SevenBuiltinsSortedByID(t *testing.T) {
	profiles := All()
	require.Len(t, profiles, 7)

	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"dart", "go", "java", "javascript", "php", "python", "typescript"}, ids)
}

func TestGet_UnknownProfile(t *testing.T) {
	_, err := Get("rust")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown language profile "rust"`)
}

func TestBuiltins_InheritBaseFields(t *testing.T) {
	for _, p := range All() {
		assert.Equal(t, "CircularProtocolAPI", p.ClassName, p.ID)
		assert.Equal(t, ident.Pascal, p.TypeCase, p.ID)
		assert.True(t, p.Case.Valid(), p.ID)
		assert.NotEmpty(t, p.Layout.Dir, p.ID)
		assert.NotEmpty(t, p.Layout.Client, p.ID)
		assert.NotEmpty(t, p.Layout.Types, p.ID)
		assert.NotEmpty(t, p.Layout.Test, p.ID)
		assert.NotEmpty(t, p.VersionConst, p.ID)
		assert.NotEmpty(t, p.Reserved, p.ID)
	}
}

func TestBuiltins_PrimitiveTablesCoverEveryScalarKind(t *testing.T) {
	kinds := []ir.ScalarKind{ir.ScalarString, ir.ScalarInt, ir.ScalarFloat, ir.ScalarBool, ir.ScalarAny}
	for _, p := range All() {
		for _, kind := range kinds {
			assert.Contains(t, p.Primitives, kind, "%s lacks %s", p.ID, kind)
		}
	}
}

func TestMerge_OverlayWinsPerField(t *testing.T) {
	base := Profile{
		ID:        "base",
		TypeCase:  ident.Pascal,
		ClassName: "Client",
		Reserved:  []string{"class"},
	}
	over := Profile{
		ID:   "dialect",
		Case: ident.Snake,
	}

	merged := merge(base, over)

	assert.Equal(t, "dialect", merged.ID)
	assert.Equal(t, ident.Snake, merged.Case)
	assert.Equal(t, ident.Pascal, merged.TypeCase)
	assert.Equal(t, "Client", merged.ClassName)
	assert.Equal(t, []string{"class"}, merged.Reserved)
}

func TestTransform_SpecCaseVectors(t *testing.T) {
	splitter := ident.NewSplitter(map[string][]string{
		"getTransactionbyID": {"get", "transaction", "by", "ID"},
		"getNAGURL":          {"get", "NAG", "URL"},
	})

	goP, err := Get("go")
	require.NoError(t, err)
	pyP, err := Get("python")
	require.NoError(t, err)

	assert.Equal(t, "GetTransactionByID", splitter.Transform("getTransactionbyID", goP))
	assert.Equal(t, "get_transaction_by_id", splitter.Transform("getTransactionbyID", pyP))
	assert.Equal(t, "get_nag_url", splitter.Transform("getNAGURL", pyP))
}

func TestTransform_NameOverrideBeatsAlgorithm(t *testing.T) {
	splitter := ident.NewSplitter(nil)
	p := &Profile{ID: "custom", Case: ident.Snake, NameOverrides: map[string]string{
		"checkWallet": "wallet_exists",
	}}

	assert.Equal(t, "wallet_exists", splitter.Transform("checkWallet", p))
	assert.Equal(t, "get_wallet", splitter.Transform("getWallet", p))
}

func TestArray_PHPHasNoElementSyntax(t *testing.T) {
	php, err := Get("php")
	require.NoError(t, err)
	golang, err := Get("go")
	require.NoError(t, err)
	java, err := Get("java")
	require.NoError(t, err)

	assert.Equal(t, "array", php.Array("string"))
	assert.Equal(t, "[]string", golang.Array("string"))
	assert.Equal(t, "List<String>", java.Array("String"))
}

func TestOptional_JavaBoxesValueTypes(t *testing.T) {
	java, err := Get("java")
	require.NoError(t, err)
	dart, err := Get("dart")
	require.NoError(t, err)
	golang, err := Get("go")
	require.NoError(t, err)

	assert.Equal(t, "Long", java.Optional("long"))
	assert.Equal(t, "String", java.Optional("String"))
	assert.Equal(t, "int?", dart.Optional("int"))
	assert.Equal(t, "string", golang.Optional("string"))
}

func TestRef_JavaNestsDeclarationsInTypesHolder(t *testing.T) {
	java, err := Get("java")
	require.NoError(t, err)
	ts, err := Get("typescript")
	require.NoError(t, err)

	assert.Equal(t, "Types.Transaction", java.Ref("Transaction"))
	assert.Equal(t, "Transaction", ts.Ref("Transaction"))
}

func TestReservedFor_CarriesCasePerLanguage(t *testing.T) {
	words := ReservedFor(All())
	require.Len(t, words, 7)

	byLang := map[string]ir.ReservedWords{}
	for _, w := range words {
		byLang[w.Language] = w
	}
	assert.Equal(t, ident.Snake, byLang["python"].Case)
	assert.Contains(t, byLang["python"].Words, "from")
	assert.Equal(t, ident.Pascal, byLang["go"].Case)
}
