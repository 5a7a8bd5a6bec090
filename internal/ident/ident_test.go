// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeConv is a minimal Convention for tests.
type fakeConv struct {
	c         Case
	overrides map[string]string
}

func (f fakeConv) IdentifierCase() Case { return f.c }

func (f fakeConv) NameOverride(name string) (string, bool) {
	v, ok := f.overrides[name]
	return v, ok
}

// irregularTokens mirrors the naming document shipped with the embedded
// schema: the endpoint names that cannot be split mechanically.
var irregularTokens = map[string][]string{
	"getTransactionbyID":      {"get", "transaction", "by", "ID"},
	"getTransactionbyNode":    {"get", "transaction", "by", "node"},
	"getTransactionbyAddress": {"get", "transaction", "by", "address"},
	"getTransactionbyDate":    {"get", "transaction", "by", "date"},
	"getNAGURL":               {"get", "NAG", "URL"},
	"setNAGURL":               {"set", "NAG", "URL"},
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple compound", "checkWallet", []string{"check", "Wallet"}},
		{"three tokens", "getWalletBalance", []string{"get", "Wallet", "Balance"}},
		{"acronym run then lower", "getNAGKey", []string{"get", "NAG", "Key"}},
		{"trailing acronym run stays joined", "getNAGURL", []string{"get", "NAGURL"}},
		{"lowercase by is absorbed", "getTransactionbyID", []string{"get", "Transactionby", "ID"}},
		{"digit boundary", "sha256Hash", []string{"sha", "256", "Hash"}},
		{"snake input", "check_wallet", []string{"check", "wallet"}},
		{"single token", "version", []string{"version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.in))
		})
	}
}

func TestTransform_CaseConversion(t *testing.T) {
	s := NewSplitter(irregularTokens)

	goConv := fakeConv{c: Pascal}
	pyConv := fakeConv{c: Snake}
	tsConv := fakeConv{c: Camel}

	tests := []struct {
		canonical string
		conv      fakeConv
		want      string
	}{
		{"checkWallet", goConv, "CheckWallet"},
		{"checkWallet", pyConv, "check_wallet"},
		{"checkWallet", tsConv, "checkWallet"},
		{"getTransactionbyID", goConv, "GetTransactionByID"},
		{"getTransactionbyID", pyConv, "get_transaction_by_id"},
		{"getTransactionbyID", tsConv, "getTransactionByID"},
		{"getNAGURL", goConv, "GetNAGURL"},
		{"getNAGURL", pyConv, "get_nag_url"},
		{"getNAGURL", tsConv, "getNAGURL"},
		{"getNAGKey", pyConv, "get_nag_key"},
		{"getFormattedTimestamp", pyConv, "get_formatted_timestamp"},
		{"stringToHex", goConv, "StringToHex"},
		{"stringToHex", tsConv, "stringToHex"},
	}

	for _, tt := range tests {
		t.Run(tt.canonical+"/"+string(tt.conv.c), func(t *testing.T) {
			assert.Equal(t, tt.want, s.Transform(tt.canonical, tt.conv))
		})
	}
}

func TestTransform_ExplicitOverrideWins(t *testing.T) {
	s := NewSplitter(irregularTokens)
	conv := fakeConv{
		c:         Snake,
		overrides: map[string]string{"getTransactionbyID": "fetch_tx"},
	}
	assert.Equal(t, "fetch_tx", s.Transform("getTransactionbyID", conv))

	// Other names still take the algorithmic path.
	assert.Equal(t, "check_wallet", s.Transform("checkWallet", conv))
}

func TestTokens_NoOverrideTableFallsBack(t *testing.T) {
	var s *Splitter
	assert.Equal(t, []string{"check", "Wallet"}, s.Tokens("checkWallet"))

	s = NewSplitter(nil)
	assert.Equal(t, []string{"get", "Transactionby", "ID"}, s.Tokens("getTransactionbyID"))
}

func TestCanonical_ConventionsConverge(t *testing.T) {
	// Every convention of the same token stream must squash to one key;
	// this is the inverse the parity validator relies on.
	for _, emitted := range []string{
		"GetTransactionByID",
		"getTransactionByID",
		"get_transaction_by_id",
	} {
		assert.Equal(t, "gettransactionbyid", Canonical(emitted), "input %q", emitted)
	}

	for _, emitted := range []string{"GetNAGURL", "getNAGURL", "get_nag_url"} {
		assert.Equal(t, "getnagurl", Canonical(emitted), "input %q", emitted)
	}
}

func TestRender_EmptyAndSeparators(t *testing.T) {
	assert.Equal(t, "", Render(nil, Pascal))
	assert.Equal(t, "", Render([]string{""}, Snake))
	assert.Equal(t, []string{"get", "block", "count"}, Split("get-block count"))
}
