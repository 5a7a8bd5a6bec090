// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circularlabs/sdkgen/internal/emit"
	"github.com/circularlabs/sdkgen/internal/profile"
	"github.com/circularlabs/sdkgen/internal/session"
	"github.com/circularlabs/sdkgen/internal/typemap"
)

func emitAll(t *testing.T) map[emit.Kind]string {
	t.Helper()

	reg, err := session.LoadRegistry("")
	require.NoError(t, err)
	namer, err := typemap.NewNamer(reg)
	require.NoError(t, err)
	p, err := profile.Get("typescript")
	require.NoError(t, err)

	model, err := emit.Prepare(reg, namer, p, emit.Stamp{
		Version: "1.0.8",
		NAGURL:  "https://nag.circularlabs.io/NAG.php?cep=",
		MockURL: "http://localhost:3000/",
	})
	require.NoError(t, err)

	arts, err := (&Backend{}).Emit(model)
	require.NoError(t, err)

	out := make(map[emit.Kind]string, len(arts))
	for _, a := range arts {
		out[a.Kind] = a.Text
	}
	return out
}

func TestEmit_ClientSurface(t *testing.T) {
	client := emitAll(t)[emit.ClientSource]

	assert.Contains(t, client, `export const LIB_VERSION = "1.0.8";`)
	assert.Contains(t, client, "export class CircularProtocolAPI {")
	assert.Contains(t, client, "async checkWallet(")
	assert.Contains(t, client, "Promise<types.CheckWalletResponse>")
	assert.Contains(t, client, `this.fetchNAG("/checkWallet", payload)`)
}

func TestEmit_Helpers(t *testing.T) {
	client := emitAll(t)[emit.ClientSource]

	assert.Contains(t, client, "  stringToHex(text: string): string {")
	assert.Contains(t, client, "  getError(code: number): string {")
}

func TestEmit_TypesUnqualified(t *testing.T) {
	types := emitAll(t)[emit.TypeDeclarations]

	// types.ts declares the shapes, so references inside it drop the
	// module qualifier the client file uses.
	assert.Contains(t, types, "export interface CheckWalletResponse {")
	assert.NotContains(t, types, "types.CheckWalletResponse")
	assert.Contains(t, types, `export type TransactionStatus = "pending" | "confirmed" | "failed";`)
}

func TestEmit_TestScaffold(t *testing.T) {
	scaffold := emitAll(t)[emit.TestScaffold]

	assert.Contains(t, scaffold, `it("checkWallet", async () => {`)
	assert.Contains(t, scaffold, "process.env.CIRCULAR_MOCK_URL")
}
