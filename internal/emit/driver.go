// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package emit

import (
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/circularlabs/sdkgen/internal/ident"
	"github.com/circularlabs/sdkgen/internal/ir"
	"github.com/circularlabs/sdkgen/internal/parity"
	"github.com/circularlabs/sdkgen/internal/profile"
	"github.com/circularlabs/sdkgen/internal/typemap"
)

// Options configures one generation run.
type Options struct {
	Registry *ir.Registry
	Profiles []*profile.Profile
	Stamp    Stamp
	Log      *zap.Logger
}

// Result is a successful run: every language's artifacts, path-sorted, and
// the method ledgers the parity check ran on.
type Result struct {
	Artifacts []Artifact
	Ledgers   []parity.Ledger
}

// Generate runs every language backend against the shared registry.
//
// Languages are emitted in parallel; a failure in one does not stop the
// others, and all per-language errors are reported together. The parity
// validator runs last, across the surfaces the backends actually emitted.
func Generate(opts Options) (*Result, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	namer, err := typemap.NewNamer(opts.Registry)
	if err != nil {
		return nil, err
	}

	type outcome struct {
		artifacts []Artifact
		ledger    parity.Ledger
		err       error
	}
	outcomes := make([]outcome, len(opts.Profiles))

	var wg sync.WaitGroup
	for i, p := range opts.Profiles {
		wg.Add(1)
		go func(i int, p *profile.Profile) {
			defer wg.Done()
			arts, ledger, err := emitLanguage(opts, namer, p)
			outcomes[i] = outcome{artifacts: arts, ledger: ledger, err: err}
		}(i, p)
	}
	wg.Wait()

	res := &Result{}
	var errs []error
	for i, p := range opts.Profiles {
		o := outcomes[i]
		if o.err != nil {
			errs = append(errs, errors.Wrapf(o.err, "language %s", p.ID))
			continue
		}
		log.Debug("emitted", zap.String("language", p.ID), zap.Int("artifacts", len(o.artifacts)))
		res.Artifacts = append(res.Artifacts, o.artifacts...)
		res.Ledgers = append(res.Ledgers, o.ledger)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := parity.Validate(res.Ledgers); err != nil {
		return nil, err
	}

	sort.Slice(res.Artifacts, func(i, j int) bool { return res.Artifacts[i].Path < res.Artifacts[j].Path })
	return res, nil
}

func emitLanguage(opts Options, namer *typemap.Namer, p *profile.Profile) ([]Artifact, parity.Ledger, error) {
	backend, err := Get(p.ID)
	if err != nil {
		return nil, parity.Ledger{}, err
	}

	model, err := Prepare(opts.Registry, namer, p, opts.Stamp)
	if err != nil {
		return nil, parity.Ledger{}, err
	}

	artifacts, err := backend.Emit(model)
	if err != nil {
		return nil, parity.Ledger{}, err
	}
	if err := checkArtifacts(p, artifacts); err != nil {
		return nil, parity.Ledger{}, err
	}

	return artifacts, buildLedger(p.ID, model, artifacts), nil
}

// checkArtifacts enforces the fixed artifact set: one client source, one
// type declaration file, one test scaffold, each non-empty.
func checkArtifacts(p *profile.Profile, artifacts []Artifact) error {
	seen := map[Kind]bool{}
	for _, a := range artifacts {
		if a.Text == "" {
			return errors.Newf("empty %s artifact %s", a.Kind, a.Path)
		}
		seen[a.Kind] = true
	}
	for _, kind := range []Kind{ClientSource, TypeDeclarations, TestScaffold} {
		if !seen[kind] {
			return errors.Newf("backend emitted no %s artifact", kind)
		}
	}
	return nil
}

// buildLedger records which of the model's methods the client source
// actually declares. The scan is deliberately independent of the backend's
// own bookkeeping: a template that drops a method produces a short ledger,
// and the parity validator names it.
func buildLedger(language string, m *Model, artifacts []Artifact) parity.Ledger {
	var client string
	for _, a := range artifacts {
		if a.Kind == ClientSource {
			client = a.Text
			break
		}
	}

	ledger := parity.Ledger{Language: language}
	for _, method := range m.Methods {
		if strings.Contains(client, method.Name+"(") {
			ledger.Methods = append(ledger.Methods, ident.Canonical(method.Canonical))
		}
	}
	for _, h := range m.Helpers {
		if strings.Contains(client, h.Emitted+"(") {
			ledger.Helpers = append(ledger.Helpers, ident.Canonical(h.Name))
		}
	}
	return ledger
}
