// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package emit

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// WriteAll writes every artifact under root. Each file is written to a
// temporary name in its target directory, synced and renamed into place, so
// an interrupted run never leaves a partially written artifact. Failures
// are collected per path rather than aborting at the first.
func WriteAll(root string, artifacts []Artifact) error {
	var errs []error
	for _, a := range artifacts {
		if err := writeOne(root, a); err != nil {
			errs = append(errs, errors.Wrapf(err, "write %s", a.Path))
		}
	}
	return errors.Join(errs...)
}

func writeOne(root string, a Artifact) error {
	target := filepath.Join(root, filepath.FromSlash(a.Path))
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".sdkgen-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(a.Text); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}
