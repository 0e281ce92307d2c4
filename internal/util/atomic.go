// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// AtomicWriteFile writes data to path through a synced temporary file in the
// same directory that is renamed over the target. Readers see either the old
// file or the complete new one. Parent directories are created as needed.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) (err error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "resolve %s", path)
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	f, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(absPath)+"-")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tempPath := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return errors.Wrap(err, "write temp file")
	}
	if err := f.Sync(); err != nil {
		return errors.Wrap(err, "sync temp file")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		return errors.Wrap(err, "set file permissions")
	}
	if err := os.Rename(tempPath, absPath); err != nil {
		return errors.Wrapf(err, "replace %s", absPath)
	}
	return nil
}

// WriteFileIfMissing writes data to path only when nothing exists there yet.
// It reports whether the file was written.
func WriteFileIfMissing(path string, data []byte, perm os.FileMode) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "stat %s", path)
	}
	if err := AtomicWriteFile(path, data, perm); err != nil {
		return false, err
	}
	return true, nil
}
