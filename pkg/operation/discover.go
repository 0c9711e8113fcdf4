// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"io/fs"
	"os"
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔍 discoverStylesheets lists the names of files in dir whose name ends in
// suffix (case-sensitive, no recursion, no symlink resolution). A missing
// directory is a soft-fail and yields an empty set, so the tool still runs in
// partial checkouts.
func discoverStylesheets(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Errorf("reading directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), suffix) {
			names = append(names, entry.Name())
		}
	}

	// ReadDir already sorts, but the report order is part of the contract
	sort.Strings(names)
	return names, nil
}

// 🔍 fileExists reports whether path exists as a regular file. A missing file
// is a soft-fail, not an error.
func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Errorf("checking file existence: %w", err)
	}
	return !info.IsDir(), nil
}
