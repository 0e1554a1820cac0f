// Copyright 2026 The Envguard Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package envguard scans environment files for hardcoded secrets and risky
// settings.
package envguard

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/envguard/go-envguard/log"
	"github.com/envguard/go-envguard/rule"
	"github.com/envguard/go-envguard/scanner"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"
)

const defaultMaxFileSizeMB = 10

// DefaultIncludeGlobs select the files ScanPaths picks up while walking a
// directory. They are matched against the base name.
func DefaultIncludeGlobs() []string {
	return []string{".env", ".env.*", "*.env"}
}

// DefaultSkipDirs are directory names ScanPaths never descends into.
func DefaultSkipDirs() []string {
	return []string{".git", "node_modules", "vendor"}
}

type scanOptions struct {
	filePath      string
	scannerOpts   []scanner.Option
	includeGlobs  []string
	skipDirs      []string
	concurrency   int
	maxFileSizeMB int
}

type ScanOption func(so *scanOptions)

// ScanWithFilePath sets the path reported for content passed to Scan.
func ScanWithFilePath(path string) ScanOption {
	return func(so *scanOptions) {
		so.filePath = path
	}
}

func ScanWithCatalog(c *rule.Catalog) ScanOption {
	return func(so *scanOptions) {
		so.scannerOpts = append(so.scannerOpts, scanner.WithCatalog(c))
	}
}

func ScanWithAllowList(a *scanner.AllowList) ScanOption {
	return func(so *scanOptions) {
		so.scannerOpts = append(so.scannerOpts, scanner.WithAllowList(a))
	}
}

// ScanWithScannerOptions passes options through to the underlying scanner.
func ScanWithScannerOptions(opts ...scanner.Option) ScanOption {
	return func(so *scanOptions) {
		so.scannerOpts = append(so.scannerOpts, opts...)
	}
}

// ScanWithIncludeGlobs replaces DefaultIncludeGlobs.
func ScanWithIncludeGlobs(globs ...string) ScanOption {
	return func(so *scanOptions) {
		so.includeGlobs = globs
	}
}

// ScanWithSkipDirs replaces DefaultSkipDirs.
func ScanWithSkipDirs(dirs ...string) ScanOption {
	return func(so *scanOptions) {
		so.skipDirs = dirs
	}
}

// ScanWithConcurrency bounds the number of files scanned at once.
func ScanWithConcurrency(n int) ScanOption {
	return func(so *scanOptions) {
		if n > 0 {
			so.concurrency = n
		}
	}
}

// ScanWithMaxFileSize skips files larger than the given number of megabytes.
func ScanWithMaxFileSize(mb int) ScanOption {
	return func(so *scanOptions) {
		if mb > 0 {
			so.maxFileSizeMB = mb
		}
	}
}

func newScanOptions(opts []ScanOption) *scanOptions {
	so := &scanOptions{
		includeGlobs:  DefaultIncludeGlobs(),
		skipDirs:      DefaultSkipDirs(),
		concurrency:   runtime.GOMAXPROCS(0),
		maxFileSizeMB: defaultMaxFileSizeMB,
	}

	for _, opt := range opts {
		opt(so)
	}

	return so
}

// Scan checks a single in-memory document.
func Scan(content string, opts ...ScanOption) (scanner.ScanResult, error) {
	so := newScanOptions(opts)
	return scanner.New(so.scannerOpts...).Scan(content, so.filePath)
}

// ScanFile reads and checks the file at path.
func ScanFile(path string, opts ...ScanOption) (scanner.ScanResult, error) {
	so := newScanOptions(opts)
	return scanFile(scanner.New(so.scannerOpts...), path)
}

func scanFile(s *scanner.Scanner, path string) (scanner.ScanResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return scanner.ScanResult{}, fmt.Errorf("could not read %s: %w", path, err)
	}

	return s.Scan(string(content), path)
}

// ScanPaths scans every file named in paths and every file below a named
// directory whose base name matches the include globs. Binary files and files
// over the size limit are skipped. Results keep the order of paths, with
// directory contents in lexical walk order. All files share one scanner, so
// the catalog is read once per file.
func ScanPaths(ctx context.Context, paths []string, opts ...ScanOption) ([]scanner.ScanResult, error) {
	so := newScanOptions(opts)
	files, err := collectFiles(paths, so)
	if err != nil {
		return nil, err
	}

	s := scanner.New(so.scannerOpts...)
	results := make([]*scanner.ScanResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(so.concurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if skip, err := shouldSkip(file, so.maxFileSizeMB); err != nil {
				return err
			} else if skip {
				return nil
			}

			res, err := scanFile(s, file)
			if err != nil {
				return err
			}

			results[i] = &res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]scanner.ScanResult, 0, len(results))
	for _, res := range results {
		if res != nil {
			out = append(out, *res)
		}
	}

	log.Debugf("(envguard) scanned %d of %d files", len(out), len(files))
	return out, nil
}

func collectFiles(paths []string, so *scanOptions) ([]string, error) {
	includes := make([]glob.Glob, 0, len(so.includeGlobs))
	for _, pattern := range so.includeGlobs {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid include glob %q: %w", pattern, err)
		}

		includes = append(includes, g)
	}

	skipDirs := make(map[string]struct{}, len(so.skipDirs))
	for _, d := range so.skipDirs {
		skipDirs[d] = struct{}{}
	}

	seen := map[string]struct{}{}
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("could not stat %s: %w", root, err)
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if _, skip := skipDirs[d.Name()]; skip && path != root {
					return filepath.SkipDir
				}

				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			for _, g := range includes {
				if g.Match(d.Name()) {
					add(path)
					break
				}
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("could not walk %s: %w", root, err)
		}
	}

	return files, nil
}

// shouldSkip reports whether a file is too large or not text.
func shouldSkip(path string, maxFileSizeMB int) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("could not stat %s: %w", path, err)
	}

	if info.Size() > int64(maxFileSizeMB)*1024*1024 {
		log.Warnf("(envguard) skipping %s: size %d exceeds %d MB", path, info.Size(), maxFileSizeMB)
		return true, nil
	}

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("could not detect type of %s: %w", path, err)
		}

		log.Debugf("(envguard) could not detect type of %s: %v", path, err)
		return false, nil
	}

	if !isText(mime) {
		log.Debugf("(envguard) skipping binary file %s (%s)", path, mime.String())
		return true, nil
	}

	return false, nil
}

func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}

	return false
}
