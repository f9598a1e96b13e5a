// mktree builds a synthetic per-user directory tree for exercising the purge
// tool: one directory per user, random subtrees of files and directories
// beneath each, with file mtimes spread uniformly over a bounded past window.
// Usage: go run ./cmd/mktree --root /tmp/fstree --users 52
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

type treeParams struct {
	depth        int
	maxDirWidth  int
	maxFileWidth int
	maxAge       time.Duration
	now          time.Time
}

func main() {
	root := flag.String("root", "", "directory to populate (must exist, writable)")
	users := flag.Int("users", 52, "number of user directories to create")
	depth := flag.Int("depth", 5, "directory tree depth under each user")
	maxDirWidth := flag.Int("max-dir-width", 3, "max subdirectories per directory")
	maxFileWidth := flag.Int("max-file-width", 10, "max files per directory")
	maxAge := flag.Duration("max-age", 60*24*time.Hour, "files get mtimes up to this far in the past")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	if *root == "" {
		fmt.Fprintln(os.Stderr, "ERROR: --root is required")
		os.Exit(1)
	}
	if err := unix.Access(*root, unix.W_OK|unix.X_OK); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: root %s must exist and be writable: %v\n", *root, err)
		os.Exit(1)
	}
	if *maxDirWidth < 1 || *maxFileWidth < 0 || *depth < 1 || *users < 1 || *maxAge <= 0 {
		fmt.Fprintln(os.Stderr, "ERROR: invalid tree parameters")
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	p := treeParams{
		depth:        *depth,
		maxDirWidth:  *maxDirWidth,
		maxFileWidth: *maxFileWidth,
		maxAge:       *maxAge,
		now:          time.Now(),
	}

	for _, name := range userNames(*users) {
		userDir := filepath.Join(*root, name)
		if err := os.Mkdir(userDir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: create user dir: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("generating random directory tree under path: %s\n", userDir)
		if err := mkTree(rng, userDir, p.depth, 1+rng.Intn(p.maxDirWidth), rng.Intn(p.maxFileWidth+1), p); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
	}
}

// userNames generates n user directory names: a..z, then aa, bb, ... zz,
// then aaa, and so on.
func userNames(n int) []string {
	names := make([]string, n)
	for i := 0; i < n; i++ {
		letter := letters[i%len(letters)]
		count := i/len(letters) + 1
		name := make([]byte, count)
		for c := range name {
			name[c] = letter
		}
		names[i] = string(name)
	}
	return names
}

// mkTree recursively populates parent with files f0..fN and subdirectories
// d0..dN down to the given depth. Each file's atime/mtime is set to a random
// instant within the past maxAge window.
func mkTree(rng *rand.Rand, parent string, depth, dirWidth, fileWidth int, p treeParams) error {
	if depth == 0 {
		return nil
	}

	for i := 0; i < fileWidth; i++ {
		fpath := filepath.Join(parent, fmt.Sprintf("f%d", i))
		lastUsed := p.now.Add(-time.Duration(rng.Int63n(int64(p.maxAge) + 1)))
		if err := mkFile(fpath, lastUsed); err != nil {
			return err
		}
	}

	for i := 0; i < dirWidth; i++ {
		dpath := filepath.Join(parent, fmt.Sprintf("d%d", i))
		if err := os.Mkdir(dpath, 0o755); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}
		if err := mkTree(rng, dpath, depth-1, rng.Intn(p.maxDirWidth+1), rng.Intn(p.maxFileWidth+1), p); err != nil {
			return err
		}
	}
	return nil
}

func mkFile(path string, lastUsed time.Time) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chtimes(path, lastUsed, lastUsed); err != nil {
		return fmt.Errorf("set file times: %w", err)
	}
	return nil
}
