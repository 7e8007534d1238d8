// Package archive packages the dashboard build output for manual upload.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrBuildDirMissing is returned when there is no build output to package.
var ErrBuildDirMissing = errors.New("build output directory not found")

// Create writes a timestamped tar.gz of buildDir into destDir and returns
// the archive path. The archive embeds the build directory under its base
// name so extraction recreates it.
func Create(buildDir, destDir, prefix string, now time.Time) (string, error) {
	info, err := os.Stat(buildDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrBuildDirMissing, buildDir)
		}
		return "", fmt.Errorf("failed to check build directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrBuildDirMissing, buildDir)
	}

	name := fmt.Sprintf("%s-%s.tar.gz", prefix, now.Format("20060102-150405"))
	path := filepath.Join(destDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create archive: %w", err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)

	root := filepath.Base(buildDir)
	walkErr := filepath.Walk(buildDir, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(buildDir, p)
		if err != nil {
			return err
		}
		entry := root
		if rel != "." {
			entry = filepath.Join(root, rel)
		}

		hdr, err := tar.FileInfoHeader(fi, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(entry)
		if fi.IsDir() {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if fi.IsDir() || !fi.Mode().IsRegular() {
			return nil
		}

		src, err := os.Open(p)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(tw, src)
		return err
	})

	if walkErr == nil {
		walkErr = tw.Close()
	} else {
		tw.Close()
	}
	if cerr := gw.Close(); walkErr == nil {
		walkErr = cerr
	}

	if walkErr != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write archive: %w", walkErr)
	}
	return path, nil
}

// IsArchiveName reports whether name matches the generated archive pattern.
func IsArchiveName(name, prefix string) bool {
	return strings.HasPrefix(name, prefix+"-") && strings.HasSuffix(name, ".tar.gz")
}
