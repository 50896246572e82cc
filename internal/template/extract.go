package template

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

const (
	directoryPermissionsConstant         = fs.FileMode(0o755)
	defaultFilePermissionsConstant       = fs.FileMode(0o644)
	permissionMaskConstant               = fs.FileMode(0o777)
	parentDirectoryReferenceConstant     = ".."
	unsafeEntryMessageConstant           = "archive entry escapes target directory"
	unsafeEntryTemplateConstant          = "%w: %s"
	gzipReaderErrorTemplateConstant      = "opening gzip stream: %w"
	tarEntryErrorTemplateConstant        = "reading archive entry: %w"
	createDirectoryErrorTemplateConstant = "creating directory %s: %w"
	createFileErrorTemplateConstant      = "creating file %s: %w"
	writeFileErrorTemplateConstant       = "writing file %s: %w"
	closeFileErrorTemplateConstant       = "closing file %s: %w"
)

// ErrUnsafeArchiveEntry indicates an archive entry whose path resolves outside the target directory.
var ErrUnsafeArchiveEntry = errors.New(unsafeEntryMessageConstant)

// extractArchive writes the directories and regular files of a gzip-compressed
// tarball below targetDirectory, dropping the first path component of every
// entry. Other entry kinds are skipped. It returns the number of entries written.
func extractArchive(compressedArchive io.Reader, targetDirectory string, fileSystem FileSystem) (int, error) {
	gzipReader, gzipError := gzip.NewReader(compressedArchive)
	if gzipError != nil {
		return 0, fmt.Errorf(gzipReaderErrorTemplateConstant, gzipError)
	}
	defer gzipReader.Close()

	if makeError := fileSystem.MkdirAll(targetDirectory, directoryPermissionsConstant); makeError != nil {
		return 0, fmt.Errorf(createDirectoryErrorTemplateConstant, targetDirectory, makeError)
	}

	archiveReader := tar.NewReader(gzipReader)
	extractedEntries := 0
	for {
		header, headerError := archiveReader.Next()
		if errors.Is(headerError, io.EOF) {
			return extractedEntries, nil
		}
		if errors.Is(headerError, tar.ErrInsecurePath) {
			return extractedEntries, fmt.Errorf(unsafeEntryTemplateConstant, ErrUnsafeArchiveEntry, header.Name)
		}
		if headerError != nil {
			return extractedEntries, fmt.Errorf(tarEntryErrorTemplateConstant, headerError)
		}

		if header.Typeflag != tar.TypeDir && header.Typeflag != tar.TypeReg {
			continue
		}

		relativePath, hasRelativePath := stripLeadingComponent(header.Name)
		if !hasRelativePath {
			continue
		}
		destinationPath, resolveError := resolveDestination(targetDirectory, relativePath)
		if resolveError != nil {
			return extractedEntries, resolveError
		}

		if header.Typeflag == tar.TypeDir {
			if makeError := fileSystem.MkdirAll(destinationPath, directoryPermissionsConstant); makeError != nil {
				return extractedEntries, fmt.Errorf(createDirectoryErrorTemplateConstant, destinationPath, makeError)
			}
			extractedEntries++
			continue
		}

		if writeError := writeEntry(fileSystem, destinationPath, filePermissions(header), archiveReader); writeError != nil {
			return extractedEntries, writeError
		}
		extractedEntries++
	}
}

func stripLeadingComponent(entryName string) (string, bool) {
	normalizedName := strings.TrimLeft(strings.ReplaceAll(entryName, "\\", "/"), "/")
	_, remainder, hasRemainder := strings.Cut(normalizedName, "/")
	if !hasRemainder || len(strings.Trim(remainder, "/")) == 0 {
		return "", false
	}
	return remainder, true
}

func resolveDestination(targetDirectory string, relativePath string) (string, error) {
	if filepath.IsAbs(relativePath) {
		return "", fmt.Errorf(unsafeEntryTemplateConstant, ErrUnsafeArchiveEntry, relativePath)
	}
	destinationPath := filepath.Join(targetDirectory, filepath.FromSlash(relativePath))
	relativeToTarget, relativeError := filepath.Rel(targetDirectory, destinationPath)
	if relativeError != nil || relativeToTarget == parentDirectoryReferenceConstant ||
		strings.HasPrefix(relativeToTarget, parentDirectoryReferenceConstant+string(filepath.Separator)) {
		return "", fmt.Errorf(unsafeEntryTemplateConstant, ErrUnsafeArchiveEntry, relativePath)
	}
	return destinationPath, nil
}

func filePermissions(header *tar.Header) fs.FileMode {
	permissions := fs.FileMode(header.Mode) & permissionMaskConstant
	if permissions == 0 {
		return defaultFilePermissionsConstant
	}
	return permissions
}

func writeEntry(fileSystem FileSystem, destinationPath string, permissions fs.FileMode, content io.Reader) error {
	if makeError := fileSystem.MkdirAll(filepath.Dir(destinationPath), directoryPermissionsConstant); makeError != nil {
		return fmt.Errorf(createDirectoryErrorTemplateConstant, filepath.Dir(destinationPath), makeError)
	}

	fileWriter, createError := fileSystem.CreateFile(destinationPath, permissions)
	if createError != nil {
		return fmt.Errorf(createFileErrorTemplateConstant, destinationPath, createError)
	}
	if _, copyError := io.Copy(fileWriter, content); copyError != nil {
		fileWriter.Close()
		return fmt.Errorf(writeFileErrorTemplateConstant, destinationPath, copyError)
	}
	if closeError := fileWriter.Close(); closeError != nil {
		return fmt.Errorf(closeFileErrorTemplateConstant, destinationPath, closeError)
	}
	return nil
}
