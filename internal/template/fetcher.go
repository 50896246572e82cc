package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const (
	archivePathSegmentConstant      = "tar.gz"
	userAgentHeaderConstant         = "User-Agent"
	userAgentValueConstant          = "create-webflow-extension"
	unexpectedStatusMessageConstant = "unexpected archive response status"
	requestErrorTemplateConstant    = "creating archive request: %w"
	downloadErrorTemplateConstant   = "downloading %s: %w"
	statusErrorTemplateConstant     = "%w %d from %s"
	extractErrorTemplateConstant    = "extracting %s: %w"
	archiveURLFieldConstant         = "archive_url"
	targetDirectoryFieldConstant    = "target_directory"
	entryCountFieldConstant         = "entries"
	fetchStartedLogMessageConstant  = "downloading template archive"
	fetchFinishedLogMessageConstant = "template archive extracted"
)

// ErrUnexpectedStatus indicates the archive host answered with a non-200 status.
var ErrUnexpectedStatus = errors.New(unexpectedStatusMessageConstant)

// FileSystem exposes the file operations required to materialize an archive.
type FileSystem interface {
	MkdirAll(path string, permissions fs.FileMode) error
	CreateFile(path string, permissions fs.FileMode) (io.WriteCloser, error)
}

// ArchiveFetcher downloads repository tarballs and extracts them. It keeps no cache.
type ArchiveFetcher struct {
	httpClient     *http.Client
	archiveBaseURL string
	fileSystem     FileSystem
	logger         *zap.Logger
}

// NewArchiveFetcher constructs a fetcher. Empty values fall back to http.DefaultClient,
// DefaultArchiveBaseURLConstant and a no-op logger.
func NewArchiveFetcher(httpClient *http.Client, archiveBaseURL string, fileSystem FileSystem, logger *zap.Logger) *ArchiveFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if len(strings.TrimSpace(archiveBaseURL)) == 0 {
		archiveBaseURL = DefaultArchiveBaseURLConstant
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArchiveFetcher{
		httpClient:     httpClient,
		archiveBaseURL: strings.TrimRight(archiveBaseURL, pathSeparatorConstant),
		fileSystem:     fileSystem,
		logger:         logger,
	}
}

// ArchiveURL returns <base>/<owner>/<repository>/tar.gz/<reference>.
func (fetcher *ArchiveFetcher) ArchiveURL(source Source) string {
	return strings.Join([]string{
		fetcher.archiveBaseURL,
		url.PathEscape(source.Owner),
		url.PathEscape(source.Repository),
		archivePathSegmentConstant,
		url.PathEscape(source.Reference),
	}, pathSeparatorConstant)
}

// Fetch downloads the source archive and extracts it into targetDirectory,
// overwriting files that already exist there.
func (fetcher *ArchiveFetcher) Fetch(executionContext context.Context, source Source, targetDirectory string) error {
	archiveURL := fetcher.ArchiveURL(source)
	fetcher.logger.Debug(fetchStartedLogMessageConstant, zap.String(archiveURLFieldConstant, archiveURL), zap.String(targetDirectoryFieldConstant, targetDirectory))

	request, requestError := http.NewRequestWithContext(executionContext, http.MethodGet, archiveURL, nil)
	if requestError != nil {
		return fmt.Errorf(requestErrorTemplateConstant, requestError)
	}
	request.Header.Set(userAgentHeaderConstant, userAgentValueConstant)

	response, responseError := fetcher.httpClient.Do(request)
	if responseError != nil {
		return fmt.Errorf(downloadErrorTemplateConstant, source, responseError)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf(statusErrorTemplateConstant, ErrUnexpectedStatus, response.StatusCode, archiveURL)
	}

	extractedEntries, extractError := extractArchive(response.Body, targetDirectory, fetcher.fileSystem)
	if extractError != nil {
		return fmt.Errorf(extractErrorTemplateConstant, source, extractError)
	}

	fetcher.logger.Debug(fetchFinishedLogMessageConstant, zap.String(targetDirectoryFieldConstant, targetDirectory), zap.Int(entryCountFieldConstant, extractedEntries))
	return nil
}
