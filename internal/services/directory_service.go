package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/models"

	"github.com/agnivade/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	ErrDirectoryUnavailable = errors.New("cancellation directory is unavailable")
)

// DirectoryService reads the cancellation directory from its CSV source on
// every call so edits to the file show up without a restart.
type DirectoryService struct {
	path             string
	searchLimit      int
	matchMaxDistance int
	metrics          MetricsRecorderInterface
	activity         ActivityLoggerInterface
}

func NewDirectoryService(cfg *config.DirectoryConfig, metrics MetricsRecorderInterface, activity ActivityLoggerInterface) DirectoryServiceInterface {
	return &DirectoryService{
		path:             cfg.CSVPath,
		searchLimit:      cfg.SearchLimit,
		matchMaxDistance: cfg.MatchMaxDistance,
		metrics:          metrics,
		activity:         activity,
	}
}

// GetSnapshot parses the current file. The ETag is "<mtimeUnixMilli>-<size>".
func (s *DirectoryService) GetSnapshot(ctx context.Context) (*models.DirectorySnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(s.path)
	if err != nil {
		s.metrics.IncrementCounter("directory.load_failed", nil)
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.metrics.IncrementCounter("directory.load_failed", nil)
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	options := CanonicalizeDirectory(ParseDirectoryCSV(string(data)))
	snapshot := &models.DirectorySnapshot{
		Options:    options,
		ETag:       fmt.Sprintf("%d-%d", info.ModTime().UnixMilli(), info.Size()),
		ModifiedAt: info.ModTime(),
	}

	s.metrics.IncrementCounter("directory.loaded", nil)
	s.metrics.RecordGauge("directory.options", float64(len(options)), nil)
	s.activity.LogDirectoryLoaded(ctx, len(options), snapshot.ETag)

	return snapshot, nil
}

// Search ranks options by fuzzy match against their names. An empty query
// returns the first options in directory order.
func (s *DirectoryService) Search(ctx context.Context, query string, limit int) ([]models.DirectoryOption, error) {
	snapshot, err := s.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.searchLimit
	}
	s.metrics.IncrementCounter("directory.search", nil)

	query = strings.TrimSpace(query)
	if query == "" {
		return truncateOptions(snapshot.Options, limit), nil
	}

	names := make([]string, len(snapshot.Options))
	for i, opt := range snapshot.Options {
		names[i] = opt.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	results := make([]models.DirectoryOption, 0, len(ranks))
	for _, rank := range ranks {
		results = append(results, snapshot.Options[rank.OriginalIndex])
	}

	return truncateOptions(results, limit), nil
}

// Match finds the directory option for a detected vendor: exact id first,
// then the name with the smallest edit distance within the configured bound.
func (s *DirectoryService) Match(options []models.DirectoryOption, vendor models.DetectedVendor) (models.DirectoryOption, bool) {
	for _, key := range []string{models.NormalizeID(vendor.ID), models.Slugify(vendor.Name)} {
		for _, opt := range options {
			if key != "" && opt.ID == key {
				return opt, true
			}
		}
	}

	target := strings.ToLower(strings.TrimSpace(vendor.Name))
	if target == "" {
		return models.DirectoryOption{}, false
	}

	best := -1
	bestDistance := s.matchMaxDistance + 1
	for i, opt := range options {
		d := levenshtein.ComputeDistance(target, strings.ToLower(opt.Name))
		if d < bestDistance {
			best, bestDistance = i, d
		}
	}
	if best < 0 {
		return models.DirectoryOption{}, false
	}
	return options[best], true
}

func truncateOptions(options []models.DirectoryOption, limit int) []models.DirectoryOption {
	if limit > 0 && len(options) > limit {
		return options[:limit]
	}
	return options
}
