package analyzer

import (
	"fmt"
	"strings"
	"time"

	"igunfollow/pkg/compare"
	"igunfollow/pkg/config"
	"igunfollow/pkg/export"
	"igunfollow/pkg/ignore"
	"igunfollow/pkg/logger"
	"igunfollow/pkg/report"
)

// Analyzer compares the exports named by a configuration
type Analyzer struct {
	extractor Extractor
	config    *config.Config
	logger    logger.Logger
}

// New creates a new Analyzer using the parser backend named in cfg
func New(cfg *config.Config) (*Analyzer, error) {
	parser, err := export.NewParser(cfg.Input.Parser)
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}
	return NewWithExtractor(cfg, parser), nil
}

// NewWithExtractor creates an Analyzer reading exports through ext
func NewWithExtractor(cfg *config.Config, ext Extractor) *Analyzer {
	return &Analyzer{
		extractor: ext,
		config:    cfg,
		logger:    logger.GetLogger().WithField("component", "analyzer"),
	}
}

// Analyze extracts both sides, loads the ignore list and compares them. A
// missing export stops the run; a missing ignore list does not.
func (a *Analyzer) Analyze() (compare.Result, error) {
	logger.LogComponentStart("analyzer", map[string]interface{}{
		"parser":    a.extractor.Name(),
		"following": a.config.Input.FollowingFile,
		"followers": a.config.Input.FollowersFiles,
	})

	start := time.Now()
	following, err := a.extractor.ExtractFile(a.config.Input.FollowingFile)
	if err != nil {
		return compare.Result{}, fmt.Errorf("failed to read following export: %w", err)
	}
	logger.LogExtraction(a.config.Input.FollowingFile, a.extractor.Name(), following.Len(), time.Since(start))

	start = time.Now()
	followers, err := a.extractor.ExtractFiles(a.config.Input.FollowersFiles...)
	if err != nil {
		return compare.Result{}, fmt.Errorf("failed to read followers export: %w", err)
	}
	logger.LogExtraction(strings.Join(a.config.Input.FollowersFiles, ", "), a.extractor.Name(), followers.Len(), time.Since(start))

	ignored, err := ignore.Load(a.config.Input.IgnoreFile)
	if err != nil {
		return compare.Result{}, fmt.Errorf("failed to read ignore list: %w", err)
	}
	logger.LogIgnoreList(a.config.Input.IgnoreFile, ignored.Len(), ignored.Source() != "")

	res := compare.Compare(following, followers, ignored)

	logger.LogMetrics("compare", map[string]interface{}{
		"following":     res.Following,
		"followers":     res.Followers,
		"mutual":        res.Mutual,
		"ignored":       res.Ignored,
		"non_followers": len(res.NonFollowers),
	})

	return res, nil
}

// Save writes the non-followers of res to the configured CSV file
func (a *Analyzer) Save(res compare.Result) error {
	path := a.config.Output.File
	if err := report.WriteCSV(path, res.NonFollowers); err != nil {
		a.logger.WithError(err).Error("Failed to write report")
		return err
	}

	a.logger.WithFields(map[string]interface{}{
		"path": path,
		"rows": len(res.NonFollowers),
	}).Info("Report written")
	return nil
}

// Run analyzes and saves the report in one step. The result is returned
// even when saving fails so callers can still show it.
func (a *Analyzer) Run() (compare.Result, error) {
	res, err := a.Analyze()
	if err != nil {
		return res, err
	}
	return res, a.Save(res)
}
