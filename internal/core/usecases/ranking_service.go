// internal/core/usecases/ranking_service.go
package usecases

import (
	"fmt"
	"sort"
	"time"

	"clinicor/internal/core/domain"
	"clinicor/internal/platform/logx"
)

// RankingService orchestrates the full pipeline: first-level grouping,
// multi-level merging, scoring and top-N selection. It is stateless
// across calls and safe for concurrent use: the knowledge base is
// read-only and every invocation works on its own copies of the input.
type RankingService struct {
	kb      *domain.KnowledgeBase
	th      Thresholds
	topN    int
	version string

	grouper *Grouper
	merger  *Merger
	scorer  *Scorer
	logger  logx.Logger
}

// RankingOptions configures a RankingService.
type RankingOptions struct {
	Thresholds Thresholds
	TopN       int
	Version    string
	Logger     logx.Logger
}

// NewRankingService wires the pipeline stages over one knowledge base.
// Zero-valued options fall back to the production defaults.
func NewRankingService(kb *domain.KnowledgeBase, opts RankingOptions) *RankingService {
	th := opts.Thresholds
	if th == (Thresholds{}) {
		th = DefaultThresholds()
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	logger := opts.Logger
	if logger == nil {
		logger = logx.New()
	}

	return &RankingService{
		kb:      kb,
		th:      th,
		topN:    topN,
		version: opts.Version,
		grouper: NewGrouper(kb, th),
		merger:  NewMerger(kb, th),
		scorer:  NewScorer(kb),
		logger:  logger.With("component", "ranking-service"),
	}
}

// Rank runs the pipeline and returns at most topN groups sorted by score
// descending. Empty input yields an empty slice, not an error. Score ties
// keep the order the clusters were produced in (stable sort, no secondary
// key).
func (s *RankingService) Rank(findings []*domain.Finding) []*domain.Group {
	if len(findings) == 0 {
		return []*domain.Group{}
	}

	clusters := s.grouper.Group(findings)
	merged := s.merger.Merge(clusters)

	groups := make([]*domain.Group, 0, len(merged))
	for _, cluster := range merged {
		groups = append(groups, s.scorer.Score(cluster))
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Score > groups[j].Score
	})

	if len(groups) > s.topN {
		groups = groups[:s.topN]
	}

	s.logger.Debug("ranking complete",
		"findings", len(findings),
		"clusters", len(clusters),
		"merged", len(merged),
		"returned", len(groups),
	)

	return groups
}

// Analyze ranks one classifier output and wraps the result in a report
// envelope with run metadata and any input warnings collected upstream.
func (s *RankingService) Analyze(input string, findings []*domain.Finding, warnings []domain.Warning) *domain.AnalysisReport {
	start := time.Now()
	groups := s.Rank(findings)
	end := time.Now()

	// Unknown finding types still rank (as singletons with prevalence 0),
	// but the report flags them: usually a label-set mismatch between the
	// classifier and the knowledge base.
	for _, f := range findings {
		if !s.kb.Knows(f.Name) {
			warnings = append(warnings, domain.NewWarning("ranking-service",
				fmt.Sprintf("finding %q is unknown to knowledge base %s", f.Name, s.kb.Name)))
		}
	}

	report := &domain.AnalysisReport{
		ID:       fmt.Sprintf("analysis-%d", start.UnixNano()),
		Input:    input,
		Findings: findings,
		Groups:   groups,
		Warnings: warnings,
		Metadata: domain.AnalysisMetadata{
			StartTime:              start,
			EndTime:                end,
			Duration:               end.Sub(start),
			KnowledgeBase:          s.kb.Name,
			TopN:                   s.topN,
			SimilarityThreshold:    s.th.Similarity,
			CorrelationThreshold:   s.th.Correlation,
			StrongRelationOverride: s.th.StrongOverride,
			Version:                s.version,
		},
	}

	s.logger.Info("analysis complete",
		"input", input,
		"findings", len(findings),
		"groups", len(groups),
		"warnings", len(warnings),
		"duration", report.Metadata.Duration,
	)

	return report
}
