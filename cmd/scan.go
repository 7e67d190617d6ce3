package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/projscan/projscan/internal/report"
	"github.com/projscan/projscan/internal/scan"
	"github.com/spf13/pflag"
)

type scanFlags struct {
	limit          int
	uvOnly         bool
	poetryOnly     bool
	nodeOnly       bool
	typescriptOnly bool
	gitOnly        bool
	sortBy         string
}

func (f *scanFlags) Bind(local *pflag.FlagSet) {
	local.IntVar(&f.limit, "limit", 0, "Limit the number of projects shown")
	local.BoolVar(&f.uvOnly, "uv-only", false, "Show only UV-managed projects")
	local.BoolVar(&f.poetryOnly, "poetry-only", false, "Show only Poetry-managed projects")
	local.BoolVar(&f.nodeOnly, "node-only", false, "Show only Node.js projects")
	local.BoolVar(&f.typescriptOnly, "typescript-only", false, "Show only TypeScript projects")
	local.BoolVar(&f.gitOnly, "git-only", false, "Show only Git repositories")
	local.StringVar(&f.sortBy, "sort", string(report.SortByDate),
		"Sort projects by date, name, python, or type")
}

type scanAction struct {
	root    string
	filters report.Filters
	sortKey report.SortKey
	limit   int
	writer  io.Writer
}

func newScanAction(root string, flags *scanFlags, limitSet bool, writer io.Writer) (*scanAction, error) {
	sortKey, err := report.ParseSortKey(flags.sortBy)
	if err != nil {
		return nil, err
	}

	if limitSet && flags.limit <= 0 {
		return nil, fmt.Errorf("invalid --limit %d: must be a positive integer", flags.limit)
	}

	return &scanAction{
		root: root,
		filters: report.Filters{
			UVOnly:         flags.uvOnly,
			PoetryOnly:     flags.poetryOnly,
			NodeOnly:       flags.nodeOnly,
			TypeScriptOnly: flags.typescriptOnly,
			GitOnly:        flags.gitOnly,
		},
		sortKey: sortKey,
		limit:   flags.limit,
		writer:  writer,
	}, nil
}

func (sa *scanAction) Run(ctx context.Context) error {
	projects, err := scan.Scan(sa.root)
	if err != nil {
		return err
	}

	projects = report.Apply(projects, sa.filters, sa.sortKey)
	projects = report.Limit(projects, sa.limit)

	absRoot, err := filepath.Abs(sa.root)
	if err != nil {
		absRoot = sa.root
	}

	fmt.Fprintf(sa.writer, "Scanning directory: %s\n\n", absRoot)
	report.Render(sa.writer, projects, report.Summarize(projects))

	return nil
}
