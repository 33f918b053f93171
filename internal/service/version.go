package service

import (
	"context"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
)

// VersionLookup returns the installed version of an interview package.
type VersionLookup func(ctx context.Context, pkg string) (string, bool)

// StaticVersions serves versions from a fixed package=version table.
func StaticVersions(versions map[string]string) VersionLookup {
	return func(_ context.Context, pkg string) (string, bool) {
		v, ok := versions[pkg]
		return v, ok && v != ""
	}
}

// versionFor falls back to model.PlaygroundVersion for playground packages and
// anything the lookup cannot resolve.
func versionFor(ctx context.Context, lookup VersionLookup, ic *model.InterviewContext) string {
	if ic == nil || ic.IsPlayground() || lookup == nil {
		return model.PlaygroundVersion
	}
	if v, ok := lookup(ctx, ic.Package); ok {
		return v
	}
	return model.PlaygroundVersion
}
