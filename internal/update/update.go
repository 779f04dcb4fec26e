package update

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	selfupdate "github.com/creativeprojects/go-selfupdate"
)

// Repo is the GitHub slug releases are published under.
const Repo = "justinpbarnett/buildwall"

const (
	checkTimeout = 10 * time.Second
	applyTimeout = 2 * time.Minute
)

// ErrDevBuild is returned by Apply for binaries built without a version.
var ErrDevBuild = errors.New("cannot update a development build, install from a release first")

// Release describes a published buildwall release.
type Release struct {
	Version      string
	URL          string
	ReleaseNotes string
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create github source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}
	return updater, nil
}

// Check looks for a release newer than currentVersion.
// Returns nil when already current or when currentVersion is not a release
// ("dev", empty, or unparseable).
func Check(ctx context.Context, currentVersion, repo string) (*Release, error) {
	if isDev(currentVersion) {
		return nil, nil
	}
	current, err := parseSemver(currentVersion)
	if err != nil {
		return nil, nil
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, nil
	}

	latestVer, err := semver.NewVersion(latest.Version())
	if err != nil || !latestVer.GreaterThan(current) {
		return nil, nil
	}

	return &Release{
		Version:      latest.Version(),
		URL:          latest.URL,
		ReleaseNotes: latest.ReleaseNotes,
	}, nil
}

// Apply replaces the running executable with the latest release.
func Apply(ctx context.Context, currentVersion, repo string) (*Release, error) {
	if isDev(currentVersion) {
		return nil, ErrDevBuild
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, applyTimeout)
	defer cancel()

	rel, err := updater.UpdateSelf(ctx, strings.TrimPrefix(currentVersion, "v"), selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}

	return &Release{
		Version:      rel.Version(),
		URL:          rel.URL,
		ReleaseNotes: rel.ReleaseNotes,
	}, nil
}

// CompareVersions compares two semver strings: -1 if current < latest,
// 0 if equal, 1 if current > latest. Unparseable versions sort first.
func CompareVersions(current, latest string) int {
	cv, errC := parseSemver(current)
	lv, errL := parseSemver(latest)

	switch {
	case errC != nil && errL != nil:
		return 0
	case errC != nil:
		return -1
	case errL != nil:
		return 1
	}
	return cv.Compare(lv)
}

func isDev(v string) bool { return v == "" || v == "dev" }

// parseSemver strips a leading "v". git-describe suffixes like
// "0.1.0-3-gabcdef" parse as prereleases.
func parseSemver(s string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(s, "v"))
}
