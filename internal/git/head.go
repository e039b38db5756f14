// Package git answers a single question for the dispatcher: which branch
// is currently checked out. It never reports an error for that question;
// detached HEAD, a missing repository, and query failures all collapse to
// the empty branch name, which downstream resolves to "no docs version".
package git

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsdispatch/internal/logfields"
	gogit "github.com/go-git/go-git/v5"
)

// CurrentBranch returns the abbreviated name of the branch checked out at
// repoPath. Lookup walks up parent directories the same way the git binary
// does. Detached HEAD and any query failure return "".
func CurrentBranch(repoPath string) string {
	repo, err := gogit.PlainOpenWithOptions(repoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		slog.Debug("Failed to open repository, falling back to HEAD file", logfields.Path(repoPath), logfields.Error(err))
		return readHeadBranch(repoPath)
	}

	head, err := repo.Head()
	if err != nil {
		// Unborn HEAD (fresh repo with no commits) still has a symbolic ref
		// on disk even though go-git cannot resolve it to a commit.
		slog.Debug("Failed to resolve HEAD, falling back to HEAD file", logfields.Path(repoPath), logfields.Error(err))
		return readHeadBranch(repoPath)
	}

	if !head.Name().IsBranch() {
		slog.Debug("HEAD is detached, no branch name", logfields.Path(repoPath))
		return ""
	}

	return head.Name().Short()
}

// readHeadBranch parses .git/HEAD directly. A symbolic ref of the form
// "ref: refs/heads/<name>" yields the branch name; a bare commit hash
// (detached HEAD) or a read failure yields "".
func readHeadBranch(repoPath string) string {
	headPath := filepath.Join(repoPath, ".git", "HEAD")
	data, err := os.ReadFile(headPath)
	if err != nil {
		return ""
	}

	line := strings.TrimSpace(string(data))
	if !strings.HasPrefix(line, "ref:") {
		return ""
	}

	ref := strings.TrimSpace(strings.TrimPrefix(line, "ref:"))
	if !strings.HasPrefix(ref, "refs/heads/") {
		return ""
	}
	return strings.TrimPrefix(ref, "refs/heads/")
}
