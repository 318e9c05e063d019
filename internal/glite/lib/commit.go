package lib

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// TimestampLayout is the local-time format used in commit records and the
// repository config.
const TimestampLayout = "2006-01-02T15:04:05"

// Timestamp returns the current local time in the commit record format.
func Timestamp() string {
	return time.Now().Format(TimestampLayout)
}

// nullParent is how an empty parent id is spelled in the serialized record.
const nullParent = "null"

// CommitBody serializes the hashable portion of a commit record. The byte
// layout is a contract: the commit id is the SHA-256 of exactly these bytes,
// so field order and separators must never change.
func CommitBody(c types.Commit) []byte {
	parent := c.Parent
	if parent == "" {
		parent = nullParent
	}
	var b strings.Builder
	b.WriteString("author=" + c.Author + "\n")
	b.WriteString("timestamp=" + c.Timestamp + "\n")
	b.WriteString("branch=" + c.Branch + "\n")
	b.WriteString("parent=" + parent + "\n")
	b.WriteString("message=" + c.Message + "\n")
	b.WriteString("files:\n")
	for _, entry := range c.Files {
		b.WriteString(entry.Path + "\t" + entry.BlobID + "\n")
	}
	return []byte(b.String())
}

// WriteCommit computes the commit id from the body, stores the record in the
// object directory as "id=<id>\n" + body, and fills in c.ID.
func WriteCommit(repoRoot string, c *types.Commit) error {
	body := CommitBody(*c)
	c.ID = HashBytes(body)
	record := append([]byte("id="+c.ID+"\n"), body...)
	if err := os.WriteFile(ObjectPath(repoRoot, c.ID), record, 0644); err != nil {
		return errors.Wrapf(err, "writing commit %s", c.ID)
	}
	return nil
}

// ParseCommit decodes a serialized commit record. Unknown header lines are
// skipped; everything after the "files:" marker is the snapshot list.
func ParseCommit(data []byte) types.Commit {
	var c types.Commit
	filesSection := false
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		if !filesSection {
			if line == "files:" {
				filesSection = true
				continue
			}
			key, value, found := strings.Cut(line, "=")
			if !found {
				continue
			}
			switch key {
			case "id":
				c.ID = value
			case "author":
				c.Author = value
			case "timestamp":
				c.Timestamp = value
			case "branch":
				c.Branch = value
			case "parent":
				if value != nullParent {
					c.Parent = value
				}
			case "message":
				c.Message = value
			}
			continue
		}
		path, blobID, found := strings.Cut(line, "\t")
		if found {
			c.Files = append(c.Files, types.IndexEntry{Path: path, BlobID: blobID})
		}
	}
	return c
}

// CommitExists reports whether an object file exists for the commit id.
func CommitExists(repoRoot, commitID string) bool {
	return ObjectExists(repoRoot, commitID)
}

// ReadCommit loads and parses one commit record by id.
func ReadCommit(repoRoot, commitID string) (types.Commit, error) {
	data, err := os.ReadFile(ObjectPath(repoRoot, commitID))
	if os.IsNotExist(err) {
		return types.Commit{}, errors.Wrap(ErrCommitNotFound, commitID)
	}
	if err != nil {
		return types.Commit{}, errors.Wrapf(err, "reading commit %s", commitID)
	}
	return ParseCommit(data), nil
}

// AppendLog appends one commit to the repository's append-only log.
func AppendLog(repoRoot string, c types.Commit) error {
	f, err := os.OpenFile(LogPath(repoRoot), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "opening log")
	}
	defer f.Close()
	line := c.ID + "\t" + c.Branch + "\t" + c.Timestamp + "\t" + c.Message + "\n"
	if _, err := f.WriteString(line); err != nil {
		return errors.Wrap(err, "appending to log")
	}
	return nil
}
