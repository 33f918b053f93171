// Package id issues submission ids. Feedback rows get their ids from the
// database; these only correlate the log lines and spans of one submission.
package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns a time-ordered unique id, or 0 if Init was never called.
func New() int64 {
	if node == nil {
		return 0
	}
	return node.Generate().Int64()
}
