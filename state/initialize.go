package state

import (
	"time"

	"uitree/config"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:  time.Now(),
		Format: config.OutputFormatTree,
	}
}
