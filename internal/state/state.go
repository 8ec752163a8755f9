package state

import (
	"github.com/sidereusnuntius/rogold/internal/config"
	"github.com/sidereusnuntius/rogold/internal/db"
	"github.com/sidereusnuntius/rogold/internal/storage"
)

// State bundles the process-wide collaborators. It is built once in main and
// passed by reference; nothing reaches for it through a global.
type State struct {
	Store  storage.Store
	Games  db.DB
	Config config.Configuration
}
