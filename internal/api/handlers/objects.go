package handlers

import (
	"github.com/concave-dev/monctl/internal/state"
	"github.com/gin-gonic/gin"
)

// HandleObjects returns the topology as a mapping of host name to the list of
// its service names.
func HandleObjects(store *state.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		idx := store.Topology()

		content := make(map[string][]string, idx.Len())
		for _, host := range idx.Hosts() {
			services, _ := idx.Services(host)
			content[host] = services
		}

		respondOK(c, content)
	}
}

// HandleState returns the recorded downtimes, acknowledgements and flags.
func HandleState(store *state.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondOK(c, store.Snapshot())
	}
}
