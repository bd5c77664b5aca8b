package state

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	siteID  = uuid.NewString()
	counter uint64
)

// SiteID identifies this process in every id it hands out.
func SiteID() string { return siteID }

// NewID returns a fresh shape id. Ids combine the kind, the process site id
// and a monotonically increasing counter, so they are never reused.
func NewID(kind Kind) string {
	n := atomic.AddUint64(&counter, 1)
	return fmt.Sprintf("%s-%s-%d", kind, siteID, n)
}
