// Package resolve derives chart specifications from the launch dataset and
// the current control values. Every function here is pure: identical inputs
// yield identical outputs, and the dataset is only read.
package resolve

import (
	"errors"

	"github.com/rotisserie/eris"

	"github.com/sells-group/launch-dashboard/internal/dataset"
)

// ErrUnknownSite is returned when the selected site is neither "ALL" nor a
// site present in the dataset.
var ErrUnknownSite = errors.New("unknown launch site")

func checkSite(ds *dataset.Dataset, site string) error {
	if !ds.ValidSite(site) {
		return eris.Wrapf(ErrUnknownSite, "resolve: site %q", site)
	}
	return nil
}
