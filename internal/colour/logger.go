package colour

import "github.com/hashicorp/go-hclog"

var logger hclog.Logger = hclog.NewNullLogger()

// SetLogger sets the logger used to report malformed input and conversion
// fallbacks. A nil logger silences the package.
func SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	logger = l.Named("colour")
}
