package text

import "utility-api/internal/observability"

var instruments = observability.NoopInstruments()

// InitMetrics registers the text domain's OTel instruments. Call once at
// startup, after observability.InitMetrics.
func InitMetrics() error {
	in, err := observability.NewInstruments("text")
	if err != nil {
		return err
	}
	instruments = in
	return nil
}
