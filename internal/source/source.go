// Package source defines the ingestion boundary: providers that hand the
// pipeline raw item records. The pipeline itself never touches the network
// beyond what these providers do.
package source

import "context"

// RawItem is an unprocessed record as delivered by a provider. PublishTime is
// whatever string the source supplied; it is carried through, never reparsed.
type RawItem struct {
	Title       string
	Summary     string
	Source      string
	URL         string
	PublishTime string
}

// Source fetches a batch of raw items. A failing source returns an error and
// zero items; the pipeline logs it and moves on to the next source.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]RawItem, error)
}
