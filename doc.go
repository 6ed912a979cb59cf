// Package bunyan is the front half of a structured logging pipeline
// that renders to the Bunyan JSON-lines format. It captures spans,
// events, and their key/value fields and fans them out to one or more
// bunbase.Layer implementations; bunjson is the layer that does the
// actual Bunyan rendering.
//
//	log := bunyan.NewSeed(
//		bunyan.WithTarget("app.handler"),
//		bunyan.WithLayers(bunjson.New(bunbytes.WriteToIOWriter(os.Stdout))),
//	).Log()
//	req := log.Span("request")
//	req.CurrentSpan().String("request_id", "abc-123")
//	req.Info().Int("status", 200).Msg("request handled")
//	req.Done()
package bunyan
