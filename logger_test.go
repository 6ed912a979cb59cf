package bunyan_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bunyango/bunyan-go"
	"github.com/bunyango/bunyan-go/bunbytes"
	"github.com/bunyango/bunyan-go/bunjson"
	"github.com/bunyango/bunyan-go/bunnum"
	"github.com/bunyango/bunyan-go/bunrecorder"
	"github.com/bunyango/bunyan-go/bunutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozenTime = time.Date(2022, 8, 1, 10, 30, 0, 0, time.UTC)

func newPipeline(mods ...bunyan.SeedModifier) (*bunyan.Log, *bunutil.Buffer, *bunrecorder.Logger) {
	buffer := &bunutil.Buffer{}
	recorder := bunrecorder.New()
	jlog := bunjson.New(
		bunbytes.WriteToIOWriter(buffer),
		bunjson.WithClock(func() time.Time { return frozenTime }),
	)
	mods = append([]bunyan.SeedModifier{
		bunyan.WithTarget("app::handler"),
		bunyan.WithLayers(jlog, recorder),
	}, mods...)
	return bunyan.NewSeed(mods...).Log(), buffer, recorder
}

func parseLine(t *testing.T, line string) map[string]interface{} {
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &got), "line parses: %s", line)
	return got
}

func TestEndToEnd(t *testing.T) {
	log, buffer, recorder := newPipeline()

	req := log.Span("request")
	req.CurrentSpan().String("request_id", "abc-123")
	req.Info().Int("status", 200).Msg("request handled")
	req.Done()

	lines := buffer.Lines()
	require.Len(t, lines, 1)
	t.Log(lines[0])
	got := parseLine(t, lines[0])
	assert.Equal(t, "request handled", got["msg"])
	assert.Equal(t, "INFO", got["level"])
	assert.Equal(t, "2022-08-01T10:30:00Z", got["time"])
	assert.Equal(t, "request", got["event"])
	assert.Equal(t, "app::handler", got["target"])
	assert.Equal(t, float64(200), got["status"])
	assert.Equal(t, "abc-123", got["request_id"])

	events := recorder.AllEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "request handled", events[0].Message)
	assert.Equal(t, "request", events[0].SpanName)

	spans := recorder.AllSpans()
	require.Len(t, spans, 1)
	assert.True(t, spans[0].Done)
}

func TestEventWithoutSpan(t *testing.T) {
	log, buffer, recorder := newPipeline()
	log.Warn().Msg("plain warning")

	got := parseLine(t, buffer.Lines()[0])
	assert.Equal(t, "WARN", got["level"])
	assert.NotContains(t, got, "event")
	require.Len(t, recorder.AllEvents(), 1)
	assert.Empty(t, recorder.AllEvents()[0].SpanName)
}

func TestMinLevel(t *testing.T) {
	log, buffer, recorder := newPipeline(bunyan.WithMinLevel(bunnum.WarnLevel))

	log.Info().Msg("too quiet")
	log.Warn().Msg("loud enough")
	require.Len(t, buffer.Lines(), 1)
	assert.Equal(t, 1, recorder.EventCount())

	log.SetMinLevel(bunnum.TraceLevel)
	log.Trace().Msg("now audible")
	assert.Len(t, buffer.Lines(), 2)
}

func TestCaller(t *testing.T) {
	log, buffer, _ := newPipeline(bunyan.WithCaller(true))
	log.Info().Msg("locate me")

	got := parseLine(t, buffer.Lines()[0])
	require.NotNil(t, got["file"])
	assert.Contains(t, got["file"].(string), "logger_test.go")
	assert.Greater(t, got["line"].(float64), float64(0))
}

func TestAnyDeepCopy(t *testing.T) {
	// the recorder keeps references, so Any must copy
	log, _, recorder := newPipeline()

	payload := map[string]interface{}{"a": 1}
	log.Info().Any("payload", payload).Msg("captured")
	payload["a"] = 2

	events := recorder.AllEvents()
	require.Len(t, events, 1)
	v, ok := events[0].FieldValue("payload")
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{"a": 1}, v)
}

func TestAnyDeepCopyWithSpanAddedLayer(t *testing.T) {
	// the base seed has no reference-keeping layer; the recorder
	// arrives with the span's modifiers and must still force copies
	buffer := &bunutil.Buffer{}
	jlog := bunjson.New(
		bunbytes.WriteToIOWriter(buffer),
		bunjson.WithClock(func() time.Time { return frozenTime }),
	)
	log := bunyan.NewSeed(
		bunyan.WithTarget("app::handler"),
		bunyan.WithLayers(jlog),
	).Log()

	recorder := bunrecorder.New()
	req := log.Span("request", bunyan.WithLayers(recorder))

	payload := map[string]interface{}{"a": 1}
	spanned := map[string]interface{}{"b": 1}
	req.CurrentSpan().Any("spanned", spanned)
	req.Info().Any("payload", payload).Msg("captured")
	req.Done()
	payload["a"] = 2
	spanned["b"] = 2

	events := recorder.AllEvents()
	require.Len(t, events, 1)
	v, ok := events[0].FieldValue("payload")
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{"a": 1}, v)

	spans := recorder.AllSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Fields, 1)
	assert.Equal(t, map[string]interface{}{"b": 1}, spans[0].Fields[0].Value)
}

func TestSpanFieldsAccumulate(t *testing.T) {
	log, buffer, _ := newPipeline()
	req := log.Span("request")
	req.CurrentSpan().String("request_id", "abc-123")
	req.Info().Msg("first")
	req.CurrentSpan().Int("attempt", 2)
	req.Info().Msg("second")
	req.Done()

	lines := buffer.Lines()
	require.Len(t, lines, 2)
	first := parseLine(t, lines[0])
	assert.NotContains(t, first, "attempt")
	second := parseLine(t, lines[1])
	assert.Equal(t, float64(2), second["attempt"])
	assert.Equal(t, "abc-123", second["request_id"])
}

func TestSpanNesting(t *testing.T) {
	log, buffer, recorder := newPipeline()
	outer := log.Span("request")
	inner := outer.Span("retry")
	assert.Equal(t, "request", inner.CurrentSpan().Parent().Name())
	inner.Info().Msg("from inner")
	inner.Done()
	outer.Info().Msg("from outer")
	outer.Done()

	lines := buffer.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "retry", parseLine(t, lines[0])["event"])
	assert.Equal(t, "request", parseLine(t, lines[1])["event"])
	assert.Len(t, recorder.AllSpans(), 2)
}

func TestSource(t *testing.T) {
	log, _, _ := newPipeline(bunyan.WithSource("myapp v1.2.3"), bunyan.WithNamespace("checkout"))
	source := log.Source()
	assert.Equal(t, "myapp", source.Source)
	assert.Equal(t, "1.2.3", source.SourceVersion.String())
	assert.Equal(t, "checkout", source.Namespace)
	assert.Equal(t, "0.0.0", source.NamespaceVersion.String())
}

func TestSendWithoutMessage(t *testing.T) {
	log, buffer, _ := newPipeline()
	log.Info().Int("status", 204).Send()
	got := parseLine(t, buffer.Lines()[0])
	assert.Equal(t, "app::handler", got["msg"], "msg falls back to the target")
	assert.Equal(t, float64(204), got["status"])
}
