package nu

import (
	"nuresults/lib/restyutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const library_name = "nuresults.lib.scrapers.nu"

var tracer = otel.Tracer(library_name)

func SetTracerProvider(provider trace.TracerProvider) {
	tracer = provider.Tracer(library_name)
}

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput must be called before constructing clients.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
