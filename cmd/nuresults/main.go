package main

import (
	"nuresults/cmd/nuresults/commands"
	"nuresults/lib/serviceutil"
	"nuresults/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	// telemetry is optional for a CLI run; without a telemetry.json5
	// nearby the no-op otel globals are good enough
	tel, err := telemetry.SetupFromEnv(ctx, "nuresults")
	if err == nil {
		defer tel.Shutdown(ctx)
		telemetry.InstrumentPerfStats(ctx)
	}

	commands.ExecuteContext(ctx)
}
