// Package lumalog is a synchronous, process-local logging facility.
//
// A Config is resolved once through a ConfigBuilder; a Dispatcher built from it
// filters each message by level and build mode and renders eligible records to
// the console (styled, ERROR and WARN on stderr, everything else on stdout) and
// optionally to a file in TEXT or JSON lines.
//
//	cfg, err := lumalog.NewConfigBuilder().
//		LogLevel(lumalog.LevelDebug).
//		FileLoggerConfig(lumalog.NewFileLoggerBuilder().Enabled(true).Path("app.log")).
//		Build()
//	if err != nil {
//		return err
//	}
//	d := lumalog.NewDispatcher(cfg)
//	defer d.Close()
//	d.Infof("listening on %s", addr)
package lumalog
