// Package logkit is a leveled, domain-scoped logging façade that fans each
// record out to pluggable transports.
//
// Key features
//   - Seven levels (trace .. fatal); calls outside a logger's bounds return
//     after two integer comparisons
//   - Domains: per call, per logger default, or fixed through Use()
//   - fmt templates whose verb count decides how many arguments are
//     substituted; a trailing func(error) receives the dispatch outcome
//   - Concurrent delivery to every transport whose own range admits the
//     record, joined before the callback fires; one failing or panicking
//     transport never affects the others
//   - A text renderer with color, indentation and metadata groups that
//     caches each rendered line per style on the record
//   - Built-in console, rotating file (lumberjack), zerolog and zap
//     transports, selectable by name from YAML configuration
//
// Typical usage
//
//	log := logkit.New(logkit.WithMinLevel("debug"))
//	_ = log.AddTransportByName("console", logkit.TransportConfig{Type: "console"})
//	defer log.Close()
//
//	log.Info("auth", "User %s connected", name)
//	db := log.Use("db")
//	db.Warning("slow query %dms", ms, func(err error) { ... })
//	log.At(logkit.LevelError).Domain("db").Code(503).Meta("table", t).Err(err)
package logkit
