// Package logging provides structured logging for the installer.
//
// It wraps zap with a small global API. Because the wizard owns the terminal
// through the alternate screen, log output goes to a file
// (/tmp/nixwright.log), never stdout, and is fully silent unless the
// NIXWRIGHT_LOG_LEVEL environment variable or the --log-level flag enables
// it.
//
// Initialize logging once at startup, passing the --log-level flag value
// (empty means consult the environment):
//
//	if err := logging.Initialize(logLevel); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Then log with structured fields:
//
//	logging.Info("Wrote documents",
//	    zap.String("dir", outDir),
//	    zap.Int("disks", len(st.Drives)),
//	)
package logging
