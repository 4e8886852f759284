package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newLogger builds the logger for one command invocation. Entries go to the
// command's stderr so stdout stays reserved for reports.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
